package apperror_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"go-ems/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type signupPayload struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	EmployeeCode string `json:"employeeCode" validate:"max=3"`
}

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		err := apperror.New(apperror.CodeConflict, "Email already registered", http.StatusConflict)

		got := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeConflict, got.Code)
		assert.Equal(t, "Email already registered", got.Message)
	})

	t.Run("wrapped app error is found", func(t *testing.T) {
		err := errors.Join(errors.New("tx failed"), apperror.ErrForbidden)

		got := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusForbidden, got.Status)
	})

	t.Run("unknown error hides details", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "connection refused")
		assert.True(t, apperror.IsInternal(errors.New("boom")))
	})
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	err := v.Struct(signupPayload{Email: "not-an-email", EmployeeCode: "EMP001"})
	mapped := apperror.MapValidationError(err)

	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
	assert.Equal(t, apperror.CodeValidation, mapped.Code)
	assert.Equal(t, "Validation failed", mapped.Message)
	assert.Equal(t, "Name is required", mapped.Fields["name"])
	assert.Equal(t, "Email must be a valid email address", mapped.Fields["email"])
	assert.Equal(t, "Employee Code must be at most 3 characters", mapped.Fields["employeeCode"])
}

func TestMapBindError_Syntax(t *testing.T) {
	var target map[string]any
	err := json.Unmarshal([]byte("{bad"), &target)

	mapped := apperror.MapBindError(err)

	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
	assert.Equal(t, "Invalid request payload", mapped.Message)
}
