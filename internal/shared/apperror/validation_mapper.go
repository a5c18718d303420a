package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// formatFieldName turns "employeeCode" or "personal_email" into "Employee Code" / "Personal Email".
func formatFieldName(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_' || r == '.':
			b.WriteRune(' ')
		case unicode.IsUpper(r) && i > 0:
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return titleCaser.String(b.String())
}

func fieldMessage(e validator.FieldError) string {
	name := formatFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email address"
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", name, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", name, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", name, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", name, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", name, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", name, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", name, e.Param())
	case "uuid", "uuid4":
		return name + " must be a valid id"
	case "datetime":
		return fmt.Sprintf("%s must match the format %s", name, e.Param())
	default:
		return name + " is invalid"
	}
}

// MapValidationError converts validator output to a 400 with one message per field.
func MapValidationError(err error) *AppError {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return ErrInvalidInput
	}

	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		key := e.Namespace()
		// drop the top-level struct name: "CreateEmployeeRequest.address.city" -> "address.city"
		if i := strings.Index(key, "."); i >= 0 {
			key = key[i+1:]
		}
		if _, exists := fields[key]; !exists {
			fields[key] = fieldMessage(e)
		}
	}

	first := fieldMessage(errs[0])
	if len(errs) == 1 {
		return Validation(first, fields)
	}
	return Validation("Validation failed", fields)
}

// MapBindError classifies errors returned by gin's ShouldBind* helpers.
func MapBindError(err error) *AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return MapValidationError(verrs)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return Wrap(err, CodeInvalidInput, "Request body is required", ErrInvalidPayload.HTTPStatus)
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			return Wrap(err, CodeInvalidInput, ErrInvalidPayload.Message, ErrInvalidPayload.HTTPStatus)
		}
		return &AppError{
			Code:       CodeValidation,
			Message:    formatFieldName(field) + " has the wrong type",
			HTTPStatus: ErrInvalidPayload.HTTPStatus,
			Fields:     map[string]string{field: formatFieldName(field) + " has the wrong type"},
			Err:        err,
		}
	case errors.As(err, &syntaxErr):
		return Wrap(err, CodeInvalidInput, ErrInvalidPayload.Message, ErrInvalidPayload.HTTPStatus)
	}

	return Wrap(err, CodeInvalidInput, ErrInvalidPayload.Message, ErrInvalidPayload.HTTPStatus)
}
