package apperror

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// HTTPError is the transport view of any error returned by a service.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Fields  map[string]string
}

// ToHTTP never exposes the text of an unexpected error; callers log it.
func ToHTTP(err error) HTTPError {
	if err == nil {
		return HTTPError{Status: http.StatusOK}
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Fields:  appErr.Fields,
		}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return ToHTTP(MapValidationError(verrs))
	}

	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}

// IsInternal reports whether err would surface as a 500.
func IsInternal(err error) bool {
	return ToHTTP(err).Status >= http.StatusInternalServerError
}
