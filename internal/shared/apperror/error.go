package apperror

import "fmt"

type AppError struct {
	Code       string            // Error code (e.g., CONFLICT)
	Message    string            // User-facing message
	HTTPStatus int               // HTTP status code
	Fields     map[string]string // Per-field messages, validation only
	Err        error             // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Validation builds a 400 carrying a per-field message map.
func Validation(message string, fields map[string]string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: 400,
		Fields:     fields,
	}
}

func RequiredField(field string) *AppError {
	return New(CodeValidation, field+" is required", 400)
}

func InvalidField(field string) *AppError {
	return New(CodeValidation, field+" is invalid", 400)
}
