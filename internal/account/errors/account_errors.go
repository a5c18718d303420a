package accounterrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrAccountNotFound = apperror.New(
		apperror.CodeNotFound,
		"Account not found",
		http.StatusNotFound,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrAdminNotFound = apperror.New(
		apperror.CodeNotFound,
		"Admin not found",
		http.StatusNotFound,
	)

	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Email already registered",
		http.StatusConflict,
	)

	ErrEmployeeCodeTaken = apperror.New(
		apperror.CodeConflict,
		"Employee Code already exists",
		http.StatusConflict,
	)

	ErrProfileAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A profile already exists for this account",
		http.StatusConflict,
	)

	ErrInvalidEmail = apperror.New(
		apperror.CodeValidation,
		"Invalid email format",
		http.StatusBadRequest,
	)

	ErrNameRequired = apperror.New(
		apperror.CodeValidation,
		"Name cannot be empty",
		http.StatusBadRequest,
	)

	ErrPasswordRequired = apperror.New(
		apperror.CodeValidation,
		"Password is required",
		http.StatusBadRequest,
	)

	ErrPasswordIsDigest = apperror.Validation(
		"Password must be sent as plain text",
		map[string]string{"password": "Password must be sent as plain text"},
	)

	ErrReportingManagerNotFound = apperror.New(
		apperror.CodeValidation,
		"Reporting manager not found",
		http.StatusBadRequest,
	)

	ErrSelfReportingManager = apperror.New(
		apperror.CodeValidation,
		"An employee cannot report to themselves",
		http.StatusBadRequest,
	)

	ErrRoleNotAllowed = apperror.New(
		apperror.CodeUnauthorized,
		"You are not allowed to perform this action",
		http.StatusForbidden,
	)

	ErrCannotDeleteSuperAdmin = apperror.New(
		apperror.CodeForbidden,
		"Cannot delete Super Admin",
		http.StatusForbidden,
	)

	ErrDeleteNotAllowed = apperror.New(
		apperror.CodeForbidden,
		"You are not allowed to delete this account",
		http.StatusForbidden,
	)
)

// AdminEmailDomain is returned when an admin account uses another domain.
func AdminEmailDomain(domain string) *apperror.AppError {
	return apperror.Validation(
		"Admins must use @"+domain+" email addresses",
		map[string]string{"email": "Admins must use @" + domain + " email addresses"},
	)
}

// EmployeeEmailDomain is returned when an employee account uses another domain.
func EmployeeEmailDomain(domain string) *apperror.AppError {
	return apperror.Validation(
		"Employees must use @"+domain+" email addresses",
		map[string]string{"email": "Employees must use @" + domain + " email addresses"},
	)
}
