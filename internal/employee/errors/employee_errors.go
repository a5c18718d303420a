package employeeerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidReportingManager = apperror.Validation(
		"Invalid reporting manager ID",
		map[string]string{"reportingManager": "Reporting Manager must be a valid ID"},
	)
	ErrInvalidJoiningDate = apperror.Validation(
		"Invalid joining date",
		map[string]string{"joiningDate": "Joining Date must use the YYYY-MM-DD format"},
	)
	ErrNegativeSalary = apperror.Validation(
		"Salary cannot be negative",
		map[string]string{"salary": "Salary cannot be negative"},
	)
	ErrSalaryTooLarge = apperror.Validation(
		"Salary is too large",
		map[string]string{"salary": "Salary must be less than 1000000000000"},
	)
)
