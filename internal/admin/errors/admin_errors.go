package adminerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var ErrInvalidAdminID = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid admin ID",
	http.StatusBadRequest,
)
