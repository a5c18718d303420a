package autherrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

// ErrInvalidCredentials covers unknown email and wrong password alike.
var ErrInvalidCredentials = apperror.New(
	apperror.CodeUnauthenticated,
	"Invalid credentials",
	http.StatusUnauthorized,
)
