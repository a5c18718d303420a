package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrRouteNotFound = New(
		CodeNotFound,
		"Route not found",
		http.StatusNotFound,
	)

	// ErrUnauthorized is a valid session whose role is not allowed on the route.
	ErrUnauthorized = New(
		CodeUnauthorized,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrForbidden = New(
		CodeForbidden,
		"This operation is not allowed",
		http.StatusForbidden,
	)

	ErrUnauthenticated = New(
		CodeUnauthenticated,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInternal = New(
		CodeInternalError,
		"Internal server error",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrInvalidPayload = New(
		CodeInvalidInput,
		"Invalid request payload",
		http.StatusBadRequest,
	)

	ErrTooManyRequests = New(
		CodeTooManyRequests,
		"Too many requests. Try again later.",
		http.StatusTooManyRequests,
	)

	ErrServiceUnavailable = New(
		CodeServiceUnavailable,
		"Service unavailable",
		http.StatusServiceUnavailable,
	)
)
