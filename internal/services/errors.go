package services

import "errors"

// Request-shape errors surfaced directly to the caller; anything else that
// escapes a service is an infrastructure failure the transport layer reports
// opaquely.
var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("user not authenticated")
	ErrValidation      = errors.New("invalid request")
)
