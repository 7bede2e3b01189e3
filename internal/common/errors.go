// Package common defines sentinel errors and small helpers shared by the
// server and the CLI client. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// repository specific errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// service specific errors
	ErrorInternal     = errors.New("internal error")
	ErrorValidation   = errors.New("validation error")
	ErrorUnauthorized = errors.New("unauthorized")

	// reset-specific errors
	ErrInvalidToken = errors.New("invalid token")
)
