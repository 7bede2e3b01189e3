package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable = errors.New("server unavailable")
)

// APIError is a request the server answered with a non-2xx status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(status int, msg string) *APIError {
	if msg == "" {
		msg = fmt.Sprintf("unexpected status %d", status)
	}
	return &APIError{Status: status, Message: msg}
}
