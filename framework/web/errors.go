package web

import (
	"net/http"
)

// Machine-readable error codes exposed to callers. The set is deliberately
// closed: collaborator failures of any kind surface as CodeInternal and the
// original error stays in the logs only.
const (
	CodeUnauthenticated = "unauthenticated"
	CodeInvalidArgument = "invalid-argument"
	CodeNotFound        = "not-found"
	CodeInternal        = "internal"
)

// ErrorResponse is the form used for API responses from failures in the API.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Error is used to pass an error during the request through the
// application with web specific context.
type Error struct {
	Err    error
	Status int
}

// NewRequestError wraps a provided error with an HTTP status code. This
// function should be used when handlers encounter expected errors.
func NewRequestError(err error, status int) error {
	return &Error{err, status}
}

// Error implements the error interface. It uses the default message of the
// wrapped error. This is what will be shown in the service's logs.
func (err *Error) Error() string {
	return err.Err.Error()
}

// Code maps the HTTP status to the caller-visible error code.
func (err *Error) Code() string {
	return CodeForStatus(err.Status)
}

// CodeForStatus returns the machine-readable code for an HTTP status.
func CodeForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return CodeUnauthenticated
	case http.StatusBadRequest:
		return CodeInvalidArgument
	case http.StatusNotFound:
		return CodeNotFound
	default:
		return CodeInternal
	}
}

// shutdown is a type used to help with the graceful termination of the service.
type shutdown struct {
	Message string
}

// NewShutdownError returns an error that causes the framework to signal
// a graceful shutdown.
func NewShutdownError(message string) error {
	return &shutdown{message}
}

// Error is the implementation of the error interface.
func (s *shutdown) Error() string {
	return s.Message
}

// IsShutdown checks to see if the shutdown error is contained
// in the specified error value.
func IsShutdown(err error) bool {
	if _, ok := err.(*shutdown); ok {
		return true
	}

	return false
}
