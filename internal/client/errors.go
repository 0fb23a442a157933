package client

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a business-logic error returned by the backend (4xx). The
// message is the one the server put in the response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// ServerUnavailableError indicates the backend could not service the
// request at all: transport failure, timeout, or a 5xx response.
// StatusCode is 0 when no response was received.
type ServerUnavailableError struct {
	StatusCode int
	Cause      error
}

func (e *ServerUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("server unavailable: %v", e.Cause)
	}
	return fmt.Sprintf("server unavailable: status %d", e.StatusCode)
}

func (e *ServerUnavailableError) Unwrap() error { return e.Cause }

// IsServerUnavailable reports whether err means the server was unreachable,
// timed out, or failed with 5xx. Callers may offer a manual retry for these;
// business errors must not be retried.
func IsServerUnavailable(err error) bool {
	var ue *ServerUnavailableError
	return errors.As(err, &ue)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == http.StatusNotFound
}

// IsConflict reports whether err is a 409 from the backend.
func IsConflict(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == http.StatusConflict
}

// ErrorMessage returns a user-facing message for err.
func ErrorMessage(err error) string {
	if IsServerUnavailable(err) {
		return "Server is currently unavailable. Please try again later."
	}
	var ae *APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return "An unexpected error occurred"
}
