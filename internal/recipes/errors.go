package recipes

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidRecipe is returned before any request when a recipe payload
// cannot be sent.
var ErrInvalidRecipe = errors.New("recipe title is required")

// ErrMissingID is returned before any request when an operation targets a
// blank recipe identifier.
var ErrMissingID = errors.New("recipe id required")

// StatusError reports a response whose status is outside the 2xx range.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.Code)
}

// TransportError reports a request that never produced a response.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusCode extracts the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code, true
	}
	return 0, false
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusNotFound
}

// IsTransport reports whether err means the backend was never reached.
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}
