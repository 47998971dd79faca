package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized is unwrapped from any 401 response. The caller clears the
// stored token and routes to login; a stale token is never silently retried.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx backend response with the server's error message
// when one was decodable.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d %s", e.Status, http.StatusText(e.Status))
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}
