package nocobase

import (
	"errors"
	"fmt"
	"net/http"
)

// Input validation errors, returned before any request is sent.
var (
	ErrEmptyCollection = errors.New("nocobase: collection must not be empty")
	ErrEmptyPK         = errors.New("nocobase: pk must not be empty")
	ErrEmptyValues     = errors.New("nocobase: values must not be empty")
	ErrEmptyName       = errors.New("nocobase: collection name must not be empty")
	ErrEmptyPayload    = errors.New("nocobase: payload must not be empty")
	ErrMissingName     = errors.New("nocobase: payload must include the collection name")
	ErrEmptyPath       = errors.New("nocobase: action path must not be empty")
)

// APIError is a non-2xx response from the server. Status code and raw
// body are preserved so callers can inspect the real failure.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("nocobase: %s %s returned status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("nocobase: %s %s returned status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// IsClientError reports whether the response status is 4xx.
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError reports whether the response status is 5xx.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// IsNotFound reports whether the response status is 404.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether the response status is 401.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is an API error with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsNotFound()
}

// IsUnauthorized reports whether err is an API error with status 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsUnauthorized()
}
