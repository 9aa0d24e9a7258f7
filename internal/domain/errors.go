package domain

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Error taxonomy
// Every failure the gateway reports is an *APIError with one of the kinds
// below. Callers branch on Kind, not on status codes.
// -----------------------------------------------------------------------------

// ErrorKind classifies gateway failures
type ErrorKind string

const (
	// KindUnauthorized means the backend rejected the credential; the
	// forced-logout protocol has already run by the time the caller sees it.
	KindUnauthorized ErrorKind = "unauthorized"
	// KindRequestFailed is any other non-2xx response, with the backend's
	// own message attached.
	KindRequestFailed ErrorKind = "request_failed"
	// KindTransport covers network failures and malformed responses.
	KindTransport ErrorKind = "transport"
)

// APIError is a structured failure from the API gateway
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	cause   error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// NewAPIError creates a new API error
func NewAPIError(kind ErrorKind, status int, message string) *APIError {
	return &APIError{Kind: kind, Status: status, Message: message}
}

// WithCause wraps an underlying error
func (e *APIError) WithCause(err error) *APIError {
	e.cause = err
	return e
}

// ErrorKindOf extracts the kind from an error chain; empty when err is not
// an APIError
func ErrorKindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// IsUnauthorized reports whether err is an authentication failure
func IsUnauthorized(err error) bool {
	return ErrorKindOf(err) == KindUnauthorized
}

// Validation errors raised client-side before a call is issued
var (
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidLevel     = errors.New("invalid level")
	ErrTitleRequired    = errors.New("title is required")
	ErrCategoryRequired = errors.New("category is required")
)
