package service

import (
	"errors"
	"fmt"

	"github.com/blog-posts-api/internal/validation"
)

// Sentinel errors for the outcomes the transport layer maps to status
// codes. All of them are deterministic and non-retryable.
var (
	// ErrNotFound covers both genuinely absent resources and resources
	// hidden from the caller by the visibility filter, so existence is
	// never leaked through a 403.
	ErrNotFound = errors.New("not found")

	// ErrAuthRequired is returned when an anonymous caller attempts an
	// operation that needs an identity.
	ErrAuthRequired = errors.New("authentication required")

	// ErrPermissionDenied is returned when an authenticated caller is
	// not allowed to perform the operation.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidCredentials is returned on a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries field-level detail for a 400 response
type ValidationError struct {
	Fields []validation.ValidationError
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("validation failed: %s", e.Fields[0].Message)
	}
	return fmt.Sprintf("validation failed: %d invalid fields", len(e.Fields))
}

// newValidationError wraps field errors, or returns nil when there are none
func newValidationError(fields []validation.ValidationError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// denied picks between the authentication and permission outcomes
// based on whether the caller presented an identity at all
func denied(isAuthenticated bool) error {
	if !isAuthenticated {
		return ErrAuthRequired
	}
	return ErrPermissionDenied
}
