// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Validation errors.
	ErrValidation     = errors.New("validation failed")
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrNotFound       = errors.New("not found")

	// Import errors.
	ErrImport = errors.New("import failed")

	// Persistence errors.
	ErrPersistence = errors.New("persistence failed")

	// Session errors.
	ErrNotLoggedIn        = errors.New("no user logged in")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// ValidationError builds a user-input error carrying the ErrValidation
// sentinel so callers can classify it.
func ValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
