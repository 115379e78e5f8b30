package services

import "errors"

var (
	// ErrNotFound covers missing, foreign-owned and soft-deleted resources
	// alike so ownership is never leaked through error shape.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned for absent users, deactivated
	// accounts and wrong passwords. One message for all three paths.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailTaken = errors.New("email already registered")
)

// ValidationError marks input rejected before it reached the store.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
