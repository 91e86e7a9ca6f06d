package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every service. Callers branch on these with
// errors.Is; the API layer maps them onto HTTP status codes.
var (
	// ErrNotFound: the requested run, channel, trigger or settings row
	// does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists: a unique constraint would be violated.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidState: the operation does not apply to the entity's
	// current status, such as waking a completed run.
	ErrInvalidState = errors.New("invalid entity state")

	// ErrConcurrentModification: an optimistic update lost to another
	// writer and ran out of retries.
	ErrConcurrentModification = errors.New("concurrent modification detected")
)

// ValidationError reports a bad field in a request, keeping the field
// name addressable for API error payloads.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
