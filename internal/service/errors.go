package service

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when input validation fails. Every
// *ValidationError matches it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError represents a validation error with a field name.
// Message is safe to show to API clients.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// Is reports whether target is ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
