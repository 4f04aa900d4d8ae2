// Package errs holds the error taxonomy shared by the stores and the HTTP layer.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when a request carries no usable identity.
	ErrUnauthorized = errors.New("not authorized")
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrConstraintViolation is returned when a write breaks a uniqueness constraint.
	ErrConstraintViolation = errors.New("unique constraint violated")
	// ErrTransient marks network, store and cache failures worth retrying.
	ErrTransient = errors.New("transient store failure")
)

// ValidationError is a malformed or incomplete request payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation builds a ValidationError from a format string.
func Validation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Transient wraps err so that errors.Is(err, ErrTransient) holds.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrTransient, err)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
