package services

import (
	"errors"
	"fmt"
)

// ValidationError represents malformed or missing input. It is surfaced to
// the caller immediately; nothing is written to the store.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the VALIDATION_ERROR code.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Code:    "VALIDATION_ERROR",
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFoundError represents an operation referencing a nonexistent record.
// The operation aborts with no partial effect.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}
