// Package apperrors defines the error taxonomy shared by services and the
// HTTP error translation middleware.
package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrDepartmentNotFound = errors.New("department not found")
	ErrConflict           = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Activation errors
	ErrInvalidApprovalToken = errors.New("invalid or expired approval token")
)

// FieldError carries the field that caused a validation or conflict error,
// so handlers can return field-tagged responses. It wraps one of the
// sentinel errors above for errors.Is checks.
type FieldError struct {
	Err     error
	Field   string
	Message string
}

// Error implements the error interface
func (e *FieldError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

// Unwrap implements errors.Unwrap
func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a field-tagged validation error
func NewValidationError(field, message string) *FieldError {
	return &FieldError{
		Err:     ErrValidationFailed,
		Field:   field,
		Message: message,
	}
}

// NewConflictError creates a field-tagged conflict error for duplicate
// unique fields and illegal status transitions
func NewConflictError(field, message string) *FieldError {
	return &FieldError{
		Err:     ErrConflict,
		Field:   field,
		Message: message,
	}
}
