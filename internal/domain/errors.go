package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrStreamReference is returned when a request names a stream by both id
	// and name, or by neither.
	ErrStreamReference = errors.New("exactly one of stream id or stream name required")
	ErrStreamNotFound  = errors.New("stream not found")
	ErrNoOverride      = errors.New("no visibility policy to remove")
	ErrInvalidPolicy   = errors.New("invalid visibility policy")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// StreamReferenceError carries the user-facing reason a stream reference was
// rejected. It unwraps to ErrStreamReference.
type StreamReferenceError struct {
	Message string
}

func (e *StreamReferenceError) Error() string { return e.Message }

func (e *StreamReferenceError) Unwrap() error { return ErrStreamReference }

// RemovalError is returned by removal lookups. Message is supplied by the
// caller so each call site can word the failure its own way; Err is either
// ErrStreamNotFound or ErrNoOverride.
type RemovalError struct {
	Message string
	Err     error
}

func (e *RemovalError) Error() string { return e.Message }

func (e *RemovalError) Unwrap() error { return e.Err }

// NewRemovalError creates a RemovalError wrapping cause.
func NewRemovalError(message string, cause error) *RemovalError {
	return &RemovalError{Message: message, Err: cause}
}

// AccessError is returned by stream lookups. A stream the user may not see is
// reported with the same Message as one that does not exist; Err tells them
// apart (ErrStreamNotFound or ErrForbidden).
type AccessError struct {
	Message string
	Err     error
}

func (e *AccessError) Error() string { return e.Message }

func (e *AccessError) Unwrap() error { return e.Err }
