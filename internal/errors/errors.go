// Package errors provides consistent error types for the Shiftbook CLI.
// It defines three main categories: validation errors (fixable by the user),
// not-found conditions (no-op mutations, placeholder reads), and storage
// errors (the underlying medium cannot be opened or written).
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrProviderNotFound    = errors.New("provider not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrCredentialNotFound  = errors.New("credential not found")
	ErrShiftNotFound       = errors.New("shift not found")
	ErrEndBeforeStart      = errors.New("end time must be after start time")
	ErrDuplicateCredential = errors.New("credential already exists for this provider and client")
	ErrInvalidTimestamp    = errors.New("invalid timestamp")
	ErrInvalidMonth        = errors.New("invalid month")
	ErrStorageUnavailable  = errors.New("storage unavailable")
)

// ValidationError represents a rejected input that the user can fix.
// The operation aborts before any write reaches the store.
type ValidationError struct {
	Field      string // The field that failed validation
	Value      string // The invalid value (optional)
	Message    string // What is wrong
	Suggestion string // How to fix it (optional)
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s: '%s'", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewValidationErrorWithValue creates a new ValidationError carrying the
// offending value and a suggestion.
func NewValidationErrorWithValue(field, value, message, suggestion string) *ValidationError {
	return &ValidationError{
		Field:      field,
		Value:      value,
		Message:    message,
		Suggestion: suggestion,
	}
}

// StorageError represents a failure of the underlying storage medium.
// It is fatal to the current operation and is never retried.
type StorageError struct {
	Op    string // The operation that failed (e.g. "open", "upsert")
	Cause error  // The underlying error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage unavailable during %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("storage unavailable during %s", e.Op)
}

func (e *StorageError) Unwrap() error {
	return ErrStorageUnavailable
}

// NewStorageError creates a new StorageError.
func NewStorageError(op string, cause error) *StorageError {
	return &StorageError{Op: op, Cause: cause}
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsValidationError extracts a ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// IsNotFound checks if an error is any of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProviderNotFound) ||
		errors.Is(err, ErrClientNotFound) ||
		errors.Is(err, ErrCredentialNotFound) ||
		errors.Is(err, ErrShiftNotFound)
}

// IsStorageUnavailable checks if an error indicates an unreachable store.
func IsStorageUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
