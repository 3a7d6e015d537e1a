package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("provider_name", "cannot be empty")
	assert.Equal(t, "provider_name: cannot be empty", err.Error())
	assert.True(t, IsValidationError(err))

	withValue := NewValidationErrorWithValue("provider_id", "!!", "invalid id format", "Use letters, numbers, dashes.")
	assert.Contains(t, withValue.Error(), "'!!'")
}

func TestValidationErrorThroughChain(t *testing.T) {
	err := fmt.Errorf("add provider: %w", NewValidationError("provider_id", "cannot be empty"))
	assert.True(t, IsValidationError(err))

	ve, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "provider_id", ve.Field)
}

func TestStorageError(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := NewStorageError("open", cause)

	assert.Contains(t, err.Error(), "open")
	assert.Contains(t, err.Error(), "permission denied")
	assert.True(t, IsStorageUnavailable(err))
	assert.True(t, stderrors.Is(err, ErrStorageUnavailable))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrProviderNotFound))
	assert.True(t, IsNotFound(ErrClientNotFound))
	assert.True(t, IsNotFound(ErrCredentialNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("edit: %w", ErrShiftNotFound)))
	assert.False(t, IsNotFound(ErrEndBeforeStart))
	assert.False(t, IsNotFound(nil))
}

func TestGetSuggestion(t *testing.T) {
	assert.NotEmpty(t, GetSuggestion(ErrShiftNotFound))
	assert.Empty(t, GetSuggestion(stderrors.New("something else")))

	// ValidationError suggestion wins
	ve := NewValidationErrorWithValue("client_id", "", "cannot be empty", "Pass --client.")
	assert.Equal(t, "Pass --client.", GetSuggestion(ve))
}

func TestFormatError(t *testing.T) {
	msg := FormatError(ErrEndBeforeStart)
	assert.Contains(t, msg, "end time must be after start time")
	assert.Contains(t, msg, "Check your timestamps")
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))

	err := Wrap(ErrShiftNotFound, "edit shift")
	assert.True(t, stderrors.Is(err, ErrShiftNotFound))
	assert.Contains(t, err.Error(), "edit shift")

	err = Wrapf(ErrShiftNotFound, "edit shift %s", "abc")
	assert.Contains(t, err.Error(), "abc")
}
