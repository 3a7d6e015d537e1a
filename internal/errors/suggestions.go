package errors

import "errors"

// Suggestions provides helpful suggestions for common errors.
var Suggestions = map[error]string{
	ErrProviderNotFound:    "Use 'shiftbook provider' to see available providers.",
	ErrClientNotFound:      "Use 'shiftbook client' to see available clients.",
	ErrCredentialNotFound:  "Use 'shiftbook credential' to see existing credentials.",
	ErrShiftNotFound:       "Use 'shiftbook shift' to see existing shifts.",
	ErrEndBeforeStart:      "Check your timestamps - end must come after start.",
	ErrDuplicateCredential: "The provider is already credentialed at this client.",
	ErrInvalidTimestamp:    "Try formats like '2025-01-10 08:00' or 'jan 10 8am'.",
	ErrInvalidMonth:        "Try formats like 'january 2025', '2025-01', or 'jan'.",
	ErrStorageUnavailable:  "Check the data path and its permissions, then try again.",
}

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	if ve, ok := AsValidationError(err); ok && ve.Suggestion != "" {
		return ve.Suggestion
	}
	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}
	return ""
}

// FormatError formats an error with an optional suggestion.
func FormatError(err error) string {
	msg := err.Error()
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}
