// Package validate provides input validation for Shiftbook records.
// Validation always runs before a record reaches the store.
package validate

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rostrahealth/shiftbook/internal/errors"
	"github.com/rostrahealth/shiftbook/internal/model"
)

const (
	// MaxIDLength is the maximum length for an entity id.
	MaxIDLength = 32
	// MaxNameLength is the maximum length for a display name.
	MaxNameLength = 128
	// MaxNotesLength is the maximum length for shift notes.
	MaxNotesLength = 4096
)

// idRegex validates entity ids (alphanumeric, dashes, underscores, periods).
var idRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// timeOfDayRegex validates HH:MM preferences.
var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// EntityID validates an entity id.
func EntityID(field, id string) error {
	if id == "" {
		return errors.NewValidationError(field, "cannot be empty")
	}
	if len(id) > MaxIDLength {
		return errors.NewValidationErrorWithValue(field, id,
			"id too long",
			"Ids must be 32 characters or fewer")
	}
	if !idRegex.MatchString(id) {
		return errors.NewValidationErrorWithValue(field, id,
			"invalid id format",
			"Ids must start with a letter or number and contain only letters, numbers, dashes, underscores, or periods")
	}
	return nil
}

// Name validates a display name.
func Name(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewValidationError(field, "cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return errors.NewValidationErrorWithValue(field, name,
			"name too long",
			"Names must be 128 characters or fewer")
	}
	return nil
}

// TimeOfDay validates an optional HH:MM time-of-day preference.
func TimeOfDay(field, value string) error {
	if value == "" {
		return nil
	}
	if !timeOfDayRegex.MatchString(value) {
		return errors.NewValidationErrorWithValue(field, value,
			"invalid time of day",
			"Use 24-hour HH:MM format like '07:00'")
	}
	return nil
}

// Notes validates free-form notes.
func Notes(notes string) error {
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return errors.NewValidationError("notes",
			"notes too long (4096 characters or fewer)")
	}
	return nil
}

// TimeRange validates that end is strictly after start.
func TimeRange(start, end time.Time) error {
	if start.IsZero() {
		return errors.NewValidationError("start_datetime", "cannot be empty")
	}
	if end.IsZero() {
		return errors.NewValidationError("end_datetime", "cannot be empty")
	}
	if !end.After(start) {
		return errors.ErrEndBeforeStart
	}
	return nil
}

// Provider validates a full provider record.
func Provider(p *model.Provider) error {
	if err := EntityID("provider_id", p.ID); err != nil {
		return err
	}
	if err := Name("provider_name", p.Name); err != nil {
		return err
	}
	if err := TimeOfDay("preferred_shift_start", p.PreferredStart); err != nil {
		return err
	}
	return TimeOfDay("preferred_shift_end", p.PreferredEnd)
}

// Client validates a full client record.
func Client(c *model.Client) error {
	if err := EntityID("client_id", c.ID); err != nil {
		return err
	}
	return Name("client_name", c.Name)
}

// Credential validates a credential edge before insert.
func Credential(c *model.Credential) error {
	if err := EntityID("provider_id", c.ProviderID); err != nil {
		return err
	}
	return EntityID("client_id", c.ClientID)
}

// Shift validates a full shift record. The provider id may be empty
// (an unfilled shift); the client id may not.
func Shift(s *model.Shift) error {
	if s.ProviderID != "" {
		if err := EntityID("provider_id", s.ProviderID); err != nil {
			return err
		}
	}
	if err := EntityID("client_id", s.ClientID); err != nil {
		return err
	}
	if err := TimeRange(s.Start, s.End); err != nil {
		return err
	}
	return Notes(s.Notes)
}
