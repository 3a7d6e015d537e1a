package model

import (
	"fmt"
	"time"
)

// CallShiftDuration is the duration that classifies a shift as a 24-hour call.
const CallShiftDuration = 24 * time.Hour

// callEpsilon absorbs rounding and entry slop when classifying call
// shifts: anything within a minute of 24 hours counts.
const callEpsilon = time.Minute

// Shift is the central scheduled unit: a provider working at a client
// between two timestamps. An empty ProviderID means the shift is unfilled.
type Shift struct {
	Key        string    `json:"key"`
	ID         string    `json:"shift_id" validate:"required"`
	ProviderID string    `json:"provider_id,omitempty"`
	ClientID   string    `json:"client_id" validate:"required"`
	Start      time.Time `json:"start_datetime" validate:"required"`
	End        time.Time `json:"end_datetime" validate:"required"`
	Type       string    `json:"shift_type,omitempty"`
	Notes      string    `json:"notes,omitempty"`
}

// SetKey sets the database key for this shift.
func (s *Shift) SetKey(key string) {
	s.Key = key
}

// GetKey returns the database key for this shift.
func (s *Shift) GetKey() string {
	return s.Key
}

// Duration returns the scheduled duration of the shift.
func (s *Shift) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// IsCall reports whether the shift is a 24-hour call shift. The
// classification is derived from the timestamps, never stored.
func (s *Shift) IsCall() bool {
	diff := s.Duration() - CallShiftDuration
	if diff < 0 {
		diff = -diff
	}
	return diff <= callEpsilon
}

// IsUnfilled reports whether the shift has no provider assigned.
func (s *Shift) IsUnfilled() bool {
	return s.ProviderID == ""
}

// GenerateShiftKey generates a database key for a shift.
func GenerateShiftKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixShift, id)
}

// NewShift creates a new shift with the given parameters.
func NewShift(providerID, clientID string, start, end time.Time, shiftType, notes string) *Shift {
	return &Shift{
		ProviderID: providerID,
		ClientID:   clientID,
		Start:      start,
		End:        end,
		Type:       shiftType,
		Notes:      notes,
	}
}
