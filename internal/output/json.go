package output

import (
	"time"

	"github.com/rostrahealth/shiftbook/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// ShiftOutput represents a shift in JSON output.
type ShiftOutput struct {
	ID            string  `json:"shift_id"`
	ProviderID    string  `json:"provider_id,omitempty"`
	ProviderName  string  `json:"provider_name"`
	ClientID      string  `json:"client_id"`
	ClientName    string  `json:"client_name"`
	Start         string  `json:"start_datetime"`
	End           string  `json:"end_datetime"`
	Type          string  `json:"shift_type,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	DurationHours float64 `json:"duration_hours"`
	IsCall        bool    `json:"is_call"`
	IsUnfilled    bool    `json:"is_unfilled"`
}

// NewShiftOutput creates a ShiftOutput with resolved display names.
func NewShiftOutput(s *model.Shift, providerName, clientName string) *ShiftOutput {
	return &ShiftOutput{
		ID:            s.ID,
		ProviderID:    s.ProviderID,
		ProviderName:  providerName,
		ClientID:      s.ClientID,
		ClientName:    clientName,
		Start:         s.Start.Format(time.RFC3339),
		End:           s.End.Format(time.RFC3339),
		Type:          s.Type,
		Notes:         s.Notes,
		DurationHours: s.Duration().Hours(),
		IsCall:        s.IsCall(),
		IsUnfilled:    s.IsUnfilled(),
	}
}

// ProviderOutput represents a provider in JSON output.
type ProviderOutput struct {
	ID             string   `json:"provider_id"`
	Name           string   `json:"provider_name"`
	Specialty      string   `json:"specialty,omitempty"`
	PreferredStart string   `json:"preferred_shift_start,omitempty"`
	PreferredEnd   string   `json:"preferred_shift_end,omitempty"`
	PreferredDays  []string `json:"preferred_days,omitempty"`
}

// NewProviderOutput creates a ProviderOutput from a Provider.
func NewProviderOutput(p *model.Provider) *ProviderOutput {
	return &ProviderOutput{
		ID:             p.ID,
		Name:           p.Name,
		Specialty:      p.Specialty,
		PreferredStart: p.PreferredStart,
		PreferredEnd:   p.PreferredEnd,
		PreferredDays:  p.PreferredDays,
	}
}

// ClientOutput represents a client in JSON output.
type ClientOutput struct {
	ID       string `json:"client_id"`
	Name     string `json:"client_name"`
	Location string `json:"location,omitempty"`
}

// NewClientOutput creates a ClientOutput from a Client.
func NewClientOutput(c *model.Client) *ClientOutput {
	return &ClientOutput{ID: c.ID, Name: c.Name, Location: c.Location}
}

// CredentialOutput represents a credential in JSON output.
type CredentialOutput struct {
	ID         int64  `json:"credential_id"`
	ProviderID string `json:"provider_id"`
	ClientID   string `json:"client_id"`
}

// NewCredentialOutput creates a CredentialOutput from a Credential.
func NewCredentialOutput(c *model.Credential) *CredentialOutput {
	return &CredentialOutput{ID: c.ID, ProviderID: c.ProviderID, ClientID: c.ClientID}
}

// ShiftsResponse represents a shift list output in JSON.
type ShiftsResponse struct {
	Shifts     []*ShiftOutput `json:"shifts"`
	Count      int            `json:"count"`
	Year       int            `json:"year,omitempty"`
	Month      string         `json:"month,omitempty"`
	TotalHours float64        `json:"total_hours"`
}

// MutationResponse represents an add/edit/duplicate/delete result in JSON.
type MutationResponse struct {
	Status string       `json:"status"`
	Shift  *ShiftOutput `json:"shift,omitempty"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ImportResponse represents an import result in JSON.
type ImportResponse struct {
	Status   string   `json:"status"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// ExportResponse represents an export result in JSON.
type ExportResponse struct {
	Status string `json:"status"`
	Rows   int    `json:"rows"`
	Output string `json:"output,omitempty"`
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message string) error {
	resp := ErrorResponse{
		Status:  status,
		Error:   errMsg,
		Message: message,
	}
	return j.JSON(resp)
}
