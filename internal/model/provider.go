package model

import (
	"fmt"
	"strings"
)

// Provider represents a staffable clinician.
type Provider struct {
	Key            string   `json:"key"`
	ID             string   `json:"provider_id" validate:"required,max=32"`
	Name           string   `json:"provider_name" validate:"required,max=128"`
	Specialty      string   `json:"specialty,omitempty"`
	PreferredStart string   `json:"preferred_shift_start,omitempty"`
	PreferredEnd   string   `json:"preferred_shift_end,omitempty"`
	PreferredDays  []string `json:"preferred_days,omitempty"`
}

// SetKey sets the database key for this provider.
func (p *Provider) SetKey(key string) {
	p.Key = key
}

// GetKey returns the database key for this provider.
func (p *Provider) GetKey() string {
	return p.Key
}

// GenerateProviderKey generates a database key for a provider.
func GenerateProviderKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixProvider, id)
}

// NewProvider creates a new provider with the given parameters.
func NewProvider(id, name, specialty string) *Provider {
	return &Provider{
		ID:        id,
		Name:      name,
		Specialty: specialty,
	}
}

// JoinDays serializes a preferred-days list for flat storage and CSV.
func JoinDays(days []string) string {
	return strings.Join(days, ";")
}

// SplitDays parses a serialized preferred-days list.
func SplitDays(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	days := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			days = append(days, p)
		}
	}
	return days
}
