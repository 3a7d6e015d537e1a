package model

import "fmt"

// Credential is an eligibility edge stating a provider may be scheduled
// at a client. At most one edge exists per (provider, client) pair.
type Credential struct {
	Key        string `json:"key"`
	ID         int64  `json:"id"`
	ProviderID string `json:"provider_id" validate:"required"`
	ClientID   string `json:"client_id" validate:"required"`
}

// SetKey sets the database key for this credential.
func (c *Credential) SetKey(key string) {
	c.Key = key
}

// GetKey returns the database key for this credential.
func (c *Credential) GetKey() string {
	return c.Key
}

// GenerateCredentialKey generates a database key for a credential.
// Ids are zero-padded so lexicographic key order matches numeric order.
func GenerateCredentialKey(id int64) string {
	return fmt.Sprintf("%s:%012d", PrefixCredential, id)
}

// NewCredential creates a new credential edge. The id is assigned on insert.
func NewCredential(providerID, clientID string) *Credential {
	return &Credential{
		ProviderID: providerID,
		ClientID:   clientID,
	}
}
