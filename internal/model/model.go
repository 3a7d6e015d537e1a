// Package model defines the domain records for Shiftbook.
package model

// Model is the interface that all persisted records must implement.
type Model interface {
	// SetKey sets the database key for this record.
	SetKey(key string)
	// GetKey returns the database key for this record.
	GetKey() string
}

// KeyPrefix constants for database key generation.
const (
	PrefixProvider   = "provider"
	PrefixClient     = "client"
	PrefixCredential = "credential"
	PrefixShift      = "shift"
)
