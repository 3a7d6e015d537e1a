package model

import "fmt"

// Client represents a facility (site) that can receive staffing.
type Client struct {
	Key      string `json:"key"`
	ID       string `json:"client_id" validate:"required,max=32"`
	Name     string `json:"client_name" validate:"required,max=128"`
	Location string `json:"location,omitempty"`
}

// SetKey sets the database key for this client.
func (c *Client) SetKey(key string) {
	c.Key = key
}

// GetKey returns the database key for this client.
func (c *Client) GetKey() string {
	return c.Key
}

// GenerateClientKey generates a database key for a client.
func GenerateClientKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixClient, id)
}

// NewClient creates a new client with the given parameters.
func NewClient(id, name, location string) *Client {
	return &Client{
		ID:       id,
		Name:     name,
		Location: location,
	}
}
