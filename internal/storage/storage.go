// Package storage provides the record store for Shiftbook.
//
// Two interchangeable backends implement the same typed contracts: a
// Badger-backed document store (one JSON document per record) and a SQLite
// relational store. Validation happens before records reach either backend;
// the store only reports not-found and medium-level failures.
package storage

import (
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	badger "github.com/dgraph-io/badger/v4"

	"github.com/rostrahealth/shiftbook/internal/model"
)

const (
	// AppName is the application name used for data directories.
	AppName = "shiftbook"
)

// Backend selects the persistence implementation.
type Backend string

const (
	// BackendDocument stores one JSON document per record in Badger.
	BackendDocument Backend = "document"
	// BackendSQLite stores records in relational SQLite tables.
	BackendSQLite Backend = "sqlite"
)

// ErrNotFound is returned when a record is not found in the store.
var ErrNotFound = stderrors.New("record not found")

// IsNotFound returns true if the error is a record not found error.
func IsNotFound(err error) bool {
	return stderrors.Is(err, ErrNotFound) || stderrors.Is(err, badger.ErrKeyNotFound)
}

// Options configures the store.
type Options struct {
	// Backend selects the implementation. Empty defaults to BackendDocument.
	Backend Backend
	// Path is the data directory (document) or database file (sqlite).
	// Empty string uses in-memory mode.
	Path string
	// InMemory forces in-memory mode regardless of Path.
	InMemory bool
}

// ProviderStore holds provider records keyed by provider id.
type ProviderStore interface {
	List() ([]*model.Provider, error)
	Get(id string) (*model.Provider, error)
	// Upsert inserts the record or replaces the full row under the same id.
	Upsert(p *model.Provider) error
	// Delete removes the record; absent ids are a no-op.
	Delete(id string) error
}

// ClientStore holds client records keyed by client id.
type ClientStore interface {
	List() ([]*model.Client, error)
	Get(id string) (*model.Client, error)
	Upsert(c *model.Client) error
	Delete(id string) error
}

// CredentialStore holds credential edges with auto-assigned numeric ids.
type CredentialStore interface {
	List() ([]*model.Credential, error)
	Get(id int64) (*model.Credential, error)
	// Insert assigns the next id and stores the edge.
	Insert(c *model.Credential) error
	// Find returns the edge for a (provider, client) pair, or ErrNotFound.
	Find(providerID, clientID string) (*model.Credential, error)
	Delete(id int64) error
}

// ShiftStore holds shift records keyed by shift id.
// List returns shifts ordered by start timestamp ascending.
type ShiftStore interface {
	List() ([]*model.Shift, error)
	Get(id string) (*model.Shift, error)
	Upsert(s *model.Shift) error
	Delete(id string) error
}

// Store aggregates the per-entity stores of one backend.
type Store interface {
	Providers() ProviderStore
	Clients() ClientStore
	Credentials() CredentialStore
	Shifts() ShiftStore
	Close() error
}

// DefaultPath returns the default document store path following XDG spec.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, "db")
}

// DefaultSQLitePath returns the default SQLite database path.
func DefaultSQLitePath() string {
	return filepath.Join(xdg.DataHome, AppName, "shiftbook.db")
}

// Open opens a store for the configured backend.
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case BackendSQLite:
		return openSQLite(opts)
	case BackendDocument, "":
		return openDocument(opts)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
