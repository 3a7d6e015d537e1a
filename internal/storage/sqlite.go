package storage

import (
	"database/sql"
	"embed"
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	apperrors "github.com/rostrahealth/shiftbook/internal/errors"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// sqliteStore is the SQLite relational backend.
type sqliteStore struct {
	db *sql.DB
}

func openSQLite(opts Options) (*sqliteStore, error) {
	path := opts.Path
	if opts.InMemory || path == "" {
		path = ":memory:"
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, apperrors.NewStorageError("open", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, apperrors.NewStorageError("open", err)
	}

	s := &sqliteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, apperrors.NewStorageError("migrate", err)
	}
	return s, nil
}

func (s *sqliteStore) migrate() error {
	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return err
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !stderrors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func (s *sqliteStore) Providers() ProviderStore {
	return &sqliteProviders{db: s.db}
}

func (s *sqliteStore) Clients() ClientStore {
	return &sqliteClients{db: s.db}
}

func (s *sqliteStore) Credentials() CredentialStore {
	return &sqliteCredentials{db: s.db}
}

func (s *sqliteStore) Shifts() ShiftStore {
	return &sqliteShifts{db: s.db}
}

// storageErr wraps driver failures; sql.ErrNoRows maps to ErrNotFound.
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return apperrors.NewStorageError(op, err)
}
