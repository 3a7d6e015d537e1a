package storage

import (
	"encoding/json"
	stderrors "errors"
	"os"

	badger "github.com/dgraph-io/badger/v4"

	apperrors "github.com/rostrahealth/shiftbook/internal/errors"
	"github.com/rostrahealth/shiftbook/internal/model"
)

// documentStore is the Badger-backed document backend.
type documentStore struct {
	db *badger.DB
}

func openDocument(opts Options) (*documentStore, error) {
	var badgerOpts badger.Options

	if opts.InMemory || opts.Path == "" {
		// In-memory mode for testing
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(opts.Path, 0755); err != nil {
			return nil, apperrors.NewStorageError("open", err)
		}
		badgerOpts = badger.DefaultOptions(opts.Path)
	}

	// Reduce logging noise
	badgerOpts = badgerOpts.WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, apperrors.NewStorageError("open", err)
	}

	return &documentStore{db: db}, nil
}

func (d *documentStore) Close() error {
	return d.db.Close()
}

func (d *documentStore) Providers() ProviderStore {
	return &documentProviders{d}
}

func (d *documentStore) Clients() ClientStore {
	return &documentClients{d}
}

func (d *documentStore) Credentials() CredentialStore {
	return &documentCredentials{d}
}

func (d *documentStore) Shifts() ShiftStore {
	return &documentShifts{d}
}

// get retrieves a value by key and unmarshals it into v.
func (d *documentStore) get(key string, v model.Model) error {
	return d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return apperrors.NewStorageError("get", err)
		}

		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, v); err != nil {
				return err
			}
			v.SetKey(key)
			return nil
		})
	})
}

// set stores a record in the database under its key.
func (d *documentStore) set(v model.Model) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	err = d.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(v.GetKey()), data)
	})
	if err != nil {
		return apperrors.NewStorageError("set", err)
	}
	return nil
}

// delete removes a key. Absent keys are a no-op.
func (d *documentStore) delete(key string) error {
	err := d.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return apperrors.NewStorageError("delete", err)
	}
	return nil
}

// getAllByPrefix retrieves all records with the given key prefix.
func getAllByPrefix[T model.Model](d *documentStore, prefix string, newFunc func() T) ([]T, error) {
	var results []T
	err := d.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchSize = 100
		it := txn.NewIterator(opts)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				v := newFunc()
				if err := json.Unmarshal(val, v); err != nil {
					return err
				}
				v.SetKey(string(item.Key()))
				results = append(results, v)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.NewStorageError("list", err)
	}
	return results, nil
}
