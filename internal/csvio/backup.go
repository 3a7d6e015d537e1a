package csvio

import (
	"encoding/json"
	"io"
	"time"

	apperrors "github.com/rostrahealth/shiftbook/internal/errors"
	"github.com/rostrahealth/shiftbook/internal/model"
	"github.com/rostrahealth/shiftbook/internal/storage"
)

// Backup is a full JSON snapshot of every collection.
type Backup struct {
	Version     string              `json:"version"`
	ExportedAt  string              `json:"exported_at"`
	Providers   []*model.Provider   `json:"providers"`
	Clients     []*model.Client     `json:"clients"`
	Credentials []*model.Credential `json:"credentials"`
	Shifts      []*model.Shift      `json:"shifts"`
}

const backupVersion = "1"

func errUnknownCollection(name string) error {
	return apperrors.NewValidationErrorWithValue(
		"collection", name, "unknown collection",
		"One of: providers, clients, credentials, shifts")
}

// WriteBackup serializes the whole store as indented JSON.
func WriteBackup(w io.Writer, store storage.Store) (*Backup, error) {
	providers, err := store.Providers().List()
	if err != nil {
		return nil, err
	}
	clients, err := store.Clients().List()
	if err != nil {
		return nil, err
	}
	credentials, err := store.Credentials().List()
	if err != nil {
		return nil, err
	}
	shifts, err := store.Shifts().List()
	if err != nil {
		return nil, err
	}

	backup := &Backup{
		Version:     backupVersion,
		ExportedAt:  time.Now().Format(time.RFC3339),
		Providers:   providers,
		Clients:     clients,
		Credentials: credentials,
		Shifts:      shifts,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return nil, err
	}
	return backup, nil
}

// RestoreBackup loads a backup into the store. Records are upserted
// collection by collection; credentials keep their original numeric ids
// only when the pair is not already on file.
func RestoreBackup(r io.Reader, store storage.Store) (*Backup, error) {
	var backup Backup
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return nil, apperrors.NewValidationError("backup", err.Error())
	}
	if backup.Version != backupVersion {
		return nil, apperrors.NewValidationErrorWithValue(
			"version", backup.Version, "unsupported backup version",
			"Only version "+backupVersion+" backups can be restored")
	}

	for _, p := range backup.Providers {
		p.SetKey(model.GenerateProviderKey(p.ID))
		if err := store.Providers().Upsert(p); err != nil {
			return nil, err
		}
	}
	for _, c := range backup.Clients {
		c.SetKey(model.GenerateClientKey(c.ID))
		if err := store.Clients().Upsert(c); err != nil {
			return nil, err
		}
	}
	for _, cred := range backup.Credentials {
		if _, err := store.Credentials().Find(cred.ProviderID, cred.ClientID); err == nil {
			continue
		} else if !storage.IsNotFound(err) {
			return nil, err
		}
		fresh := &model.Credential{ProviderID: cred.ProviderID, ClientID: cred.ClientID}
		if err := store.Credentials().Insert(fresh); err != nil {
			return nil, err
		}
	}
	for _, s := range backup.Shifts {
		s.SetKey(model.GenerateShiftKey(s.ID))
		if err := store.Shifts().Upsert(s); err != nil {
			return nil, err
		}
	}

	return &backup, nil
}
