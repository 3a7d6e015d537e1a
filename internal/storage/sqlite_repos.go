package storage

import (
	"database/sql"

	"github.com/rostrahealth/shiftbook/internal/model"
)

// sqliteProviders implements ProviderStore on the relational backend.
type sqliteProviders struct {
	db *sql.DB
}

func (r *sqliteProviders) List() ([]*model.Provider, error) {
	rows, err := r.db.Query(`
		SELECT provider_id, provider_name, specialty,
		       preferred_shift_start, preferred_shift_end, preferred_days
		FROM providers
		ORDER BY provider_id
	`)
	if err != nil {
		return nil, storageErr("list", err)
	}
	defer rows.Close()

	var providers []*model.Provider
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, storageErr("list", err)
		}
		providers = append(providers, p)
	}
	return providers, storageErr("list", rows.Err())
}

func (r *sqliteProviders) Get(id string) (*model.Provider, error) {
	row := r.db.QueryRow(`
		SELECT provider_id, provider_name, specialty,
		       preferred_shift_start, preferred_shift_end, preferred_days
		FROM providers
		WHERE provider_id = ?
	`, id)

	p, err := scanProvider(row)
	if err != nil {
		return nil, storageErr("get", err)
	}
	return p, nil
}

func (r *sqliteProviders) Upsert(p *model.Provider) error {
	_, err := r.db.Exec(`
		INSERT INTO providers (provider_id, provider_name, specialty,
		                       preferred_shift_start, preferred_shift_end, preferred_days)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(provider_id) DO UPDATE SET
			provider_name = excluded.provider_name,
			specialty = excluded.specialty,
			preferred_shift_start = excluded.preferred_shift_start,
			preferred_shift_end = excluded.preferred_shift_end,
			preferred_days = excluded.preferred_days
	`, p.ID, p.Name, p.Specialty, p.PreferredStart, p.PreferredEnd, model.JoinDays(p.PreferredDays))
	if err == nil {
		p.SetKey(model.GenerateProviderKey(p.ID))
	}
	return storageErr("upsert", err)
}

func (r *sqliteProviders) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM providers WHERE provider_id = ?", id)
	return storageErr("delete", err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProvider(row rowScanner) (*model.Provider, error) {
	var p model.Provider
	var days string
	if err := row.Scan(&p.ID, &p.Name, &p.Specialty, &p.PreferredStart, &p.PreferredEnd, &days); err != nil {
		return nil, err
	}
	p.PreferredDays = model.SplitDays(days)
	p.SetKey(model.GenerateProviderKey(p.ID))
	return &p, nil
}

// sqliteClients implements ClientStore on the relational backend.
type sqliteClients struct {
	db *sql.DB
}

func (r *sqliteClients) List() ([]*model.Client, error) {
	rows, err := r.db.Query(`
		SELECT client_id, client_name, location
		FROM clients
		ORDER BY client_id
	`)
	if err != nil {
		return nil, storageErr("list", err)
	}
	defer rows.Close()

	var clients []*model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Location); err != nil {
			return nil, storageErr("list", err)
		}
		c.SetKey(model.GenerateClientKey(c.ID))
		clients = append(clients, &c)
	}
	return clients, storageErr("list", rows.Err())
}

func (r *sqliteClients) Get(id string) (*model.Client, error) {
	var c model.Client
	err := r.db.QueryRow(`
		SELECT client_id, client_name, location
		FROM clients
		WHERE client_id = ?
	`, id).Scan(&c.ID, &c.Name, &c.Location)
	if err != nil {
		return nil, storageErr("get", err)
	}
	c.SetKey(model.GenerateClientKey(c.ID))
	return &c, nil
}

func (r *sqliteClients) Upsert(c *model.Client) error {
	_, err := r.db.Exec(`
		INSERT INTO clients (client_id, client_name, location)
		VALUES (?, ?, ?)
		ON CONFLICT(client_id) DO UPDATE SET
			client_name = excluded.client_name,
			location = excluded.location
	`, c.ID, c.Name, c.Location)
	if err == nil {
		c.SetKey(model.GenerateClientKey(c.ID))
	}
	return storageErr("upsert", err)
}

func (r *sqliteClients) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM clients WHERE client_id = ?", id)
	return storageErr("delete", err)
}

// sqliteCredentials implements CredentialStore on the relational backend.
type sqliteCredentials struct {
	db *sql.DB
}

func (r *sqliteCredentials) List() ([]*model.Credential, error) {
	rows, err := r.db.Query(`
		SELECT id, provider_id, client_id
		FROM credentials
		ORDER BY id
	`)
	if err != nil {
		return nil, storageErr("list", err)
	}
	defer rows.Close()

	var creds []*model.Credential
	for rows.Next() {
		var c model.Credential
		if err := rows.Scan(&c.ID, &c.ProviderID, &c.ClientID); err != nil {
			return nil, storageErr("list", err)
		}
		c.SetKey(model.GenerateCredentialKey(c.ID))
		creds = append(creds, &c)
	}
	return creds, storageErr("list", rows.Err())
}

func (r *sqliteCredentials) Get(id int64) (*model.Credential, error) {
	var c model.Credential
	err := r.db.QueryRow(`
		SELECT id, provider_id, client_id
		FROM credentials
		WHERE id = ?
	`, id).Scan(&c.ID, &c.ProviderID, &c.ClientID)
	if err != nil {
		return nil, storageErr("get", err)
	}
	c.SetKey(model.GenerateCredentialKey(c.ID))
	return &c, nil
}

func (r *sqliteCredentials) Insert(c *model.Credential) error {
	result, err := r.db.Exec(
		"INSERT INTO credentials (provider_id, client_id) VALUES (?, ?)",
		c.ProviderID, c.ClientID,
	)
	if err != nil {
		return storageErr("insert", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storageErr("insert", err)
	}
	c.ID = id
	c.SetKey(model.GenerateCredentialKey(id))
	return nil
}

func (r *sqliteCredentials) Find(providerID, clientID string) (*model.Credential, error) {
	var c model.Credential
	err := r.db.QueryRow(`
		SELECT id, provider_id, client_id
		FROM credentials
		WHERE provider_id = ? AND client_id = ?
		ORDER BY id
		LIMIT 1
	`, providerID, clientID).Scan(&c.ID, &c.ProviderID, &c.ClientID)
	if err != nil {
		return nil, storageErr("find", err)
	}
	c.SetKey(model.GenerateCredentialKey(c.ID))
	return &c, nil
}

func (r *sqliteCredentials) Delete(id int64) error {
	_, err := r.db.Exec("DELETE FROM credentials WHERE id = ?", id)
	return storageErr("delete", err)
}

// sqliteShifts implements ShiftStore on the relational backend.
type sqliteShifts struct {
	db *sql.DB
}

func (r *sqliteShifts) List() ([]*model.Shift, error) {
	rows, err := r.db.Query(`
		SELECT shift_id, provider_id, client_id, start_datetime, end_datetime, shift_type, notes
		FROM shifts
		ORDER BY datetime(start_datetime)
	`)
	if err != nil {
		return nil, storageErr("list", err)
	}
	defer rows.Close()

	var shifts []*model.Shift
	for rows.Next() {
		var s model.Shift
		if err := rows.Scan(&s.ID, &s.ProviderID, &s.ClientID, &s.Start, &s.End, &s.Type, &s.Notes); err != nil {
			return nil, storageErr("list", err)
		}
		s.SetKey(model.GenerateShiftKey(s.ID))
		shifts = append(shifts, &s)
	}
	return shifts, storageErr("list", rows.Err())
}

func (r *sqliteShifts) Get(id string) (*model.Shift, error) {
	var s model.Shift
	err := r.db.QueryRow(`
		SELECT shift_id, provider_id, client_id, start_datetime, end_datetime, shift_type, notes
		FROM shifts
		WHERE shift_id = ?
	`, id).Scan(&s.ID, &s.ProviderID, &s.ClientID, &s.Start, &s.End, &s.Type, &s.Notes)
	if err != nil {
		return nil, storageErr("get", err)
	}
	s.SetKey(model.GenerateShiftKey(s.ID))
	return &s, nil
}

func (r *sqliteShifts) Upsert(s *model.Shift) error {
	_, err := r.db.Exec(`
		INSERT INTO shifts (shift_id, provider_id, client_id, start_datetime, end_datetime, shift_type, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(shift_id) DO UPDATE SET
			provider_id = excluded.provider_id,
			client_id = excluded.client_id,
			start_datetime = excluded.start_datetime,
			end_datetime = excluded.end_datetime,
			shift_type = excluded.shift_type,
			notes = excluded.notes
	`, s.ID, s.ProviderID, s.ClientID, s.Start, s.End, s.Type, s.Notes)
	if err == nil {
		s.SetKey(model.GenerateShiftKey(s.ID))
	}
	return storageErr("upsert", err)
}

func (r *sqliteShifts) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM shifts WHERE shift_id = ?", id)
	return storageErr("delete", err)
}
