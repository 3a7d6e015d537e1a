package storage

import (
	"sort"

	"github.com/rostrahealth/shiftbook/internal/model"
)

// documentProviders implements ProviderStore on the document backend.
// Badger iterates keys lexicographically, so List is ordered by id.
type documentProviders struct {
	store *documentStore
}

func (r *documentProviders) List() ([]*model.Provider, error) {
	return getAllByPrefix(r.store, model.PrefixProvider+":", func() *model.Provider {
		return &model.Provider{}
	})
}

func (r *documentProviders) Get(id string) (*model.Provider, error) {
	p := &model.Provider{}
	if err := r.store.get(model.GenerateProviderKey(id), p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *documentProviders) Upsert(p *model.Provider) error {
	p.SetKey(model.GenerateProviderKey(p.ID))
	return r.store.set(p)
}

func (r *documentProviders) Delete(id string) error {
	return r.store.delete(model.GenerateProviderKey(id))
}

// documentClients implements ClientStore on the document backend.
type documentClients struct {
	store *documentStore
}

func (r *documentClients) List() ([]*model.Client, error) {
	return getAllByPrefix(r.store, model.PrefixClient+":", func() *model.Client {
		return &model.Client{}
	})
}

func (r *documentClients) Get(id string) (*model.Client, error) {
	c := &model.Client{}
	if err := r.store.get(model.GenerateClientKey(id), c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *documentClients) Upsert(c *model.Client) error {
	c.SetKey(model.GenerateClientKey(c.ID))
	return r.store.set(c)
}

func (r *documentClients) Delete(id string) error {
	return r.store.delete(model.GenerateClientKey(id))
}

// documentCredentials implements CredentialStore on the document backend.
type documentCredentials struct {
	store *documentStore
}

func (r *documentCredentials) List() ([]*model.Credential, error) {
	return getAllByPrefix(r.store, model.PrefixCredential+":", func() *model.Credential {
		return &model.Credential{}
	})
}

func (r *documentCredentials) Get(id int64) (*model.Credential, error) {
	c := &model.Credential{}
	if err := r.store.get(model.GenerateCredentialKey(id), c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *documentCredentials) Insert(c *model.Credential) error {
	existing, err := r.List()
	if err != nil {
		return err
	}
	// Ids are assigned max+1, matching single-user input rates.
	var maxID int64
	for _, e := range existing {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	c.ID = maxID + 1
	c.SetKey(model.GenerateCredentialKey(c.ID))
	return r.store.set(c)
}

func (r *documentCredentials) Find(providerID, clientID string) (*model.Credential, error) {
	all, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, c := range all {
		if c.ProviderID == providerID && c.ClientID == clientID {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *documentCredentials) Delete(id int64) error {
	return r.store.delete(model.GenerateCredentialKey(id))
}

// documentShifts implements ShiftStore on the document backend.
type documentShifts struct {
	store *documentStore
}

func (r *documentShifts) List() ([]*model.Shift, error) {
	shifts, err := getAllByPrefix(r.store, model.PrefixShift+":", func() *model.Shift {
		return &model.Shift{}
	})
	if err != nil {
		return nil, err
	}
	// Badger orders by key, not by start timestamp.
	sort.Slice(shifts, func(i, j int) bool {
		return shifts[i].Start.Before(shifts[j].Start)
	})
	return shifts, nil
}

func (r *documentShifts) Get(id string) (*model.Shift, error) {
	s := &model.Shift{}
	if err := r.store.get(model.GenerateShiftKey(id), s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *documentShifts) Upsert(s *model.Shift) error {
	s.SetKey(model.GenerateShiftKey(s.ID))
	return r.store.set(s)
}

func (r *documentShifts) Delete(id string) error {
	return r.store.delete(model.GenerateShiftKey(id))
}
