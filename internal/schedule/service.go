package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/rostrahealth/shiftbook/internal/errors"
	"github.com/rostrahealth/shiftbook/internal/logging"
	"github.com/rostrahealth/shiftbook/internal/model"
	"github.com/rostrahealth/shiftbook/internal/storage"
	"github.com/rostrahealth/shiftbook/internal/validate"
)

// Service performs the validated mutations against the record store.
type Service struct {
	store storage.Store
}

// NewService creates a mutation service over the given store.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// ShiftInput carries the user-entered fields for add/edit/duplicate.
type ShiftInput struct {
	ProviderID string
	ClientID   string
	Start      time.Time
	End        time.Time
	Type       string
	Notes      string
	// Call forces end = start + 24h, overriding any explicit end time.
	Call bool
}

func (in ShiftInput) resolveEnd() time.Time {
	if in.Call {
		return in.Start.Add(model.CallShiftDuration)
	}
	return in.End
}

// AddShift creates a new shift with a generated id and stores it.
func (s *Service) AddShift(in ShiftInput) (*model.Shift, error) {
	shift := model.NewShift(in.ProviderID, in.ClientID, in.Start, in.resolveEnd(), in.Type, in.Notes)

	// UUID v7 for time-sortable ids
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	shift.ID = id.String()

	if err := validate.Shift(shift); err != nil {
		return nil, err
	}
	if err := s.store.Shifts().Upsert(shift); err != nil {
		return nil, err
	}

	logging.LogOperation("add_shift", logging.KeyShiftID, shift.ID)
	return shift, nil
}

// EditShift replaces the full row under the same id. The computation of the
// end time is identical to AddShift.
func (s *Service) EditShift(id string, in ShiftInput) (*model.Shift, error) {
	if _, err := s.store.Shifts().Get(id); err != nil {
		if storage.IsNotFound(err) {
			return nil, errors.ErrShiftNotFound
		}
		return nil, err
	}

	shift := model.NewShift(in.ProviderID, in.ClientID, in.Start, in.resolveEnd(), in.Type, in.Notes)
	shift.ID = id

	if err := validate.Shift(shift); err != nil {
		return nil, err
	}
	if err := s.store.Shifts().Upsert(shift); err != nil {
		return nil, err
	}

	logging.LogOperation("edit_shift", logging.KeyShiftID, id)
	return shift, nil
}

// DuplicateShift behaves like EditShift but always mints a fresh id,
// leaving the source record untouched.
func (s *Service) DuplicateShift(id string, in ShiftInput) (*model.Shift, error) {
	if _, err := s.store.Shifts().Get(id); err != nil {
		if storage.IsNotFound(err) {
			return nil, errors.ErrShiftNotFound
		}
		return nil, err
	}
	return s.AddShift(in)
}

// DeleteShift removes the shift; absent ids are a no-op.
func (s *Service) DeleteShift(id string) error {
	if err := s.store.Shifts().Delete(id); err != nil {
		return err
	}
	logging.LogOperation("delete_shift", logging.KeyShiftID, id)
	return nil
}

// GetShift retrieves a shift by id.
func (s *Service) GetShift(id string) (*model.Shift, error) {
	shift, err := s.store.Shifts().Get(id)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, errors.ErrShiftNotFound
		}
		return nil, err
	}
	return shift, nil
}

// AddProvider validates and upserts a provider record.
func (s *Service) AddProvider(p *model.Provider) error {
	if err := validate.Provider(p); err != nil {
		return err
	}
	if err := s.store.Providers().Upsert(p); err != nil {
		return err
	}
	logging.LogOperation("upsert_provider", logging.KeyProvider, p.ID)
	return nil
}

// DeleteProvider removes a provider. Shifts referencing it are left in
// place and render as "Unknown Provider".
func (s *Service) DeleteProvider(id string) error {
	return s.store.Providers().Delete(id)
}

// AddClient validates and upserts a client record.
func (s *Service) AddClient(c *model.Client) error {
	if err := validate.Client(c); err != nil {
		return err
	}
	if err := s.store.Clients().Upsert(c); err != nil {
		return err
	}
	logging.LogOperation("upsert_client", logging.KeyClient, c.ID)
	return nil
}

// DeleteClient removes a client; dangling shift references are tolerated.
func (s *Service) DeleteClient(id string) error {
	return s.store.Clients().Delete(id)
}

// AddCredential inserts an eligibility edge, enforcing at most one edge
// per (provider, client) pair.
func (s *Service) AddCredential(providerID, clientID string) (*model.Credential, error) {
	cred := model.NewCredential(providerID, clientID)
	if err := validate.Credential(cred); err != nil {
		return nil, err
	}

	if _, err := s.store.Credentials().Find(providerID, clientID); err == nil {
		return nil, errors.ErrDuplicateCredential
	} else if !storage.IsNotFound(err) {
		return nil, err
	}

	if err := s.store.Credentials().Insert(cred); err != nil {
		return nil, err
	}
	logging.LogOperation("add_credential",
		logging.KeyProvider, providerID, logging.KeyClient, clientID)
	return cred, nil
}

// DeleteCredential removes an edge by numeric id; absent ids are a no-op.
func (s *Service) DeleteCredential(id int64) error {
	return s.store.Credentials().Delete(id)
}
