package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rostrahealth/shiftbook/internal/errors"
	"github.com/rostrahealth/shiftbook/internal/model"
)

func dayShiftInput(start time.Time) ShiftInput {
	return ShiftInput{
		ProviderID: "P001",
		ClientID:   "C001",
		Start:      start,
		End:        start.Add(8 * time.Hour),
		Type:       "Day",
	}
}

func TestAddShift(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	svc := NewService(store)

	start := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)
	shift, err := svc.AddShift(dayShiftInput(start))
	require.NoError(t, err)
	assert.NotEmpty(t, shift.ID)
	assert.True(t, shift.End.After(shift.Start))

	got, err := svc.GetShift(shift.ID)
	require.NoError(t, err)
	assert.Equal(t, "C001", got.ClientID)
}

func TestAddShiftCallOverridesEnd(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	svc := NewService(store)

	start := time.Date(2025, 1, 10, 7, 0, 0, 0, time.Local)
	in := dayShiftInput(start)
	in.Type = "Call (24h)"
	in.Call = true
	// Explicit end is overridden by the call toggle
	in.End = start.Add(2 * time.Hour)

	shift, err := svc.AddShift(in)
	require.NoError(t, err)
	assert.Equal(t, start.Add(24*time.Hour), shift.End)
	assert.True(t, shift.IsCall())
}

func TestAddShiftRejectsEndBeforeStart(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	svc := NewService(store)

	start := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)
	in := dayShiftInput(start)
	in.End = start.Add(-time.Hour)

	_, err := svc.AddShift(in)
	assert.ErrorIs(t, err, errors.ErrEndBeforeStart)

	in.End = in.Start
	_, err = svc.AddShift(in)
	assert.ErrorIs(t, err, errors.ErrEndBeforeStart)
}

func TestAddShiftRejectsMissingClient(t *testing.T) {
	store := setupStore(t)
	svc := NewService(store)

	start := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)
	in := dayShiftInput(start)
	in.ClientID = ""

	_, err := svc.AddShift(in)
	assert.True(t, errors.IsValidationError(err))
}

func TestAddShiftUnfilled(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	svc := NewService(store)

	start := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)
	in := dayShiftInput(start)
	in.ProviderID = ""

	shift, err := svc.AddShift(in)
	require.NoError(t, err)
	assert.True(t, shift.IsUnfilled())
}

func TestEditShift(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	svc := NewService(store)

	start := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)
	shift, err := svc.AddShift(dayShiftInput(start))
	require.NoError(t, err)

	in := dayShiftInput(start)
	in.ProviderID = "P002"
	in.Notes = "coverage swap"
	edited, err := svc.EditShift(shift.ID, in)
	require.NoError(t, err)
	assert.Equal(t, shift.ID, edited.ID)
	assert.Equal(t, "P002", edited.ProviderID)

	// Full-row replace is visible on re-read
	got, err := svc.GetShift(shift.ID)
	require.NoError(t, err)
	assert.Equal(t, "P002", got.ProviderID)
	assert.Equal(t, "coverage swap", got.Notes)

	all, err := store.Shifts().List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEditShiftNotFound(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	svc := NewService(store)

	start := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)
	_, err := svc.EditShift("missing", dayShiftInput(start))
	assert.ErrorIs(t, err, errors.ErrShiftNotFound)
}

func TestDuplicateShift(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	svc := NewService(store)

	start := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)
	source, err := svc.AddShift(dayShiftInput(start))
	require.NoError(t, err)

	dup, err := svc.DuplicateShift(source.ID, dayShiftInput(start))
	require.NoError(t, err)
	assert.NotEqual(t, source.ID, dup.ID)

	// Source record unchanged
	got, err := svc.GetShift(source.ID)
	require.NoError(t, err)
	assert.True(t, got.Start.Equal(source.Start))

	all, err := store.Shifts().List()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDuplicateShiftMissingSource(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	svc := NewService(store)

	start := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)
	_, err := svc.DuplicateShift("missing", dayShiftInput(start))
	assert.ErrorIs(t, err, errors.ErrShiftNotFound)
}

func TestDeleteShift(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	svc := NewService(store)

	start := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)
	shift, err := svc.AddShift(dayShiftInput(start))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteShift(shift.ID))
	_, err = svc.GetShift(shift.ID)
	assert.ErrorIs(t, err, errors.ErrShiftNotFound)

	// Absent id is a no-op
	assert.NoError(t, svc.DeleteShift(shift.ID))
}

func TestAddProviderValidation(t *testing.T) {
	store := setupStore(t)
	svc := NewService(store)

	assert.NoError(t, svc.AddProvider(model.NewProvider("P001", "Dr. Alice Stone", "")))
	assert.True(t, errors.IsValidationError(svc.AddProvider(model.NewProvider("", "Dr. Alice Stone", ""))))
	assert.True(t, errors.IsValidationError(svc.AddProvider(model.NewProvider("P002", "", ""))))
}

func TestAddClientValidation(t *testing.T) {
	store := setupStore(t)
	svc := NewService(store)

	assert.NoError(t, svc.AddClient(model.NewClient("C001", "Riverside Hospital", "")))
	assert.True(t, errors.IsValidationError(svc.AddClient(model.NewClient("", "Riverside Hospital", ""))))
	assert.True(t, errors.IsValidationError(svc.AddClient(model.NewClient("C002", "", ""))))
}

func TestAddCredentialUniqueEdge(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	svc := NewService(store)

	cred, err := svc.AddCredential("P001", "C001")
	require.NoError(t, err)
	assert.NotZero(t, cred.ID)

	// Second edge for the same pair is rejected
	_, err = svc.AddCredential("P001", "C001")
	assert.ErrorIs(t, err, errors.ErrDuplicateCredential)

	// A different pair is fine
	_, err = svc.AddCredential("P001", "C002")
	assert.NoError(t, err)
}

func TestDeleteCredential(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	svc := NewService(store)

	cred, err := svc.AddCredential("P001", "C001")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteCredential(cred.ID))

	// The pair can be credentialed again once the edge is gone
	_, err = svc.AddCredential("P001", "C001")
	assert.NoError(t, err)
}
