package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rostrahealth/shiftbook/internal/model"
	"github.com/rostrahealth/shiftbook/internal/storage"
)

func setupStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedRoster(t *testing.T, store storage.Store) {
	t.Helper()
	require.NoError(t, store.Providers().Upsert(model.NewProvider("P001", "Dr. Alice Stone", "Emergency Medicine")))
	require.NoError(t, store.Providers().Upsert(model.NewProvider("P002", "Dr. Ben Okafor", "Hospitalist")))
	require.NoError(t, store.Clients().Upsert(model.NewClient("C001", "Riverside Hospital", "Dayton, OH")))
	require.NoError(t, store.Clients().Upsert(model.NewClient("C002", "Lakeview Clinic", "")))
}

func putShift(t *testing.T, store storage.Store, id, providerID, clientID string, start time.Time, dur time.Duration) *model.Shift {
	t.Helper()
	s := model.NewShift(providerID, clientID, start, start.Add(dur), "Day", "")
	s.ID = id
	require.NoError(t, store.Shifts().Upsert(s))
	return s
}

func TestMonthWindow(t *testing.T) {
	start, end := MonthWindow(2025, time.January)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local), end)

	// December rolls into the next year
	start, end = MonthWindow(2025, time.December)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local), end)
}

func TestVisibleShiftsMonthScoping(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	q := NewQuery(store, PolicySafe)

	jan := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)
	feb := time.Date(2025, 2, 3, 8, 0, 0, 0, time.Local)
	putShift(t, store, "s-jan", "P001", "C001", jan, 8*time.Hour)
	putShift(t, store, "s-feb", "P001", "C001", feb, 8*time.Hour)

	view, err := q.VisibleShifts(2025, time.January, "", "")
	require.NoError(t, err)
	require.Len(t, view.Shifts, 1)
	assert.Equal(t, "s-jan", view.Shifts[0].ID)

	view, err = q.VisibleShifts(2025, time.February, "", "")
	require.NoError(t, err)
	require.Len(t, view.Shifts, 1)
	assert.Equal(t, "s-feb", view.Shifts[0].ID)
}

func TestVisibleShiftsMonthBoundary(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	q := NewQuery(store, PolicySafe)

	firstMoment := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	putShift(t, store, "s-first", "P001", "C001", firstMoment, 8*time.Hour)
	putShift(t, store, "s-before", "P001", "C001", firstMoment.Add(-time.Second), 8*time.Hour)

	view, err := q.VisibleShifts(2025, time.January, "", "")
	require.NoError(t, err)
	require.Len(t, view.Shifts, 1)
	assert.Equal(t, "s-first", view.Shifts[0].ID)
}

func TestVisibleShiftsCallOnLastDay(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	q := NewQuery(store, PolicySafe)

	// A 24h call starting on the last day of January runs into February but
	// belongs to January: visibility is by start timestamp.
	lastDay := time.Date(2025, 1, 31, 7, 0, 0, 0, time.Local)
	putShift(t, store, "s-call", "P001", "C001", lastDay, 24*time.Hour)

	view, err := q.VisibleShifts(2025, time.January, "", "")
	require.NoError(t, err)
	require.Len(t, view.Shifts, 1)
	assert.True(t, view.Shifts[0].IsCall())

	view, err = q.VisibleShifts(2025, time.February, "", "")
	require.NoError(t, err)
	assert.Empty(t, view.Shifts)
}

func TestVisibleShiftsProviderAndClientFilters(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	q := NewQuery(store, PolicySafe)

	jan := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)
	putShift(t, store, "s1", "P001", "C001", jan, 8*time.Hour)
	putShift(t, store, "s2", "P002", "C001", jan.Add(24*time.Hour), 8*time.Hour)
	putShift(t, store, "s3", "P001", "C002", jan.Add(48*time.Hour), 8*time.Hour)

	view, err := q.VisibleShifts(2025, time.January, "Dr. Alice Stone", "")
	require.NoError(t, err)
	require.Len(t, view.Shifts, 2)
	assert.Equal(t, "s1", view.Shifts[0].ID)
	assert.Equal(t, "s3", view.Shifts[1].ID)

	view, err = q.VisibleShifts(2025, time.January, "Dr. Alice Stone", "Riverside Hospital")
	require.NoError(t, err)
	require.Len(t, view.Shifts, 1)
	assert.Equal(t, "s1", view.Shifts[0].ID)
}

func TestUnmatchedFilterSafePolicy(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	q := NewQuery(store, PolicySafe)

	jan := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)
	putShift(t, store, "s1", "P001", "C001", jan, 8*time.Hour)

	// Safe mode: unmatched filter falls back to unfiltered and reports the reset.
	view, err := q.VisibleShifts(2025, time.January, "Dr. Nobody", "")
	require.NoError(t, err)
	assert.Len(t, view.Shifts, 1)
	assert.True(t, view.ProviderFilterReset)
	assert.Empty(t, view.ProviderFilter)
}

func TestUnmatchedFilterStrictPolicy(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	q := NewQuery(store, PolicyStrict)

	jan := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)
	putShift(t, store, "s1", "P001", "C001", jan, 8*time.Hour)

	view, err := q.VisibleShifts(2025, time.January, "Dr. Nobody", "")
	require.NoError(t, err)
	assert.Empty(t, view.Shifts)
	assert.False(t, view.ProviderFilterReset)
}

func TestFilteredShiftsAllTime(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	q := NewQuery(store, PolicySafe)

	jan := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)
	jun := time.Date(2025, 6, 10, 8, 0, 0, 0, time.Local)
	putShift(t, store, "s1", "P001", "C001", jan, 8*time.Hour)
	putShift(t, store, "s2", "P001", "C001", jun, 8*time.Hour)
	putShift(t, store, "s3", "P002", "C001", jun, 8*time.Hour)

	// The all-time view ignores the month window but applies filters.
	view, err := q.FilteredShifts("Dr. Alice Stone", "")
	require.NoError(t, err)
	require.Len(t, view.Shifts, 2)
	assert.Equal(t, "s1", view.Shifts[0].ID)
	assert.Equal(t, "s2", view.Shifts[1].ID)
}

func TestDisplayNameFallbacks(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	q := NewQuery(store, PolicySafe)

	assert.Equal(t, "Dr. Alice Stone", q.ProviderDisplay("P001"))
	assert.Equal(t, "Riverside Hospital", q.ClientDisplay("C001"))
	assert.Equal(t, Unassigned, q.ProviderDisplay(""))
	assert.Equal(t, UnknownProvider, q.ProviderDisplay("P999"))
	assert.Equal(t, UnknownClient, q.ClientDisplay("C999"))
}

func TestDanglingProviderReferenceTolerated(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	q := NewQuery(store, PolicySafe)
	svc := NewService(store)

	jan := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)
	putShift(t, store, "s1", "P001", "C001", jan, 8*time.Hour)

	require.NoError(t, svc.DeleteProvider("P001"))

	// The shift stays retrievable and renders with a placeholder name.
	view, err := q.VisibleShifts(2025, time.January, "", "")
	require.NoError(t, err)
	require.Len(t, view.Shifts, 1)
	assert.Equal(t, UnknownProvider, q.ProviderDisplay(view.Shifts[0].ProviderID))
}
