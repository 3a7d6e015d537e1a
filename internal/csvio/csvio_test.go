package csvio

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/rostrahealth/shiftbook/internal/errors"
	"github.com/rostrahealth/shiftbook/internal/model"
	"github.com/rostrahealth/shiftbook/internal/storage"
)

func setupStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := storage.Open(storage.Options{
		Backend:  storage.BackendDocument,
		InMemory: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedRoster(t *testing.T, store storage.Store) {
	t.Helper()

	p := model.NewProvider("P001", "Dr. Alice Stone", "Emergency Medicine")
	p.PreferredStart = "08:00"
	p.PreferredEnd = "16:00"
	p.PreferredDays = []string{"Mon", "Tue"}
	p.SetKey(model.GenerateProviderKey(p.ID))
	require.NoError(t, store.Providers().Upsert(p))

	c := model.NewClient("C001", "Riverside Hospital", "Portland, OR")
	c.SetKey(model.GenerateClientKey(c.ID))
	require.NoError(t, store.Clients().Upsert(c))
}

func putShift(t *testing.T, store storage.Store, id, providerID, clientID string, start time.Time, dur time.Duration) *model.Shift {
	t.Helper()
	s := &model.Shift{
		ID:         id,
		ProviderID: providerID,
		ClientID:   clientID,
		Start:      start,
		End:        start.Add(dur),
		Type:       "Day",
	}
	s.SetKey(model.GenerateShiftKey(id))
	require.NoError(t, store.Shifts().Upsert(s))
	return s
}

func parseCSV(t *testing.T, data string) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return records
}

// ============================================================================
// Schedule export
// ============================================================================

func TestExportScheduleRow(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	putShift(t, store, "s1", "P001", "C001",
		time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local), 8*time.Hour)

	var buf bytes.Buffer
	count, err := ExportSchedule(&buf, store, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	records := parseCSV(t, buf.String())
	require.Len(t, records, 2)
	assert.Equal(t, QGendaHeader, records[0])
	assert.Equal(t, []string{
		"P001", "Dr. Alice Stone", "C001", "Riverside Hospital", "Portland, OR",
		"01/10/2025 08:00", "01/10/2025 16:00", "Day", "",
	}, records[1])
}

func TestExportScheduleRangeFiltering(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	putShift(t, store, "jan", "P001", "C001",
		time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local), 8*time.Hour)
	putShift(t, store, "feb", "P001", "C001",
		time.Date(2025, 2, 10, 8, 0, 0, 0, time.Local), 8*time.Hour)
	// Straddles the range end, so it is excluded.
	putShift(t, store, "straddle", "P001", "C001",
		time.Date(2025, 1, 31, 20, 0, 0, 0, time.Local), 8*time.Hour)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	until := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)

	var buf bytes.Buffer
	count, err := ExportSchedule(&buf, store, from, until)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	records := parseCSV(t, buf.String())
	require.Len(t, records, 2)
	assert.Equal(t, "01/10/2025 08:00", records[1][5])
}

func TestExportScheduleFallbackNames(t *testing.T) {
	store := setupStore(t)
	// No roster at all: unfilled shift at an unknown site.
	putShift(t, store, "s1", "", "C999",
		time.Date(2025, 3, 1, 8, 0, 0, 0, time.Local), 8*time.Hour)

	var buf bytes.Buffer
	_, err := ExportSchedule(&buf, store, time.Time{}, time.Time{})
	require.NoError(t, err)

	records := parseCSV(t, buf.String())
	require.Len(t, records, 2)
	assert.Equal(t, "Unassigned", records[1][1])
	assert.Equal(t, "Unknown Site", records[1][3])
}

// ============================================================================
// Collection round trips
// ============================================================================

func TestProviderRoundTrip(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)

	var buf bytes.Buffer
	count, err := ExportProviders(&buf, store)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	fresh := setupStore(t)
	stats, err := ImportProviders(&buf, fresh)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Imported)

	p, err := fresh.Providers().Get("P001")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Alice Stone", p.Name)
	assert.Equal(t, []string{"Mon", "Tue"}, p.PreferredDays)
}

func TestClientRoundTrip(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)

	var buf bytes.Buffer
	_, err := ExportClients(&buf, store)
	require.NoError(t, err)

	fresh := setupStore(t)
	stats, err := ImportClients(&buf, fresh)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Imported)

	c, err := fresh.Clients().Get("C001")
	require.NoError(t, err)
	assert.Equal(t, "Riverside Hospital", c.Name)
	assert.Equal(t, "Portland, OR", c.Location)
}

func TestShiftRoundTrip(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	want := putShift(t, store, "s1", "P001", "C001",
		time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local), 8*time.Hour)

	var buf bytes.Buffer
	_, err := ExportShifts(&buf, store)
	require.NoError(t, err)

	fresh := setupStore(t)
	stats, err := ImportShifts(&buf, fresh)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Imported)

	got, err := fresh.Shifts().Get("s1")
	require.NoError(t, err)
	assert.True(t, want.Start.Equal(got.Start))
	assert.True(t, want.End.Equal(got.End))
	assert.Equal(t, "P001", got.ProviderID)
}

func TestCredentialImportSkipsDuplicates(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)

	data := "provider_id,client_id\nP001,C001\nP001,C001\n"
	stats, err := ImportCredentials(strings.NewReader(data), store)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Imported)
	assert.Equal(t, 1, stats.Skipped)

	creds, err := store.Credentials().List()
	require.NoError(t, err)
	assert.Len(t, creds, 1)
}

// ============================================================================
// Import validation
// ============================================================================

func TestImportRejectsWrongHeader(t *testing.T) {
	store := setupStore(t)
	data := "id,name\nP001,Dr. Stone\n"
	_, err := ImportProviders(strings.NewReader(data), store)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestImportRejectsEmptyFile(t *testing.T) {
	store := setupStore(t)
	_, err := ImportClients(strings.NewReader(""), store)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestImportShiftGeneratesMissingID(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)

	data := "shift_id,provider_id,client_id,start_datetime,end_datetime,shift_type,notes\n" +
		",P001,C001,2025-01-10T08:00:00,2025-01-10T16:00:00,Day,\n"
	stats, err := ImportShifts(strings.NewReader(data), store)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Imported)

	shifts, err := store.Shifts().List()
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.NotEmpty(t, shifts[0].ID)
}

func TestImportShiftBadTimestampSkipsRow(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)

	data := "shift_id,provider_id,client_id,start_datetime,end_datetime,shift_type,notes\n" +
		"bad,P001,C001,garbage-xyzzy,2025-01-10T16:00:00,Day,\n" +
		"good,P001,C001,2025-01-11T08:00:00,2025-01-11T16:00:00,Day,\n"
	stats, err := ImportShifts(strings.NewReader(data), store)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Imported)
	assert.Equal(t, 1, stats.Skipped)
	require.Len(t, stats.Errors, 1)
	assert.Contains(t, stats.Errors[0], "row 2")

	_, err = store.Shifts().Get("good")
	assert.NoError(t, err)
	_, err = store.Shifts().Get("bad")
	assert.Error(t, err)
}

func TestImportShiftEndBeforeStartSkipsRow(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)

	data := "shift_id,provider_id,client_id,start_datetime,end_datetime,shift_type,notes\n" +
		"s1,P001,C001,2025-01-10T16:00:00,2025-01-10T08:00:00,Day,\n"
	stats, err := ImportShifts(strings.NewReader(data), store)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Imported)
	assert.Equal(t, 1, stats.Skipped)
}

// ============================================================================
// Templates
// ============================================================================

func TestWriteTemplate(t *testing.T) {
	for _, collection := range Collections() {
		var buf bytes.Buffer
		require.NoError(t, WriteTemplate(&buf, collection), collection)
		records := parseCSV(t, buf.String())
		assert.Len(t, records, 2, collection)
	}
}

func TestWriteTemplateUnknownCollection(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTemplate(&buf, "widgets")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestTemplateImportsCleanly(t *testing.T) {
	store := setupStore(t)

	var buf bytes.Buffer
	require.NoError(t, WriteTemplate(&buf, "providers"))
	stats, err := ImportProviders(&buf, store)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Imported)
}

// ============================================================================
// Backup
// ============================================================================

func TestBackupRoundTrip(t *testing.T) {
	store := setupStore(t)
	seedRoster(t, store)
	putShift(t, store, "s1", "P001", "C001",
		time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local), 8*time.Hour)
	require.NoError(t, store.Credentials().Insert(&model.Credential{ProviderID: "P001", ClientID: "C001"}))

	var buf bytes.Buffer
	backup, err := WriteBackup(&buf, store)
	require.NoError(t, err)
	assert.Len(t, backup.Providers, 1)
	assert.Len(t, backup.Shifts, 1)

	fresh := setupStore(t)
	restored, err := RestoreBackup(&buf, fresh)
	require.NoError(t, err)
	assert.Len(t, restored.Clients, 1)

	shifts, err := fresh.Shifts().List()
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, "s1", shifts[0].ID)

	creds, err := fresh.Credentials().List()
	require.NoError(t, err)
	assert.Len(t, creds, 1)
}

func TestRestoreRejectsUnknownVersion(t *testing.T) {
	store := setupStore(t)
	_, err := RestoreBackup(strings.NewReader(`{"version":"99"}`), store)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
