package csvio

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/rostrahealth/shiftbook/internal/errors"
	"github.com/rostrahealth/shiftbook/internal/model"
	"github.com/rostrahealth/shiftbook/internal/parser"
	"github.com/rostrahealth/shiftbook/internal/storage"
	"github.com/rostrahealth/shiftbook/internal/validate"
)

// ImportStats summarizes an import run. Bad rows are skipped and reported
// in Errors; only header mismatches and storage failures abort the import.
type ImportStats struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// skip records a bad row and keeps going.
func (s *ImportStats) skip(rowIndex int, err error) {
	s.Skipped++
	s.Errors = append(s.Errors, apperrors.Wrapf(err, "row %d", rowIndex+2).Error())
}

// ImportProviders reads a provider roster CSV. Existing providers with the
// same id are replaced.
func ImportProviders(r io.Reader, store storage.Store) (*ImportStats, error) {
	records, err := readAll(r, ProviderHeader)
	if err != nil {
		return nil, err
	}

	stats := &ImportStats{}
	for i, row := range records {
		p := &model.Provider{
			ID:             strings.TrimSpace(row[0]),
			Name:           strings.TrimSpace(row[1]),
			Specialty:      strings.TrimSpace(row[2]),
			PreferredStart: strings.TrimSpace(row[3]),
			PreferredEnd:   strings.TrimSpace(row[4]),
			PreferredDays:  model.SplitDays(row[5]),
		}
		if err := validate.Provider(p); err != nil {
			stats.skip(i, err)
			continue
		}
		if err := store.Providers().Upsert(p); err != nil {
			return stats, rowError(i, err)
		}
		stats.Imported++
	}
	return stats, nil
}

// ImportClients reads a client roster CSV. Existing clients with the same
// id are replaced.
func ImportClients(r io.Reader, store storage.Store) (*ImportStats, error) {
	records, err := readAll(r, ClientHeader)
	if err != nil {
		return nil, err
	}

	stats := &ImportStats{}
	for i, row := range records {
		c := &model.Client{
			ID:       strings.TrimSpace(row[0]),
			Name:     strings.TrimSpace(row[1]),
			Location: strings.TrimSpace(row[2]),
		}
		if err := validate.Client(c); err != nil {
			stats.skip(i, err)
			continue
		}
		if err := store.Clients().Upsert(c); err != nil {
			return stats, rowError(i, err)
		}
		stats.Imported++
	}
	return stats, nil
}

// ImportCredentials reads credential pairs. Pairs already on file are
// counted as skipped rather than duplicated.
func ImportCredentials(r io.Reader, store storage.Store) (*ImportStats, error) {
	records, err := readAll(r, CredentialHeader)
	if err != nil {
		return nil, err
	}

	stats := &ImportStats{}
	for i, row := range records {
		providerID := strings.TrimSpace(row[0])
		clientID := strings.TrimSpace(row[1])
		if err := validate.EntityID("provider_id", providerID); err != nil {
			stats.skip(i, err)
			continue
		}
		if err := validate.EntityID("client_id", clientID); err != nil {
			stats.skip(i, err)
			continue
		}

		if _, err := store.Credentials().Find(providerID, clientID); err == nil {
			stats.Skipped++
			continue
		} else if !storage.IsNotFound(err) {
			return stats, rowError(i, err)
		}

		cred := &model.Credential{ProviderID: providerID, ClientID: clientID}
		if err := store.Credentials().Insert(cred); err != nil {
			return stats, rowError(i, err)
		}
		stats.Imported++
	}
	return stats, nil
}

// ImportShifts reads a shift CSV. Rows with a shift_id replace any shift
// on file with that id; rows without one get a fresh id. Timestamps may be
// RFC 3339 or any format ParseDateTime understands.
func ImportShifts(r io.Reader, store storage.Store) (*ImportStats, error) {
	records, err := readAll(r, ShiftHeader)
	if err != nil {
		return nil, err
	}

	stats := &ImportStats{}
	for i, row := range records {
		start, err := parser.ParseDateTime(row[3])
		if err != nil {
			stats.skip(i, apperrors.NewValidationErrorWithValue(
				"start_datetime", row[3], "unparseable timestamp",
				"Use RFC 3339, e.g. 2025-01-10T08:00:00"))
			continue
		}
		end, err := parser.ParseDateTime(row[4])
		if err != nil {
			stats.skip(i, apperrors.NewValidationErrorWithValue(
				"end_datetime", row[4], "unparseable timestamp",
				"Use RFC 3339, e.g. 2025-01-10T16:00:00"))
			continue
		}

		id := strings.TrimSpace(row[0])
		if id == "" {
			uid, err := uuid.NewV7()
			if err != nil {
				return stats, rowError(i, err)
			}
			id = uid.String()
		}

		s := &model.Shift{
			ID:         id,
			ProviderID: strings.TrimSpace(row[1]),
			ClientID:   strings.TrimSpace(row[2]),
			Start:      start,
			End:        end,
			Type:       strings.TrimSpace(row[5]),
			Notes:      row[6],
		}
		if err := validate.Shift(s); err != nil {
			stats.skip(i, err)
			continue
		}
		if err := store.Shifts().Upsert(s); err != nil {
			return stats, rowError(i, err)
		}
		stats.Imported++
	}
	return stats, nil
}

// readAll parses the CSV, enforces the expected header, and returns the
// data rows.
func readAll(r io.Reader, header []string) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(header)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewValidationError("csv", err.Error())
	}
	if len(records) == 0 {
		return nil, apperrors.NewValidationError("csv", "file is empty")
	}
	if !headerMatches(records[0], header) {
		return nil, apperrors.NewValidationErrorWithValue(
			"header", strings.Join(records[0], ","),
			"unexpected columns",
			"Expected: "+strings.Join(header, ","))
	}
	return records[1:], nil
}

func headerMatches(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if strings.TrimSpace(got[i]) != want[i] {
			return false
		}
	}
	return true
}

func rowError(index int, err error) error {
	return apperrors.Wrapf(err, "row %d", index+2)
}
