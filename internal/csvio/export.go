// Package csvio reads and writes the CSV interchange formats: the QGenda
// schedule report, per-collection roster files, and full JSON backups.
package csvio

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/rostrahealth/shiftbook/internal/model"
	"github.com/rostrahealth/shiftbook/internal/schedule"
	"github.com/rostrahealth/shiftbook/internal/storage"
)

// QGendaTimeLayout is the timestamp format used by the schedule report.
const QGendaTimeLayout = "01/02/2006 15:04"

// QGendaHeader is the column set of the schedule report.
var QGendaHeader = []string{
	"ProviderID", "ProviderName", "ClientID", "ClientName", "Location",
	"StartDateTime", "EndDateTime", "ShiftType", "Notes",
}

// Collection headers. Import requires these exactly.
var (
	ProviderHeader = []string{
		"provider_id", "provider_name", "specialty",
		"preferred_shift_start", "preferred_shift_end", "preferred_days",
	}
	ClientHeader     = []string{"client_id", "client_name", "location"}
	CredentialHeader = []string{"provider_id", "client_id"}
	ShiftHeader      = []string{
		"shift_id", "provider_id", "client_id",
		"start_datetime", "end_datetime", "shift_type", "notes",
	}
)

// ExportSchedule writes the QGenda-style schedule report for all shifts
// that fall entirely inside [from, until]. A zero bound is open.
func ExportSchedule(w io.Writer, store storage.Store, from, until time.Time) (int, error) {
	shifts, err := store.Shifts().List()
	if err != nil {
		return 0, err
	}

	providers, err := providerNames(store)
	if err != nil {
		return 0, err
	}
	clients, err := clientIndex(store)
	if err != nil {
		return 0, err
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(QGendaHeader); err != nil {
		return 0, err
	}

	count := 0
	for _, s := range shifts {
		if !from.IsZero() && s.Start.Before(from) {
			continue
		}
		if !until.IsZero() && s.End.After(until) {
			continue
		}

		providerName := schedule.UnknownProvider
		if s.ProviderID == "" {
			providerName = schedule.Unassigned
		} else if name, ok := providers[s.ProviderID]; ok {
			providerName = name
		}

		clientName := schedule.UnknownClient
		location := ""
		if c, ok := clients[s.ClientID]; ok {
			clientName = c.Name
			location = c.Location
		}

		if err := writer.Write([]string{
			s.ProviderID,
			providerName,
			s.ClientID,
			clientName,
			location,
			s.Start.Format(QGendaTimeLayout),
			s.End.Format(QGendaTimeLayout),
			s.Type,
			s.Notes,
		}); err != nil {
			return count, err
		}
		count++
	}

	writer.Flush()
	return count, writer.Error()
}

// ExportProviders writes the provider roster in import-compatible form.
func ExportProviders(w io.Writer, store storage.Store) (int, error) {
	providers, err := store.Providers().List()
	if err != nil {
		return 0, err
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(ProviderHeader); err != nil {
		return 0, err
	}
	for _, p := range providers {
		if err := writer.Write([]string{
			p.ID, p.Name, p.Specialty,
			p.PreferredStart, p.PreferredEnd, model.JoinDays(p.PreferredDays),
		}); err != nil {
			return 0, err
		}
	}

	writer.Flush()
	return len(providers), writer.Error()
}

// ExportClients writes the client roster in import-compatible form.
func ExportClients(w io.Writer, store storage.Store) (int, error) {
	clients, err := store.Clients().List()
	if err != nil {
		return 0, err
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(ClientHeader); err != nil {
		return 0, err
	}
	for _, c := range clients {
		if err := writer.Write([]string{c.ID, c.Name, c.Location}); err != nil {
			return 0, err
		}
	}

	writer.Flush()
	return len(clients), writer.Error()
}

// ExportCredentials writes the credential pairs in import-compatible form.
func ExportCredentials(w io.Writer, store storage.Store) (int, error) {
	credentials, err := store.Credentials().List()
	if err != nil {
		return 0, err
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(CredentialHeader); err != nil {
		return 0, err
	}
	for _, c := range credentials {
		if err := writer.Write([]string{c.ProviderID, c.ClientID}); err != nil {
			return 0, err
		}
	}

	writer.Flush()
	return len(credentials), writer.Error()
}

// ExportShifts writes shifts in import-compatible form with RFC 3339
// timestamps.
func ExportShifts(w io.Writer, store storage.Store) (int, error) {
	shifts, err := store.Shifts().List()
	if err != nil {
		return 0, err
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(ShiftHeader); err != nil {
		return 0, err
	}
	for _, s := range shifts {
		if err := writer.Write([]string{
			s.ID, s.ProviderID, s.ClientID,
			s.Start.Format(time.RFC3339), s.End.Format(time.RFC3339),
			s.Type, s.Notes,
		}); err != nil {
			return 0, err
		}
	}

	writer.Flush()
	return len(shifts), writer.Error()
}

func providerNames(store storage.Store) (map[string]string, error) {
	providers, err := store.Providers().List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(providers))
	for _, p := range providers {
		names[p.ID] = p.Name
	}
	return names, nil
}

func clientIndex(store storage.Store) (map[string]*model.Client, error) {
	clients, err := store.Clients().List()
	if err != nil {
		return nil, err
	}
	index := make(map[string]*model.Client, len(clients))
	for _, c := range clients {
		index[c.ID] = c
	}
	return index, nil
}
