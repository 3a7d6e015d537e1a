// Package schedule implements the scheduling views and mutations over the
// record store: month-scoped filtered shift views, entity upserts, and the
// dashboard aggregates.
package schedule

import (
	"sort"
	"time"

	"github.com/rostrahealth/shiftbook/internal/logging"
	"github.com/rostrahealth/shiftbook/internal/model"
	"github.com/rostrahealth/shiftbook/internal/storage"
)

// FilterPolicy controls how an unmatched provider/client name filter is
// handled.
type FilterPolicy string

const (
	// PolicySafe falls back to the unfiltered set and reports the reset.
	PolicySafe FilterPolicy = "safe"
	// PolicyStrict yields an empty result set for an unmatched filter.
	PolicyStrict FilterPolicy = "strict"
)

// Fallback display names for dangling references.
const (
	UnknownProvider = "Unknown Provider"
	UnknownClient   = "Unknown Site"
	Unassigned      = "Unassigned"
)

// Query computes shift views. It is a pure function of the store contents
// and the passed-in month/filter arguments; no view state lives here.
type Query struct {
	store  storage.Store
	policy FilterPolicy
}

// NewQuery creates a query layer with the given filter policy.
func NewQuery(store storage.Store, policy FilterPolicy) *Query {
	if policy == "" {
		policy = PolicySafe
	}
	return &Query{store: store, policy: policy}
}

// Policy returns the active filter policy.
func (q *Query) Policy() FilterPolicy {
	return q.policy
}

// MonthWindow computes the inclusive month window
// [first_day 00:00, first_day_of_next_month 00:00).
func MonthWindow(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0)
}

// ShiftView is a filtered shift listing with filter bookkeeping.
type ShiftView struct {
	Shifts []*model.Shift

	ProviderFilter string
	ClientFilter   string
	// Reset flags are set when safe mode dropped an unmatched filter.
	ProviderFilterReset bool
	ClientFilterReset   bool
}

// MonthView is a ShiftView scoped to a calendar month.
type MonthView struct {
	ShiftView
	Year  int
	Month time.Month
}

// VisibleShifts returns the shifts visible in the given month, optionally
// narrowed by provider and/or client display name, ordered by start
// ascending. A shift belongs to the month its start timestamp falls in.
func (q *Query) VisibleShifts(year int, month time.Month, providerName, clientName string) (*MonthView, error) {
	view, err := q.FilteredShifts(providerName, clientName)
	if err != nil {
		return nil, err
	}

	windowStart, windowEnd := MonthWindow(year, month)

	monthly := make([]*model.Shift, 0, len(view.Shifts))
	for _, s := range view.Shifts {
		if !s.Start.Before(windowStart) && s.Start.Before(windowEnd) {
			monthly = append(monthly, s)
		}
	}
	view.Shifts = monthly

	return &MonthView{ShiftView: *view, Year: year, Month: month}, nil
}

// FilteredShifts returns the all-time filtered view: provider/client filters
// applied, no month window, ordered by start ascending.
func (q *Query) FilteredShifts(providerName, clientName string) (*ShiftView, error) {
	shifts, err := q.store.Shifts().List()
	if err != nil {
		return nil, err
	}

	view := &ShiftView{
		ProviderFilter: providerName,
		ClientFilter:   clientName,
	}

	if providerName != "" {
		id, ok, err := q.resolveProviderName(providerName)
		if err != nil {
			return nil, err
		}
		switch {
		case ok:
			shifts = filterShifts(shifts, func(s *model.Shift) bool { return s.ProviderID == id })
		case q.policy == PolicyStrict:
			shifts = nil
		default:
			logging.Warn("provider filter did not match, showing all",
				logging.KeyProvider, providerName)
			view.ProviderFilter = ""
			view.ProviderFilterReset = true
		}
	}

	if clientName != "" {
		id, ok, err := q.resolveClientName(clientName)
		if err != nil {
			return nil, err
		}
		switch {
		case ok:
			shifts = filterShifts(shifts, func(s *model.Shift) bool { return s.ClientID == id })
		case q.policy == PolicyStrict:
			shifts = nil
		default:
			logging.Warn("client filter did not match, showing all",
				logging.KeyClient, clientName)
			view.ClientFilter = ""
			view.ClientFilterReset = true
		}
	}

	// The store contract orders by start; keep the guarantee after filtering.
	sort.SliceStable(shifts, func(i, j int) bool {
		return shifts[i].Start.Before(shifts[j].Start)
	})

	view.Shifts = shifts
	return view, nil
}

// ProviderDisplay resolves a provider id to its display name, tolerating
// dangling references.
func (q *Query) ProviderDisplay(id string) string {
	if id == "" {
		return Unassigned
	}
	p, err := q.store.Providers().Get(id)
	if err != nil {
		return UnknownProvider
	}
	return p.Name
}

// ClientDisplay resolves a client id to its display name, tolerating
// dangling references.
func (q *Query) ClientDisplay(id string) string {
	c, err := q.store.Clients().Get(id)
	if err != nil {
		return UnknownClient
	}
	return c.Name
}

func (q *Query) resolveProviderName(name string) (string, bool, error) {
	providers, err := q.store.Providers().List()
	if err != nil {
		return "", false, err
	}
	for _, p := range providers {
		if p.Name == name {
			return p.ID, true, nil
		}
	}
	return "", false, nil
}

func (q *Query) resolveClientName(name string) (string, bool, error) {
	clients, err := q.store.Clients().List()
	if err != nil {
		return "", false, err
	}
	for _, c := range clients {
		if c.Name == name {
			return c.ID, true, nil
		}
	}
	return "", false, nil
}

func filterShifts(shifts []*model.Shift, keep func(*model.Shift) bool) []*model.Shift {
	out := shifts[:0:0]
	for _, s := range shifts {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
