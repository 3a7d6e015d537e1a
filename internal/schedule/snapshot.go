package schedule

import (
	"sort"
	"time"

	"github.com/rostrahealth/shiftbook/internal/model"
)

// SiteCoverage summarizes one client's shifts for a month.
type SiteCoverage struct {
	ClientID    string
	ClientName  string
	TotalShifts int
	Unfilled    int
}

// Snapshot is the dashboard view of one month: which shifts still need a
// provider, which providers have nothing scheduled, and per-site coverage.
type Snapshot struct {
	Year  int
	Month time.Month

	Unfilled           []*model.Shift
	AvailableProviders []*model.Provider
	Sites              []SiteCoverage
}

// Snapshot computes the dashboard aggregates for a month.
func (q *Query) Snapshot(year int, month time.Month) (*Snapshot, error) {
	view, err := q.VisibleShifts(year, month, "", "")
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{Year: year, Month: month}

	assigned := make(map[string]bool)
	perClient := make(map[string]*SiteCoverage)

	for _, s := range view.Shifts {
		if s.IsUnfilled() {
			snap.Unfilled = append(snap.Unfilled, s)
		} else {
			assigned[s.ProviderID] = true
		}

		cov, ok := perClient[s.ClientID]
		if !ok {
			cov = &SiteCoverage{ClientID: s.ClientID, ClientName: q.ClientDisplay(s.ClientID)}
			perClient[s.ClientID] = cov
		}
		cov.TotalShifts++
		if s.IsUnfilled() {
			cov.Unfilled++
		}
	}

	providers, err := q.store.Providers().List()
	if err != nil {
		return nil, err
	}
	for _, p := range providers {
		if !assigned[p.ID] {
			snap.AvailableProviders = append(snap.AvailableProviders, p)
		}
	}

	for _, cov := range perClient {
		snap.Sites = append(snap.Sites, *cov)
	}
	sort.Slice(snap.Sites, func(i, j int) bool {
		return snap.Sites[i].ClientName < snap.Sites[j].ClientName
	})

	return snap, nil
}
