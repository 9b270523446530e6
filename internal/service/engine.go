package service

import (
	"strings"

	"homescout/internal/dataset"
	"homescout/internal/model"
)

// QueryEngine applies normalized filter predicates over a listing snapshot.
type QueryEngine struct {
	emptyFilterLimit int
}

// NewQueryEngine creates a query engine. emptyFilterLimit bounds the default
// result prefix returned for a fully empty filter object.
func NewQueryEngine(emptyFilterLimit int) *QueryEngine {
	return &QueryEngine{emptyFilterLimit: emptyFilterLimit}
}

// Query returns the listings matching the conjunction of all active
// predicates, in original table order. With zero active predicates it returns
// a bounded prefix of the table instead of everything; with active predicates
// and no matches it returns an empty slice.
func (e *QueryEngine) Query(snap *dataset.Snapshot, nf *NormalizedFilters) []model.Listing {
	listings := snap.Listings()

	if !nf.HasPredicates() {
		if len(listings) > e.emptyFilterLimit {
			listings = listings[:e.emptyFilterLimit]
		}
		return listings
	}

	matched := make([]model.Listing, 0)
	for _, l := range listings {
		if nf.matches(&l) {
			matched = append(matched, l)
		}
	}
	return matched
}

func (nf *NormalizedFilters) matches(l *model.Listing) bool {
	if nf.City != "" && strings.ToLower(l.City) != nf.City {
		return false
	}
	if len(nf.BHK) > 0 && !containsBHK(nf.BHK, l.BHKType) {
		return false
	}
	if nf.MinBudget != nil && l.MinPrice < *nf.MinBudget {
		return false
	}
	if nf.MaxBudget != nil && l.MinPrice > *nf.MaxBudget {
		return false
	}
	if nf.ProjectName != "" && !strings.Contains(strings.ToLower(l.ProjectName), nf.ProjectName) {
		return false
	}
	if nf.Locality != "" && !strings.Contains(strings.ToLower(l.Locality), nf.Locality) {
		return false
	}
	if nf.Readiness != "" && !matchesReadiness(l, nf.Readiness) {
		return false
	}
	return true
}

func containsBHK(wanted []string, bhkType string) bool {
	key := NormalizeBHK(bhkType)
	for _, w := range wanted {
		if w == key {
			return true
		}
	}
	return false
}

// matchesReadiness tests the readiness token against the listing status,
// falling back to the possession date when no status is recorded.
func matchesReadiness(l *model.Listing, token string) bool {
	candidate := l.Status
	if candidate == "" {
		candidate = l.PossessionDate
	}
	return strings.Contains(strings.ToLower(candidate), token)
}
