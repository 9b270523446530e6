package service

import (
	"strings"

	"homescout/internal/model"
)

// NormalizedFilters holds predicate-ready filter values. Zero values mean the
// dimension is unconstrained.
type NormalizedFilters struct {
	// City is compared case-insensitively but exactly: city names form a
	// small closed vocabulary, unlike free-text fields below.
	City string
	// BHK entries are stripped of the "bhk" suffix and lowercased.
	BHK []string
	// MinBudget and MaxBudget are independent inclusive bounds on min_price.
	MinBudget *float64
	MaxBudget *float64
	// ProjectName and Locality are matched by case-insensitive substring:
	// users type partial names.
	ProjectName string
	Locality    string
	// Readiness keeps only the first whitespace token of the raw value
	// ("Ready to move" matches on "ready").
	Readiness string
}

// NormalizeFilters converts a raw, partially populated filter object into
// normalized predicate values. Absent or empty fields stay unconstrained.
func NormalizeFilters(f *model.Filters) *NormalizedFilters {
	nf := &NormalizedFilters{}
	if f == nil {
		return nf
	}

	nf.City = strings.ToLower(strings.TrimSpace(f.City))
	for _, raw := range f.BHK {
		if v := NormalizeBHK(raw); v != "" {
			nf.BHK = append(nf.BHK, v)
		}
	}
	nf.MinBudget = f.MinBudget
	nf.MaxBudget = f.MaxBudget
	nf.ProjectName = strings.ToLower(strings.TrimSpace(f.ProjectName))
	nf.Locality = strings.ToLower(strings.TrimSpace(f.Locality))

	if readiness := strings.Fields(f.Readiness); len(readiness) > 0 {
		nf.Readiness = strings.ToLower(readiness[0])
	}

	return nf
}

// NormalizeBHK reduces a BHK value to its matching key: "3 BHK", "3bhk" and
// "3" all yield "3".
func NormalizeBHK(v string) string {
	v = strings.ToLower(v)
	v = strings.ReplaceAll(v, "bhk", "")
	return strings.TrimSpace(v)
}

// HasPredicates reports whether any dimension carries a constraint.
func (nf *NormalizedFilters) HasPredicates() bool {
	return nf.City != "" ||
		len(nf.BHK) > 0 ||
		nf.MinBudget != nil ||
		nf.MaxBudget != nil ||
		nf.ProjectName != "" ||
		nf.Locality != "" ||
		nf.Readiness != ""
}
