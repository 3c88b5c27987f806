package domain

import "slices"

// FilterCriteria is an optional conjunction of predicates over the
// dataset. Zero values mean "no constraint"; the criteria are assumed to
// be validated against the dataset's known value sets before use.
type FilterCriteria struct {
	UF             string
	Date           string
	MinPrecip      *float64
	MaxPrecip      *float64
	Municipalities []string
}

// Matches reports whether a record satisfies every active criterion.
// Region and date are exact matches, bounds are inclusive, municipality
// membership is exact and case-sensitive.
func (fc *FilterCriteria) Matches(r *Record) bool {
	if fc.UF != "" && r.UF != fc.UF {
		return false
	}
	if fc.Date != "" && r.Date != fc.Date {
		return false
	}
	if fc.MinPrecip != nil && r.Precipitation < *fc.MinPrecip {
		return false
	}
	if fc.MaxPrecip != nil && r.Precipitation > *fc.MaxPrecip {
		return false
	}
	if len(fc.Municipalities) > 0 && !slices.Contains(fc.Municipalities, r.Municipality) {
		return false
	}
	return true
}

// Apply returns the records satisfying the criteria, preserving the
// dataset order. The result is a fresh slice; the dataset is never
// mutated.
func (fc *FilterCriteria) Apply(records []Record) []Record {
	view := make([]Record, 0, len(records))
	for i := range records {
		if fc.Matches(&records[i]) {
			view = append(view, records[i])
		}
	}
	return view
}
