package dto

// FilterQuery carries the raw filter parameters shared by the data,
// stats, download and heatmap endpoints. Numeric bounds stay strings
// here; they are parsed and validated together with the region and date
// membership checks so the caller gets every problem in one response.
type FilterQuery struct {
	UF             string   `query:"uf" validate:"omitempty,alpha,len=2"`
	Date           string   `query:"data"`
	MinPrecip      string   `query:"min_precip"`
	MaxPrecip      string   `query:"max_precip"`
	Municipalities []string `query:"municipios"`
}

// TimelineQuery - parameters for the per-date aggregation endpoint.
type TimelineQuery struct {
	UF string `query:"uf" validate:"omitempty,alpha,len=2"`
}

// SuggestQuery - parameters for municipality autocomplete.
type SuggestQuery struct {
	UF    string `query:"uf" validate:"omitempty,alpha,len=2"`
	Query string `query:"q" validate:"omitempty,max=100"`
}

// ExportQuery - filter parameters plus the requested download format.
// Unknown formats fall back to CSV, so Format carries no constraint.
type ExportQuery struct {
	FilterQuery
	Format string `query:"format"`
}
