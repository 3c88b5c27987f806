// Package docs Precipitation Dashboard API.
//
// Web service for precipitation records with geographic coordinates.
// Serves filtered data as GeoJSON, summary statistics, timeline aggregates,
// municipality suggestions and tabular exports from a single in-memory
// dataset loaded from a CSV file.
//
// Main capabilities:
// - Filtered precipitation records as a GeoJSON FeatureCollection
// - Summary statistics with per-state breakdown and range distribution
// - Per-date aggregates for timeline charts
// - Municipality autocomplete scoped by state
// - CSV / JSON / XLSX downloads of the filtered view
// - Heatmap point triples for map layers
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//	- application/geo+json
//	- text/csv
//	- application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//
// swagger:meta
package docs
