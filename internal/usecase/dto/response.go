package dto

import "github.com/precipitation-dashboard/internal/domain"

// OverviewResponse backs the landing page: the known filter values plus
// a condensed dataset summary.
type OverviewResponse struct {
	States []string              `json:"states"`
	Dates  []string              `json:"dates"`
	Stats  *domain.OverviewStats `json:"stats"`
}

// HealthResponse reports service liveness and which dataset is being
// served.
type HealthResponse struct {
	Status          string `json:"status"`
	DatasetRecords  int    `json:"dataset_records"`
	DatasetSource   string `json:"dataset_source"`
	SyntheticSample bool   `json:"synthetic_sample"`
}
