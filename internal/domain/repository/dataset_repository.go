package repository

import (
	"context"

	"github.com/precipitation-dashboard/internal/domain"
)

// DatasetRepository is the read-only provider of the in-memory
// precipitation dataset. Implementations are immutable after
// construction, so every method is safe for concurrent use.
type DatasetRepository interface {
	// Records returns the full dataset in load order.
	Records(ctx context.Context) []domain.Record

	// UFs returns the sorted set of known region codes.
	UFs(ctx context.Context) []string

	// Dates returns the sorted set of known date keys.
	Dates(ctx context.Context) []string

	// HasUF reports whether a region code exists in the dataset.
	HasUF(ctx context.Context, uf string) bool

	// HasDate reports whether a date key exists in the dataset.
	HasDate(ctx context.Context, date string) bool

	// Fallback reports whether the synthetic sample dataset is active.
	Fallback(ctx context.Context) bool

	// Source names where the dataset came from.
	Source(ctx context.Context) string
}
