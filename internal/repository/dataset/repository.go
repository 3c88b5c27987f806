package dataset

import (
	"context"
	"sort"

	"github.com/precipitation-dashboard/internal/config"
	"github.com/precipitation-dashboard/internal/domain"
	"go.uber.org/zap"
)

// SyntheticSource is the Source value reported when the synthetic
// fallback dataset is active.
const SyntheticSource = "synthetic-sample"

// Repository holds the precipitation dataset in memory. Everything is
// computed once at construction and never mutated afterwards, so reads
// from concurrent requests need no locking.
type Repository struct {
	records  []domain.Record
	ufs      []string
	dates    []string
	ufSet    map[string]struct{}
	dateSet  map[string]struct{}
	source   string
	fallback bool
}

// New loads the dataset from the configured CSV file. A missing or
// unreadable file, or one that yields no usable rows, is recovered by
// substituting the synthetic sample dataset; this is the only automatic
// recovery path in the service.
func New(cfg *config.DataConfig, logger *zap.Logger) *Repository {
	records, err := loadCSV(cfg.File, logger)
	if err != nil {
		logger.Warn("Failed to load dataset, using synthetic sample",
			zap.String("file", cfg.File),
			zap.Error(err),
		)
		return newRepository(sampleRecords(), SyntheticSource, true, logger)
	}
	if len(records) == 0 {
		logger.Warn("Dataset file has no usable rows, using synthetic sample",
			zap.String("file", cfg.File),
		)
		return newRepository(sampleRecords(), SyntheticSource, true, logger)
	}

	return newRepository(records, cfg.File, false, logger)
}

// NewFromRecords builds a repository over an explicit record set,
// bypassing file loading. Intended for tests that need a substitute
// dataset.
func NewFromRecords(records []domain.Record, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return newRepository(records, "in-memory", false, logger)
}

func newRepository(records []domain.Record, source string, fallback bool, logger *zap.Logger) *Repository {
	ufSet := make(map[string]struct{})
	dateSet := make(map[string]struct{})
	for i := range records {
		ufSet[records[i].UF] = struct{}{}
		dateSet[records[i].Date] = struct{}{}
	}

	repo := &Repository{
		records:  records,
		ufs:      sortedKeys(ufSet),
		dates:    sortedKeys(dateSet),
		ufSet:    ufSet,
		dateSet:  dateSet,
		source:   source,
		fallback: fallback,
	}

	logger.Info("Dataset ready",
		zap.String("source", source),
		zap.Int("records", len(records)),
		zap.Int("states", len(repo.ufs)),
		zap.Int("dates", len(repo.dates)),
		zap.Bool("synthetic", fallback),
	)
	return repo
}

// Records returns the full dataset in load order. Callers must treat
// the slice as read-only.
func (r *Repository) Records(_ context.Context) []domain.Record {
	return r.records
}

// UFs returns the sorted set of known region codes.
func (r *Repository) UFs(_ context.Context) []string {
	return r.ufs
}

// Dates returns the sorted set of known date keys.
func (r *Repository) Dates(_ context.Context) []string {
	return r.dates
}

// HasUF reports whether a region code exists in the dataset.
func (r *Repository) HasUF(_ context.Context, uf string) bool {
	_, ok := r.ufSet[uf]
	return ok
}

// HasDate reports whether a date key exists in the dataset.
func (r *Repository) HasDate(_ context.Context, date string) bool {
	_, ok := r.dateSet[date]
	return ok
}

// Fallback reports whether the synthetic sample dataset is active.
func (r *Repository) Fallback(_ context.Context) bool {
	return r.fallback
}

// Source names where the dataset came from.
func (r *Repository) Source(_ context.Context) string {
	return r.source
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
