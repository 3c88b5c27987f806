package usecase

import (
	"context"

	"github.com/precipitation-dashboard/internal/domain"
	"github.com/precipitation-dashboard/internal/domain/repository"
	"github.com/precipitation-dashboard/internal/pkg/errors"
	"github.com/precipitation-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
)

// StatsUseCase computes aggregate statistics over filtered views.
type StatsUseCase struct {
	datasetRepo repository.DatasetRepository
	logger      *zap.Logger
}

// NewStatsUseCase creates a new StatsUseCase.
func NewStatsUseCase(datasetRepo repository.DatasetRepository, logger *zap.Logger) *StatsUseCase {
	return &StatsUseCase{
		datasetRepo: datasetRepo,
		logger:      logger,
	}
}

// Summary returns the statistics object for the filtered view. A view
// with no matches is reported as not found, distinct from a zero-filled
// summary.
func (uc *StatsUseCase) Summary(ctx context.Context, q dto.FilterQuery) (*domain.Summary, error) {
	criteria, err := buildCriteria(ctx, uc.datasetRepo, q)
	if err != nil {
		return nil, err
	}

	summary := domain.Summarize(criteria.Apply(uc.datasetRepo.Records(ctx)))
	if summary == nil {
		return nil, errors.ErrNoDataFound
	}

	uc.logger.Debug("Summary computed", zap.Int("records", summary.TotalRecords))
	return summary, nil
}

// Timeline returns per-date aggregates for the optionally scoped view,
// sorted by date ascending. No matches yields an empty sequence.
func (uc *StatsUseCase) Timeline(ctx context.Context, q dto.TimelineQuery) ([]domain.TimelineEntry, error) {
	criteria, err := buildCriteria(ctx, uc.datasetRepo, dto.FilterQuery{UF: q.UF})
	if err != nil {
		return nil, err
	}

	return domain.Timeline(criteria.Apply(uc.datasetRepo.Records(ctx))), nil
}

// Overview assembles the landing page payload: known filter values plus
// the condensed dataset summary.
func (uc *StatsUseCase) Overview(ctx context.Context) (*dto.OverviewResponse, error) {
	return &dto.OverviewResponse{
		States: uc.datasetRepo.UFs(ctx),
		Dates:  uc.datasetRepo.Dates(ctx),
		Stats:  domain.BasicStats(uc.datasetRepo.Records(ctx)),
	}, nil
}
