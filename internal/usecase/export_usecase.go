package usecase

import (
	"context"

	"github.com/precipitation-dashboard/internal/domain/repository"
	"github.com/precipitation-dashboard/internal/pkg/export"
	"github.com/precipitation-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
)

// ExportUseCase serializes filtered views into downloadable files.
type ExportUseCase struct {
	datasetRepo repository.DatasetRepository
	logger      *zap.Logger
}

// NewExportUseCase creates a new ExportUseCase.
func NewExportUseCase(datasetRepo repository.DatasetRepository, logger *zap.Logger) *ExportUseCase {
	return &ExportUseCase{
		datasetRepo: datasetRepo,
		logger:      logger,
	}
}

// Export filters the dataset and encodes the view in the requested
// format. An empty view is reported as not found; unknown formats fall
// back to CSV.
func (uc *ExportUseCase) Export(ctx context.Context, q dto.ExportQuery) (*export.File, error) {
	criteria, err := buildCriteria(ctx, uc.datasetRepo, q.FilterQuery)
	if err != nil {
		return nil, err
	}

	view := criteria.Apply(uc.datasetRepo.Records(ctx))

	file, err := export.Encode(view, q.Format)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Export generated",
		zap.String("filename", file.Filename),
		zap.Int("records", len(view)),
		zap.Int("bytes", len(file.Data)),
	)
	return file, nil
}
