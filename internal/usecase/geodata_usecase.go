package usecase

import (
	"context"

	"github.com/precipitation-dashboard/internal/domain/repository"
	"github.com/precipitation-dashboard/internal/pkg/geojson"
	"github.com/precipitation-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
)

// GeoDataUseCase produces the map-ready representations of the filtered
// dataset: GeoJSON features and heatmap triples.
type GeoDataUseCase struct {
	datasetRepo repository.DatasetRepository
	logger      *zap.Logger
}

// NewGeoDataUseCase creates a new GeoDataUseCase.
func NewGeoDataUseCase(datasetRepo repository.DatasetRepository, logger *zap.Logger) *GeoDataUseCase {
	return &GeoDataUseCase{
		datasetRepo: datasetRepo,
		logger:      logger,
	}
}

// FeatureCollection filters the dataset and encodes the view as
// GeoJSON. A view with no matches is a valid empty collection, not an
// error.
func (uc *GeoDataUseCase) FeatureCollection(ctx context.Context, q dto.FilterQuery) (*geojson.FeatureCollection, error) {
	criteria, err := buildCriteria(ctx, uc.datasetRepo, q)
	if err != nil {
		return nil, err
	}

	view := criteria.Apply(uc.datasetRepo.Records(ctx))
	uc.logger.Debug("Map data filtered", zap.Int("records", len(view)))

	return geojson.NewFeatureCollection(view), nil
}

// Heatmap returns [latitude, longitude, value] triples for the filtered
// view. Latitude comes first here, unlike the GeoJSON axis order.
func (uc *GeoDataUseCase) Heatmap(ctx context.Context, q dto.FilterQuery) ([][]float64, error) {
	criteria, err := buildCriteria(ctx, uc.datasetRepo, q)
	if err != nil {
		return nil, err
	}

	view := criteria.Apply(uc.datasetRepo.Records(ctx))

	points := make([][]float64, 0, len(view))
	for i := range view {
		points = append(points, []float64{view[i].Lat, view[i].Lon, view[i].Precipitation})
	}
	return points, nil
}
