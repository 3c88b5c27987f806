package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/precipitation-dashboard/internal/pkg/utils"
	"github.com/precipitation-dashboard/internal/pkg/validator"
	"github.com/precipitation-dashboard/internal/usecase"
	"go.uber.org/zap"
)

// GeoDataHandler serves the map endpoints backed by the filtered
// dataset.
type GeoDataHandler struct {
	geoDataUC *usecase.GeoDataUseCase
	logger    *zap.Logger
}

// NewGeoDataHandler creates a new GeoDataHandler.
func NewGeoDataHandler(geoDataUC *usecase.GeoDataUseCase, logger *zap.Logger) *GeoDataHandler {
	return &GeoDataHandler{
		geoDataUC: geoDataUC,
		logger:    logger,
	}
}

// Data godoc
// @Summary Filtered precipitation records as GeoJSON
// @Description Returns a GeoJSON FeatureCollection of the observations matching the filters. A result with no matches is a valid empty collection carrying an informational message.
// @Tags Map
// @Produce json
// @Param uf query string false "Two-letter state code, must exist in the dataset"
// @Param data query string false "Date key (YYYY-MM-DD), must exist in the dataset"
// @Param min_precip query number false "Inclusive lower bound in mm, non-negative"
// @Param max_precip query number false "Inclusive upper bound in mm, non-negative"
// @Param municipios query []string false "Municipality names, repeatable or comma-separated"
// @Success 200 {object} geojson.FeatureCollection
// @Failure 400 {object} utils.ErrorResponse "List of validation messages"
// @Failure 500 {object} utils.ErrorResponse
// @Router /data [get]
func (h *GeoDataHandler) Data(c *fiber.Ctx) error {
	req := parseFilterQuery(c)

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	fc, err := h.geoDataUC.FeatureCollection(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(fc)
}

// Heatmap godoc
// @Summary Heatmap points for the filtered view
// @Description Returns [latitude, longitude, value] triples ready for heatmap layers.
// @Tags Map
// @Produce json
// @Param uf query string false "Two-letter state code"
// @Param data query string false "Date key (YYYY-MM-DD)"
// @Param min_precip query number false "Inclusive lower bound in mm"
// @Param max_precip query number false "Inclusive upper bound in mm"
// @Param municipios query []string false "Municipality names"
// @Success 200 {array} []float64
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /heatmap [get]
func (h *GeoDataHandler) Heatmap(c *fiber.Ctx) error {
	req := parseFilterQuery(c)

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	points, err := h.geoDataUC.Heatmap(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(points)
}
