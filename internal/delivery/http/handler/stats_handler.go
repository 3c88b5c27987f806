package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/precipitation-dashboard/internal/pkg/utils"
	"github.com/precipitation-dashboard/internal/pkg/validator"
	"github.com/precipitation-dashboard/internal/usecase"
	"github.com/precipitation-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
)

// StatsHandler serves the aggregate statistics endpoints.
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// Stats godoc
// @Summary Summary statistics for the filtered view
// @Description Returns record count, mean/min/max/sum of precipitation, distinct municipality and state counts, a per-state breakdown and the fixed range distribution. A view with no matches is a 404.
// @Tags Statistics
// @Produce json
// @Param uf query string false "Two-letter state code, must exist in the dataset"
// @Param data query string false "Date key (YYYY-MM-DD), must exist in the dataset"
// @Param min_precip query number false "Inclusive lower bound in mm"
// @Param max_precip query number false "Inclusive upper bound in mm"
// @Param municipios query []string false "Municipality names"
// @Success 200 {object} domain.Summary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /stats [get]
func (h *StatsHandler) Stats(c *fiber.Ctx) error {
	req := parseFilterQuery(c)

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	summary, err := h.statsUC.Summary(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(summary)
}

// Timeline godoc
// @Summary Per-date aggregates
// @Description Returns one entry per distinct date in the view, sorted by date ascending. No matches yields an empty array.
// @Tags Statistics
// @Produce json
// @Param uf query string false "Two-letter state code, must exist in the dataset"
// @Success 200 {array} domain.TimelineEntry
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /timeline [get]
func (h *StatsHandler) Timeline(c *fiber.Ctx) error {
	req := dto.TimelineQuery{UF: c.Query("uf")}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	entries, err := h.statsUC.Timeline(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(entries)
}
