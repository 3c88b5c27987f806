package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/precipitation-dashboard/internal/domain/repository"
	"github.com/precipitation-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
)

// HealthHandler reports service liveness and which dataset is loaded.
type HealthHandler struct {
	datasetRepo repository.DatasetRepository
	logger      *zap.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(datasetRepo repository.DatasetRepository, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		datasetRepo: datasetRepo,
		logger:      logger,
	}
}

// Health godoc
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx := c.Context()

	return c.JSON(dto.HealthResponse{
		Status:          "healthy",
		DatasetRecords:  len(h.datasetRepo.Records(ctx)),
		DatasetSource:   h.datasetRepo.Source(ctx),
		SyntheticSample: h.datasetRepo.Fallback(ctx),
	})
}
