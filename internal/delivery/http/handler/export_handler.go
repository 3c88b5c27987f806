package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/precipitation-dashboard/internal/pkg/utils"
	"github.com/precipitation-dashboard/internal/pkg/validator"
	"github.com/precipitation-dashboard/internal/usecase"
	"github.com/precipitation-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
)

// ExportHandler serves filtered views as downloadable files.
type ExportHandler struct {
	exportUC *usecase.ExportUseCase
	logger   *zap.Logger
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportUC *usecase.ExportUseCase, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		exportUC: exportUC,
		logger:   logger,
	}
}

// Download godoc
// @Summary Download the filtered view
// @Description Returns the filtered records as an attachment. Formats: csv (default, UTF-8 with BOM), json (one object per record) and excel (xlsx). Unknown formats fall back to csv. An empty view is a 404.
// @Tags Export
// @Produce json
// @Param uf query string false "Two-letter state code, must exist in the dataset"
// @Param data query string false "Date key (YYYY-MM-DD), must exist in the dataset"
// @Param min_precip query number false "Inclusive lower bound in mm"
// @Param max_precip query number false "Inclusive upper bound in mm"
// @Param municipios query []string false "Municipality names"
// @Param format query string false "csv, json or excel" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /download [get]
func (h *ExportHandler) Download(c *fiber.Ctx) error {
	req := dto.ExportQuery{
		FilterQuery: parseFilterQuery(c),
		Format:      c.Query("format"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	file, err := h.exportUC.Export(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, file.MIMEType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Send(file.Data)
}
