package handler

import (
	"bytes"
	"html/template"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/precipitation-dashboard/internal/pkg/utils"
	"github.com/precipitation-dashboard/internal/usecase"
	"go.uber.org/zap"
)

// OverviewHandler renders the landing page with the known filter values
// and the condensed dataset summary. When the HTML templates are not
// available the same payload is served as JSON.
type OverviewHandler struct {
	statsUC   *usecase.StatsUseCase
	templates *template.Template
	logger    *zap.Logger
}

// NewOverviewHandler creates a new OverviewHandler, loading the page
// templates from the templates directory when present.
func NewOverviewHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *OverviewHandler {
	tmpl, err := template.ParseGlob(filepath.Join("templates", "*.html"))
	if err != nil {
		logger.Warn("Overview templates not available, falling back to JSON", zap.Error(err))
		tmpl = nil
	}

	return &OverviewHandler{
		statsUC:   statsUC,
		templates: tmpl,
		logger:    logger,
	}
}

// Overview godoc
// @Summary Dataset overview page
// @Description Renders the dashboard landing page with known states, known dates and basic dataset statistics. Served as JSON when the HTML templates are missing.
// @Tags Overview
// @Produce html
// @Produce json
// @Success 200 {object} dto.OverviewResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router / [get]
func (h *OverviewHandler) Overview(c *fiber.Ctx) error {
	data, err := h.statsUC.Overview(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	if h.templates == nil {
		return c.JSON(data)
	}

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "index.html", data); err != nil {
		h.logger.Warn("Failed to render overview template", zap.Error(err))
		return c.JSON(data)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
