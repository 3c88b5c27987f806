package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/precipitation-dashboard/internal/pkg/utils"
	"github.com/precipitation-dashboard/internal/pkg/validator"
	"github.com/precipitation-dashboard/internal/usecase"
	"github.com/precipitation-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
)

// MunicipalityHandler serves municipality autocomplete.
type MunicipalityHandler struct {
	municipalityUC *usecase.MunicipalityUseCase
	logger         *zap.Logger
}

// NewMunicipalityHandler creates a new MunicipalityHandler.
func NewMunicipalityHandler(municipalityUC *usecase.MunicipalityUseCase, logger *zap.Logger) *MunicipalityHandler {
	return &MunicipalityHandler{
		municipalityUC: municipalityUC,
		logger:         logger,
	}
}

// Municipios godoc
// @Summary Municipality name suggestions
// @Description Returns up to 50 municipality names matching the query substring (case-insensitive), optionally scoped to one state. Sorted and deduplicated.
// @Tags Municipalities
// @Produce json
// @Param uf query string false "Two-letter state code, must exist in the dataset"
// @Param q query string false "Substring to match, case-insensitive"
// @Success 200 {array} string
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /municipios [get]
func (h *MunicipalityHandler) Municipios(c *fiber.Ctx) error {
	req := dto.SuggestQuery{
		UF:    c.Query("uf"),
		Query: c.Query("q"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	names, err := h.municipalityUC.Suggest(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(names)
}
