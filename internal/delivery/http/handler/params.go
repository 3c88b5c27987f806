package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/precipitation-dashboard/internal/usecase/dto"
)

// parseFilterQuery collects the filter parameters shared by the data,
// stats, download and heatmap endpoints.
func parseFilterQuery(c *fiber.Ctx) dto.FilterQuery {
	return dto.FilterQuery{
		UF:             c.Query("uf"),
		Date:           c.Query("data"),
		MinPrecip:      c.Query("min_precip"),
		MaxPrecip:      c.Query("max_precip"),
		Municipalities: queryValues(c, "municipios"),
	}
}

// queryValues returns every value of a repeated query key.
func queryValues(c *fiber.Ctx, key string) []string {
	raw := c.Context().QueryArgs().PeekMulti(key)
	if len(raw) == 0 {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		values = append(values, string(v))
	}
	return values
}
