package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/precipitation-dashboard/internal/pkg/metrics"
)

// Metrics records request counts and durations per endpoint. The route
// pattern is used as the endpoint label to keep cardinality bounded.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		endpoint := c.Route().Path
		if endpoint == "" {
			endpoint = c.Path()
		}

		m.RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

		return err
	}
}
