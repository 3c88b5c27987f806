package http

import (
	"context"
	goerrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/precipitation-dashboard/internal/config"
	"github.com/precipitation-dashboard/internal/delivery/http/handler"
	"github.com/precipitation-dashboard/internal/delivery/http/middleware"
	apperrors "github.com/precipitation-dashboard/internal/pkg/errors"
	"github.com/precipitation-dashboard/internal/pkg/metrics"
	"github.com/precipitation-dashboard/internal/pkg/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP server built on Fiber.
type Server struct {
	app     *fiber.App
	config  *config.Config
	logger  *zap.Logger
	metrics *metrics.Metrics

	// Handlers
	overviewHandler     *handler.OverviewHandler
	geoDataHandler      *handler.GeoDataHandler
	statsHandler        *handler.StatsHandler
	exportHandler       *handler.ExportHandler
	municipalityHandler *handler.MunicipalityHandler
	healthHandler       *handler.HealthHandler
}

// NewServer wires the middlewares and routes around the handlers.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	m *metrics.Metrics,
	overviewHandler *handler.OverviewHandler,
	geoDataHandler *handler.GeoDataHandler,
	statsHandler *handler.StatsHandler,
	exportHandler *handler.ExportHandler,
	municipalityHandler *handler.MunicipalityHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Precipitation Dashboard",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                 app,
		config:              cfg,
		logger:              logger,
		metrics:             m,
		overviewHandler:     overviewHandler,
		geoDataHandler:      geoDataHandler,
		statsHandler:        statsHandler,
		exportHandler:       exportHandler,
		municipalityHandler: municipalityHandler,
		healthHandler:       healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Metrics(s.metrics))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes mounts the public endpoints. The paths are part of the
// dashboard's contract and live at the root, not under an API prefix.
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Prometheus exposition
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	s.app.Get("/health", s.healthHandler.Health)

	// Dashboard endpoints
	s.app.Get("/", s.overviewHandler.Overview)
	s.app.Get("/data", s.geoDataHandler.Data)
	s.app.Get("/stats", s.statsHandler.Stats)
	s.app.Get("/timeline", s.statsHandler.Timeline)
	s.app.Get("/municipios", s.municipalityHandler.Municipios)
	s.app.Get("/download", s.exportHandler.Download)
	s.app.Get("/heatmap", s.geoDataHandler.Heatmap)
}

// Start begins serving on the configured address.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler turns errors that escape the handlers (panics
// surfaced by the recover middleware, unmatched routes) into the same
// JSON error shape the handlers produce.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *apperrors.AppError
		if goerrors.As(err, &appErr) {
			return utils.SendError(c, appErr)
		}

		status := fiber.StatusInternalServerError
		message := apperrors.ErrInternalServer.Message

		var fiberErr *fiber.Error
		if goerrors.As(err, &fiberErr) {
			status = fiberErr.Code
			message = fiberErr.Message
			if status == fiber.StatusNotFound {
				message = "endpoint not found"
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Error(err),
		)

		return c.Status(status).JSON(utils.ErrorResponse{Error: message})
	}
}
