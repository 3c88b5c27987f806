package main

// @title Precipitation Dashboard API
// @version 1.0.0
// @description Web service that serves filtered precipitation records with geographic coordinates as GeoJSON, tabular exports and summary statistics, backed by a single in-memory dataset loaded from a CSV file.
// @description
// @description Main capabilities:
// @description - Filtered precipitation records as a GeoJSON FeatureCollection
// @description - Summary statistics with a per-state breakdown and range distribution
// @description - Per-date aggregates for timeline charts
// @description - Municipality autocomplete
// @description - CSV / JSON / XLSX downloads of the filtered view
// @description - Heatmap point triples

// @contact.name API Support
// @contact.email support@precipitation-dashboard.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/precipitation-dashboard/docs"
	"github.com/precipitation-dashboard/internal/config"
	httpDelivery "github.com/precipitation-dashboard/internal/delivery/http"
	"github.com/precipitation-dashboard/internal/delivery/http/handler"
	"github.com/precipitation-dashboard/internal/pkg/logger"
	"github.com/precipitation-dashboard/internal/pkg/metrics"
	"github.com/precipitation-dashboard/internal/repository/dataset"
	"github.com/precipitation-dashboard/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Precipitation Dashboard")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("data_file", cfg.Data.File),
	)

	// 3. Load dataset. A missing or empty file is recovered with the
	// synthetic sample, so the repository is always usable.
	datasetRepo := dataset.New(&cfg.Data, log)

	// 4. Initialize metrics
	m := metrics.New()
	m.DatasetRecords.Set(float64(len(datasetRepo.Records(context.Background()))))
	if datasetRepo.Fallback(context.Background()) {
		m.DatasetFallback.Set(1)
	}

	// 5. Initialize Use Cases
	geoDataUC := usecase.NewGeoDataUseCase(datasetRepo, log)
	statsUC := usecase.NewStatsUseCase(datasetRepo, log)
	exportUC := usecase.NewExportUseCase(datasetRepo, log)
	municipalityUC := usecase.NewMunicipalityUseCase(datasetRepo, log)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	overviewHandler := handler.NewOverviewHandler(statsUC, log)
	geoDataHandler := handler.NewGeoDataHandler(geoDataUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)
	exportHandler := handler.NewExportHandler(exportUC, log)
	municipalityHandler := handler.NewMunicipalityHandler(municipalityUC, log)
	healthHandler := handler.NewHealthHandler(datasetRepo, log)

	log.Info("HTTP handlers initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		m,
		overviewHandler,
		geoDataHandler,
		statsHandler,
		exportHandler,
		municipalityHandler,
		healthHandler,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
