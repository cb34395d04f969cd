package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/travel-budget-estimator/internal/config"
	"github.com/anyulbade/travel-budget-estimator/internal/database"
	"github.com/anyulbade/travel-budget-estimator/internal/dataset"
	"github.com/anyulbade/travel-budget-estimator/internal/handler"
	"github.com/anyulbade/travel-budget-estimator/internal/middleware"
	"github.com/anyulbade/travel-budget-estimator/internal/repository"
	"github.com/anyulbade/travel-budget-estimator/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	store := dataset.New(dataset.FileLoader(
		cfg.WorkbookPath, cfg.WorkbookMaxMB<<20, cfg.IngestTimeout))
	if cfg.EagerIngestData {
		if err := store.Load(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("failed to ingest cost workbook")
		}
	}

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(pool)
	router.GET("/health", healthHandler.Health)

	setupAPIRoutes(router, pool, store)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupAPIRoutes(router *gin.Engine, pool *pgxpool.Pool, store *dataset.Store) {
	leadRepo := repository.NewLeadRepository(pool)

	calcService := service.NewCalculationService(store)
	leadService := service.NewLeadService(leadRepo)
	usageService := service.NewUsageService()

	calcHandler := handler.NewCalculationHandler(calcService)
	datasetHandler := handler.NewDatasetHandler(store)
	leadHandler := handler.NewLeadHandler(leadService)
	usageHandler := handler.NewUsageHandler(usageService)
	optionsHandler := handler.NewOptionsHandler()

	api := router.Group("/api/v1")
	{
		api.GET("/dataset", datasetHandler.Get)
		api.POST("/dataset/reload", datasetHandler.Reload)
		api.POST("/calculations", calcHandler.Calculate)
		api.POST("/leads", leadHandler.Submit)
		api.POST("/usage", usageHandler.Record)
		api.GET("/options", optionsHandler.Get)
	}
}
