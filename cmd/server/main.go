package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recurrence-ledger/internal/config"
	"recurrence-ledger/internal/database"
	"recurrence-ledger/internal/events"
	"recurrence-ledger/internal/handlers"
	"recurrence-ledger/internal/middleware"
	"recurrence-ledger/internal/repositories"
	"recurrence-ledger/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	// .env is optional outside local development
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel()}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("configuration validation failed", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	recurrenceRepo := repositories.NewRecurrenceRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)

	metrics := services.NewPrometheusMetrics()
	projector := services.NewOccurrenceProjector(cfg.Projection.MaxSteps)

	detectorConfig := services.DefaultDetectorConfig()
	detectorConfig.WindowDays = cfg.Detection.WindowDays
	detectorConfig.MinOccurrences = cfg.Detection.MinOccurrences
	detectorConfig.DefaultCVThreshold = cfg.Detection.DefaultCVThreshold
	detectorConfig.LowTrustCVThreshold = cfg.Detection.LowTrustCVThreshold
	detector := services.NewPatternDetector(detectorConfig)

	transactionService := services.NewTransactionService(transactionRepo, metrics, logger)
	recurrenceService := services.NewRecurrenceService(
		recurrenceRepo,
		transactionRepo,
		projector,
		detector,
		metrics,
		logger,
		services.RecurrenceServiceConfig{
			DetectionWindowDays: cfg.Detection.WindowDays,
			CalendarMaxDays:     cfg.Projection.CalendarMaxDays,
		},
	)

	publisher, closePublisher := newPublisher(cfg.AMQP, logger)
	defer closePublisher()

	processor := services.NewRecurringProcessor(recurrenceRepo, transactionRepo, projector, publisher, metrics, logger)

	e := newServer(ctx, cfg, handlerSet{
		health:      handlers.NewHealthCheckHandler(db),
		transaction: handlers.NewTransactionHandler(transactionService),
		recurrence:  handlers.NewRecurrenceHandler(recurrenceService, processor),
		dev:         handlers.NewDevHandler(transactionRepo, services.NewTransactionGenerator(time.Now().UnixNano(), "USD")),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

type handlerSet struct {
	health      *handlers.HealthCheckHandler
	transaction *handlers.TransactionHandler
	recurrence  *handlers.RecurrenceHandler
	dev         *handlers.DevHandler
}

func newServer(ctx context.Context, cfg *config.Config, h handlerSet) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))
	e.Use(echomiddleware.BodyLimit("1M"))

	e.GET("/health", h.health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", middleware.RateLimiter(ctx, cfg.RateLimit))

	api.POST("/transactions", h.transaction.RecordTransaction)
	api.GET("/transactions", h.transaction.ListTransactions)
	api.GET("/transactions/:id", h.transaction.GetTransaction)

	api.POST("/recurrences", h.recurrence.CreateRecurrence)
	api.GET("/recurrences", h.recurrence.ListRecurrences)
	api.GET("/recurrences/suggestions", h.recurrence.SuggestRecurrences)
	api.POST("/recurrences/catch-up", h.recurrence.CatchUp)
	api.GET("/recurrences/:id", h.recurrence.GetRecurrence)
	api.PUT("/recurrences/:id", h.recurrence.UpdateRecurrence)
	api.DELETE("/recurrences/:id", h.recurrence.DeleteRecurrence)
	api.POST("/recurrences/:id/end", h.recurrence.EndRecurrence)
	api.GET("/recurrences/:id/occurrences", h.recurrence.ProjectRecurrence)
	api.GET("/recurrences/:id/next", h.recurrence.NextOccurrence)

	api.GET("/occurrences", h.recurrence.UpcomingOccurrences)

	if cfg.IsDevelopment() {
		api.POST("/dev/seed", h.dev.SeedHistory)
	}

	return e
}

// newPublisher connects to the broker when one is configured, falling back to a no-op publisher
func newPublisher(cfg config.AMQPConfig, logger *slog.Logger) (services.OccurrencePublisherInterface, func()) {
	if cfg.URL == "" {
		logger.Info("AMQP disabled, materialized occurrences will not be published")
		return events.NoopPublisher{}, func() {}
	}

	amqpPublisher, err := events.NewAMQPPublisher(cfg.URL, cfg.Exchange, cfg.Queue)
	if err != nil {
		logger.Warn("failed to connect to AMQP, continuing without publishing", "error", err)
		return events.NoopPublisher{}, func() {}
	}

	logger.Info("AMQP publisher initialized", "exchange", cfg.Exchange, "queue", cfg.Queue)
	closeFn := func() {
		if err := amqpPublisher.Close(); err != nil {
			logger.Warn("failed to close AMQP publisher", "error", err)
		}
	}
	return events.NewGuardedPublisher(amqpPublisher, events.DefaultCircuitBreakerConfig()), closeFn
}

func logLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv("LOG_LEVEL"))); err != nil {
		return slog.LevelInfo
	}
	return level
}
