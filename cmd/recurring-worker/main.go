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
	"recurrence-ledger/internal/repositories"
	"recurrence-ledger/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("Starting recurring-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err, "host", cfg.Database.Host)
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Materialized occurrences are announced on AMQP when a broker is configured
	var publisher services.OccurrencePublisherInterface = events.NoopPublisher{}
	if cfg.AMQP.URL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP publisher, continuing without events", "error", err)
		} else {
			defer amqpPublisher.Close()
			publisher = events.NewGuardedPublisher(amqpPublisher, events.DefaultCircuitBreakerConfig())
			logger.Info("AMQP publisher initialized", "exchange", cfg.AMQP.Exchange)
		}
	} else {
		logger.Info("AMQP disabled - materialized occurrences will not be published")
	}

	processor := services.NewRecurringProcessor(
		repositories.NewRecurrenceRepository(db),
		repositories.NewTransactionRepository(db),
		services.NewOccurrenceProjector(cfg.Projection.MaxSteps),
		publisher,
		services.NewPrometheusMetrics(),
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	interval := cfg.Worker.Interval
	logger.Info("Recurring processor configured", "interval", interval)

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Worker.MetricsPort != "" {
		metricsServer := newMetricsServer(cfg.Worker.MetricsPort)

		g.Go(func() error {
			logger.Info("Serving worker metrics", "port", cfg.Worker.MetricsPort)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})

		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return metricsServer.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		return runLoop(gctx, logger, processor, interval)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Recurring-worker stopped with error", "error", err)
		return
	}
	logger.Info("Recurring-worker shutdown complete")
}

func newMetricsServer(port string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// runLoop runs one catch-up immediately and then one per interval until ctx ends.
// Cancelling stops the pass between recurrences; progress already recorded is kept.
func runLoop(ctx context.Context, logger *slog.Logger, processor services.RecurringProcessorInterface, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Running initial catch-up...")
	runCatchUp(ctx, logger, processor, time.Now())

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			runCatchUp(ctx, logger, processor, now)
			logger.Info("Next catch-up scheduled", "next_check", now.Add(interval).Format("15:04:05"))
		}
	}
}

func runCatchUp(ctx context.Context, logger *slog.Logger, processor services.RecurringProcessorInterface, now time.Time) {
	result, err := processor.ProcessDueOccurrences(ctx, now)
	if err != nil {
		logger.Error("Catch-up failed", "error", err)
		if result == nil {
			return
		}
	}

	logger.Info("Catch-up complete",
		"recurrences", result.Recurrences,
		"created", result.Created,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"truncated", result.Truncated)
}
