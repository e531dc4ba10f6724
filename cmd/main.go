package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpadapter "adwizard/internal/adapter/http"
	"adwizard/internal/adapter/memory"
	"adwizard/internal/adapter/postgres"
	"adwizard/internal/adapter/usecase"
	"adwizard/internal/config"
	"adwizard/internal/core/port"
	"adwizard/internal/core/synth"
	"adwizard/internal/db"
)

// main is the entry point of the adwizard service. It loads configuration,
// selects the campaign store, wires the synthesis layer into the usecase and
// starts the HTTP server. On receiving a termination signal it gracefully
// shuts down the server.
func main() {
	// Load a local .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var repo port.CampaignRepository
	switch cfg.Storage.Normalized() {
	case "postgres":
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		repo = postgres.NewCampaignRepository(pool)
	default:
		repo = memory.NewCampaignRepository()
	}
	logger.Info("campaign store ready", slog.String("driver", cfg.Storage.Normalized()))

	svc := usecase.NewCampaignUseCase(
		repo,
		synth.NewMetricSynthesizer(nil, nil),
		synth.NewHourlyEngagementSynthesizer(nil),
		nil,
	)

	if cfg.Storage.SeedDemo {
		if err = db.Seed(ctx, svc); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo campaigns seeded")
		}
	}

	handler := httpadapter.NewHandler(svc, logger, cfg.HTTP.AllowedOrigins)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
