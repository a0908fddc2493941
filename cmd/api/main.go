package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moodlens/moodlens/internal/api"
	"github.com/moodlens/moodlens/internal/config"
	"github.com/moodlens/moodlens/internal/database"
	"github.com/moodlens/moodlens/internal/emotion"
	"github.com/moodlens/moodlens/internal/ingress"
	"github.com/moodlens/moodlens/internal/repository"
	"github.com/moodlens/moodlens/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	logger.Info("starting MoodLens API",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
		slog.String("provider", cfg.EmotionProvider),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Run pending migrations before accepting traffic
	sqlDB, err := database.NewSQLPool(database.DefaultPoolConfig(cfg.DatabaseURL))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	migrator, err := database.NewMigrator(sqlDB, "moodlens")
	if err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	if err := migrator.Up(); err != nil {
		_ = migrator.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := migrator.Close(); err != nil {
		logger.Warn("migrator close", slog.Any("error", err))
	}

	// Connect the pgx pool used by the repositories
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	defer pool.Close()

	// Upload directory and ingress normalization
	normalizer, err := ingress.NewNormalizer(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		return fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	// Emotion classifier backend
	emotionProvider, err := emotion.NewProvider(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create emotion provider: %w", err)
	}

	predictionRepo := repository.NewPredictionRepository(pool)
	analysisService := service.NewAnalysisService(normalizer, emotionProvider, predictionRepo, logger)

	// Setup router
	router := api.NewRouter(cfg, logger, &api.Dependencies{
		Service:   analysisService,
		DB:        pool,
		UploadDir: cfg.UploadDir,
	})
	router.Setup()

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("server listening", slog.String("addr", addr))
		if err := router.Listen(addr); err != nil {
			errChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down server...")
	if err := router.Shutdown(); err != nil {
		logger.Error("shutdown error", slog.Any("error", err))
	}

	<-shutdownCtx.Done()
	logger.Info("server stopped")

	return nil
}
