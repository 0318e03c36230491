package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sentencer/internal/config"
	"sentencer/internal/handler"
	"sentencer/internal/middleware"
	"sentencer/internal/provider/sentenceapi"
	"sentencer/internal/service"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Sentencer",
		zap.String("addr", cfg.Addr()),
		zap.Duration("api_timeout", cfg.API.Timeout),
		zap.Int("fetch_concurrency", cfg.API.FetchConcurrency),
	)

	// Initialize sentence API client
	client := sentenceapi.NewClient(cfg.API, logger)

	// Initialize services
	sentenceService := service.NewSentenceService(client, cfg.API.FetchConcurrency, logger)

	// Initialize handler
	h, err := handler.NewHandler(sentenceService, cfg.Server.MaxUploadSize, logger)
	if err != nil {
		logger.Fatal("Failed to create handler", zap.Error(err))
	}

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	logger.Info("Routes registered")

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: middleware.Chain(
			middleware.RequestID,
			middleware.Recovery(logger),
			middleware.Logger(logger),
		)(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in background
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	case <-sigChan:
	}

	logger.Info("Shutdown signal received, stopping server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
		return
	}

	logger.Info("Server stopped gracefully")
}

// newLogger builds a production logger at the given level
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	return zapCfg.Build()
}
