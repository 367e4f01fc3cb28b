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
	"touchhub/backend/internal/api/repository"
	"touchhub/backend/internal/api/service"
	"touchhub/backend/internal/auth"
	"touchhub/backend/internal/config"
	"touchhub/backend/internal/db"
	"touchhub/backend/internal/logger"
	"touchhub/backend/internal/metrics"
	"touchhub/backend/internal/server"
	"touchhub/backend/internal/telemetry"
	"touchhub/backend/internal/validator"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Init(cfg.LogLevel)

	// Initialize telemetry
	shutdownTelemetry, err := telemetry.InitOtel(ctx, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTelemetry(ctx); err != nil {
			slog.Error("error shutting down telemetry", "error", err)
		}
	}()

	// Open and migrate the database
	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.Migrate(ctx, conn); err != nil {
		return err
	}

	validator.Init()

	tokens, err := auth.NewTokenService(cfg.Secret, cfg.AccessTokenTTL)
	if err != nil {
		return err
	}

	// Create repositories
	userRepo := repository.NewUserRepository(conn)
	playRepo := repository.NewPlayRepository(conn)

	// Create services
	userService := service.NewUserService(userRepo, auth.NewBcryptHasher(cfg.BcryptCost), tokens)
	playService := service.NewPlayService(playRepo)

	srv := server.NewServer(conn, userService, playService, metrics.New())

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Handler(cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("http server started", "addr", httpServer.Addr, "cors_origins", cfg.CORSOrigins)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-stop:
	case err := <-serverErr:
		return err
	}

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("server exiting")
	return nil
}
