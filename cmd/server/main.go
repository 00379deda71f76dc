package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kdfca/academy/internal/api"
	"github.com/kdfca/academy/internal/config"
	"github.com/kdfca/academy/internal/factory"
)

func main() {
	cfg, err := config.Load(os.Getenv)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	level, _ := cfg.Level()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Create application factory; this rehydrates the store
	app, err := factory.New(context.Background(), factory.FromConfig(cfg, logger))
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("store ready",
		slog.String("storage", cfg.Storage.Type),
		slog.Int("registrations", len(app.Store.Registrations().Items)),
		slog.Int("coaches", len(app.Store.Coaches().Items)),
		slog.Int("users", len(app.Store.Users().Items)),
	)

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:              logger,
		Store:               app.Store,
		RegistrationService: app.RegistrationService,
		AccountService:      app.AccountService,
		MaxBodyBytes:        cfg.Server.MaxBodyBytes,
	})

	// Create server
	server := api.NewServer(router, api.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, logger)
	server.OnShutdown(app.Close)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			_ = app.Close(context.Background())
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
