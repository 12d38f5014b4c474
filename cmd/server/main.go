package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ivmolchanov/goshop/internal/server"
	"github.com/ivmolchanov/goshop/internal/server/config"
	"github.com/ivmolchanov/goshop/internal/server/handlers"
	"github.com/ivmolchanov/goshop/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Контекст отменяется по SIGINT/SIGTERM и запускает graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if cfg.AdminEmail != "" {
		if err := server.EnsureAdmin(ctx, logger, store, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return fmt.Errorf("failed to bootstrap admin: %w", err)
		}
	}

	jwtConfig := handlers.JWTConfig{
		Secret:   []byte(cfg.JWTSecret),
		TokenTTL: cfg.TokenTTL,
	}

	registry := prometheus.NewRegistry()
	router := server.NewRouter(logger, jwtConfig, store, store, registry)

	srv := server.New(cfg.Addr, router, logger)

	logger.Info("starting server",
		"addr", cfg.Addr,
		"version", Version,
	)

	return srv.Run(ctx)
}

func printVersion() {
	fmt.Printf("GoShop Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
