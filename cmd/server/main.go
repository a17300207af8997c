package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/labelgen/internal/config"
	"github.com/JonMunkholm/labelgen/internal/core"
	_ "github.com/JonMunkholm/labelgen/internal/core/schemas" // Register all input schemas
	"github.com/JonMunkholm/labelgen/internal/logging"
	"github.com/JonMunkholm/labelgen/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"session_capacity", cfg.Session.Capacity,
		"session_ttl", cfg.Session.TTL,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// The configured defaults must resolve against the registries, or every
	// request without an explicit key would fail. Catch that at startup.
	if _, ok := core.GetSchema(cfg.Defaults.Schema); !ok {
		slog.Error("default schema is not registered", "schema", cfg.Defaults.Schema)
		os.Exit(1)
	}
	if _, ok := core.GetProfile(cfg.Defaults.Profile); !ok {
		slog.Error("default profile is not registered", "profile", cfg.Defaults.Profile)
		os.Exit(1)
	}

	slog.Info("registries loaded",
		"schemas", len(core.Schemas()),
		"profiles", len(core.Profiles()),
	)

	// Create service with config
	service := core.NewService(core.ServiceOptions{
		SessionCapacity: cfg.Session.Capacity,
		SessionTTL:      cfg.Session.TTL,
		MaxRecords:      cfg.Session.MaxRecords,
		MaxInputBytes:   cfg.Limits.MaxInputBytes,
	})

	// Create server with config
	server := web.NewServer(cfg, service)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	// Start server (uses addr from config internally)
	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
