package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/admintables/internal/catalog"
	"github.com/JonMunkholm/admintables/internal/config"
	"github.com/JonMunkholm/admintables/internal/logging"
	"github.com/JonMunkholm/admintables/internal/views"
	"github.com/JonMunkholm/admintables/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	seedRedis := flag.Bool("seed-redis", false, "publish the embedded seed datasets to Redis and exit")
	flag.Parse()

	// Overload lets .env win over the inherited environment
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded", "config", cfg.String())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *seedRedis {
		if err := publishSeed(ctx, cfg); err != nil {
			slog.Error("failed to publish seed", "error", err)
			os.Exit(1)
		}
		return
	}

	source, closeSource, err := openSource(ctx, cfg)
	if err != nil {
		slog.Error("failed to open dataset source", "source", cfg.Dataset.Source, "error", err)
		os.Exit(1)
	}
	defer closeSource()

	store := catalog.NewStore(source, cfg.Dataset.LoadTimeout)
	snap, err := store.Refresh(ctx)
	if err != nil {
		slog.Error("initial dataset load failed", "source", source.Name(), "error", err)
		os.Exit(1)
	}
	slog.Info("views registered",
		"count", views.Count(),
		"groups", len(views.Groups()),
		"version", snap.Version,
	)

	go store.StartRefresher(ctx, cfg.Dataset.RefreshInterval)

	server := web.NewServer(store, cfg)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		<-ctx.Done()
		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
	<-drained
	slog.Info("server stopped")
}
