package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ed1196/Dawn-REST-API/internal/api"
	"github.com/Ed1196/Dawn-REST-API/internal/config"
	"github.com/Ed1196/Dawn-REST-API/internal/factory"
	"github.com/Ed1196/Dawn-REST-API/internal/services/auth"
	redisstorage "github.com/Ed1196/Dawn-REST-API/internal/storage/redis"
	sqlitestorage "github.com/Ed1196/Dawn-REST-API/internal/storage/sqlite"
)

func main() {
	cfg, err := config.Load(os.Getenv("DAWN_CONFIG"))
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.Storage.Type,
		AuthConfig:  auth.Config{SessionDuration: cfg.Auth.SessionDuration},
	}

	switch cfg.Storage.Type {
	case factory.StorageTypeRedis:
		factoryCfg.RedisConfig = &redisstorage.Config{
			URL:          cfg.Storage.Redis.URL,
			PoolSize:     cfg.Storage.Redis.PoolSize,
			MinIdleConns: cfg.Storage.Redis.MinIdleConns,
		}
	case factory.StorageTypeSQLite:
		factoryCfg.SQLiteConfig = &sqlitestorage.Config{
			Path: cfg.Storage.SQLite.Path,
		}
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		AuthService:        app.AuthService,
		PlayerController:   app.PlayerController,
		LobbyController:    app.LobbyController,
		LocationController: app.LocationController,
	})

	server := api.NewServer(router, api.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, logger)

	// Serve until interrupted
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("received signal", slog.String("signal", sig.String()))
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
