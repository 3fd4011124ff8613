// Package factory wires storage, dependencies and services into a running
// application.
package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/Ed1196/Dawn-REST-API/internal/dependencies/clock"
	"github.com/Ed1196/Dawn-REST-API/internal/dependencies/random"
	"github.com/Ed1196/Dawn-REST-API/internal/services/auth"
	"github.com/Ed1196/Dawn-REST-API/internal/services/lobby"
	"github.com/Ed1196/Dawn-REST-API/internal/services/location"
	"github.com/Ed1196/Dawn-REST-API/internal/services/player"
	"github.com/Ed1196/Dawn-REST-API/internal/storage"
	"github.com/Ed1196/Dawn-REST-API/internal/storage/memory"
	redisstorage "github.com/Ed1196/Dawn-REST-API/internal/storage/redis"
	sqlitestorage "github.com/Ed1196/Dawn-REST-API/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage

	Clock  clock.Clock
	Random random.Random

	AuthService        *auth.Service
	PlayerController   *player.Controller
	LobbyController    *lobby.Controller
	LocationController *location.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	AuthConfig auth.Config
	// Logger is the application logger; nil means discard
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite");
	// empty defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required for "redis")
	RedisConfig *redisstorage.Config
	// SQLiteConfig holds SQLite settings (required for "sqlite")
	SQLiteConfig *sqlitestorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case StorageTypeSQLite:
		if cfg.SQLiteConfig == nil {
			return nil, errors.New("SQLiteConfig required when StorageType is sqlite")
		}
		sqliteStore, err := sqlitestorage.New(*cfg.SQLiteConfig)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'sqlite'")
	}

	clk := clock.New()
	rnd := random.New()

	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return NewWithDependencies(store, clk, rnd, authCfg, logger), nil
}

// NewWithDependencies creates an App with the given dependencies. Tests use
// this to inject mock clocks and scripted randomness.
func NewWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, logger *slog.Logger) *App {
	authService := auth.New(store, clk, authCfg, logger)
	playerController := player.NewController(store, clk, rnd, logger)
	lobbyController := lobby.NewController(store, clk, logger)
	locationController := location.NewController(store, clk, logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		AuthService:        authService,
		PlayerController:   playerController,
		LobbyController:    lobbyController,
		LocationController: locationController,
	}
}
