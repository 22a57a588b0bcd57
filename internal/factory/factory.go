package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/SK1028846/fantasy-football-pipeline/internal/dependencies/clock"
	"github.com/SK1028846/fantasy-football-pipeline/internal/dependencies/ident"
	"github.com/SK1028846/fantasy-football-pipeline/internal/model"
	"github.com/SK1028846/fantasy-football-pipeline/internal/services/auth"
	"github.com/SK1028846/fantasy-football-pipeline/internal/services/grading"
	"github.com/SK1028846/fantasy-football-pipeline/internal/services/trade"
	"github.com/SK1028846/fantasy-football-pipeline/internal/storage"
	"github.com/SK1028846/fantasy-football-pipeline/internal/storage/memory"
	postgresstorage "github.com/SK1028846/fantasy-football-pipeline/internal/storage/postgres"
	redisstorage "github.com/SK1028846/fantasy-football-pipeline/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypeRedis    = "redis"
	StorageTypePostgres = "postgres"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock
	Ident ident.Generator

	// Services
	Grader       grading.Grader
	AuthService  *auth.Service
	TradeService *trade.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "postgres")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// PostgresConfig holds Postgres connection settings (required if StorageType is "postgres")
	PostgresConfig *postgresstorage.Config
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// DefaultGrade is the grade the static grader assigns (optional)
	// If empty, defaults to grading.DefaultGrade
	DefaultGrade model.Grade
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
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
	case StorageTypePostgres:
		if cfg.PostgresConfig == nil {
			return nil, errors.New("PostgresConfig required when StorageType is postgres")
		}
		pgStore, err := postgresstorage.New(context.Background(), *cfg.PostgresConfig)
		if err != nil {
			return nil, err
		}
		store = pgStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'postgres'")
	}

	// Create external dependencies
	clk := clock.New()
	gen := ident.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	grader := grading.NewStaticGrader(cfg.DefaultGrade)

	return newWithDependencies(store, clk, gen, grader, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, gen ident.Generator, grader grading.Grader, authCfg auth.Config, logger *slog.Logger) *App {
	authService := auth.New(store, clk, gen, authCfg)
	tradeService := trade.New(store, grader, clk, gen, logger)

	return &App{
		Storage:      store,
		Clock:        clk,
		Ident:        gen,
		Grader:       grader,
		AuthService:  authService,
		TradeService: tradeService,
	}
}
