package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/SK1028846/fantasy-football-pipeline/internal/api"
	"github.com/SK1028846/fantasy-football-pipeline/internal/factory"
	"github.com/SK1028846/fantasy-football-pipeline/internal/model"
	postgresstorage "github.com/SK1028846/fantasy-football-pipeline/internal/storage/postgres"
	redisstorage "github.com/SK1028846/fantasy-football-pipeline/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:       logger,
		StorageType:  os.Getenv("STORAGE_TYPE"),
		DefaultGrade: model.Grade(os.Getenv("DEFAULT_GRADE")),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Configure Postgres if storage type is postgres
	if cfg.StorageType == factory.StorageTypePostgres {
		databaseURL := os.Getenv("DATABASE_URL")
		if databaseURL == "" {
			logger.Error("DATABASE_URL required when STORAGE_TYPE=postgres")
			os.Exit(1)
		}
		cfg.PostgresConfig = &postgresstorage.Config{URL: databaseURL}
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:       logger,
		AuthService:  app.AuthService,
		TradeService: app.TradeService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			logger.Error("invalid PORT", slog.String("value", portStr))
			os.Exit(1)
		}
		serverConfig.Port = port
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
