package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"meetingroom/internal/config"
	"meetingroom/internal/db"
	"meetingroom/internal/logger"
	"meetingroom/internal/reservation"
	"meetingroom/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.LogLevel)
	logger.Info("Starting meeting room reservation service", "storage", cfg.StorageDriver)

	var repo reservation.Repository
	var database *sqlx.DB

	switch cfg.StorageDriver {
	case config.StorageMemory:
		repo = reservation.NewMemoryRepository()
		logger.Warn("Using in-memory reservation storage; data is not persisted")
	default:
		logger.Info("Connecting to database...")
		database, err = db.Connect(cfg.DatabaseURL)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		logger.Info("Database connected")

		if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
			logger.Fatalf("Failed to run migrations: %v", err)
		}
		logger.Info("Migrations completed")

		repo = reservation.NewRepository(database)
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		repo = reservation.NewCachedRepository(repo, redisClient, cfg.CacheTTL)
		logger.Info("Room count cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL.String())
	}

	srv := server.New(repo, cfg)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Errorf("Error closing redis client: %v", err)
		}
	}

	if database != nil {
		if err := database.Close(); err != nil {
			logger.Errorf("Error closing database: %v", err)
		}
	}

	logger.Info("Server stopped")
}
