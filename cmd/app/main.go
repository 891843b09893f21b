package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"parkreg/internal/config"
	"parkreg/internal/db"
	"parkreg/internal/logger"
	"parkreg/internal/server"
)

// @title parkreg API
// @version 1.0
// @description Vehicle entry/exit register with tiered fees and monthly subscriptions.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init()
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Info("Starting parkreg", "env", cfg.Env, "port", cfg.Port)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if cfg.MigrationsEnabled {
		if err := db.RunMigrations(database); err != nil {
			logger.Fatalf("Failed to run migrations: %v", err)
		}
		logger.Info("Migrations completed")
	}

	rdb := connectCache(cfg.RedisAddr)
	if rdb != nil {
		defer rdb.Close()
	}

	var cache redis.Cmdable
	if rdb != nil {
		cache = rdb
	}

	srv, err := server.New(database, cache, cfg)
	if err != nil {
		logger.Fatal("Failed to build server", "error", err)
	}

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- srv.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		if err != nil {
			logger.Errorf("Server error: %v", err)
		}
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

// connectCache returns nil when Redis is not configured or not reachable;
// tickets are then rendered on every request.
func connectCache(addr string) *redis.Client {
	if addr == "" {
		logger.Info("Ticket cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unavailable, ticket cache disabled", "addr", addr, "error", err)
		_ = rdb.Close()
		return nil
	}

	logger.Info("Ticket cache connected", "addr", addr)
	return rdb
}
