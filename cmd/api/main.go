// Package main is the entry point for the MoneyTrail API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/moneytrail/backend/config"
	"github.com/moneytrail/backend/internal/application/usecase/auth"
	"github.com/moneytrail/backend/internal/infra/db"
	"github.com/moneytrail/backend/internal/infra/dependency"
	"github.com/moneytrail/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting MoneyTrail API",
		"environment", cfg.Server.Environment,
		"driver", cfg.Database.Driver,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.SettingsModel{},
		&model.TagCategoryModel{},
		&model.InvestmentGoalModel{},
		&model.AlertJobModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize Redis. The API keeps serving while Redis is down: snapshots
	// are recomputed on every request and refresh tokens stop validating
	// until it comes back.
	redisClient := newRedisClient(&cfg.Redis)
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		slog.Warn("Redis unavailable", "error", err)
	}
	cancelPing()
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}()

	// Wire dependencies
	injector, err := dependency.NewInjector(cfg, database.DB(), redisClient)
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	// Keep the stored passphrase hash in sync with the configured value
	if cfg.Auth.Passphrase != "" {
		bootCtx, cancelBoot := context.WithTimeout(context.Background(), 10*time.Second)
		output, err := injector.SetPassphraseUseCase.Execute(bootCtx, auth.SetPassphraseInput{
			Passphrase: cfg.Auth.Passphrase,
		})
		cancelBoot()
		if err != nil {
			slog.Error("Failed to store unlock passphrase", "error", err)
			os.Exit(1)
		}
		if output.Updated {
			slog.Info("Unlock passphrase hash updated")
		}
	} else {
		slog.Warn("UNLOCK_PASSPHRASE is not set; unlock requests will be rejected until it is configured")
	}

	// Start the alert pipeline
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	go injector.AlertTrigger.Start(workerCtx)
	// Catch budgets that crossed their threshold while the server was down
	injector.AlertTrigger.Kick()

	if cfg.Email.WorkerEnabled {
		go injector.AlertWorker.Start(workerCtx)
		slog.Info("Alert worker started",
			"poll_interval", cfg.Email.PollInterval,
			"batch_size", cfg.Email.BatchSize,
		)
	}

	// Setup router
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// newRedisClient builds a client from the configured URL. Password and DB
// settings override whatever the URL carries.
func newRedisClient(cfg *config.RedisConfig) *redis.Client {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		slog.Warn("Invalid REDIS_URL, falling back to localhost", "error", err)
		opts = &redis.Options{Addr: "localhost:6379"}
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}
	return redis.NewClient(opts)
}
