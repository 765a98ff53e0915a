package main

import (
	_ "bank-services/docs"
	"bank-services/internal/api"
	"bank-services/internal/auth"
	"bank-services/internal/batch"
	"bank-services/internal/config"
	"bank-services/internal/domain/homeloan"
	"bank-services/internal/domain/savingsaccount"
	"bank-services/internal/event"
	"bank-services/internal/infrastructure/database/memory"
	"bank-services/internal/infrastructure/database/postgres"
	"bank-services/internal/infrastructure/logging"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// @title Bank Services API
// @version 1.0
// @description Home loan and savings bank account management.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, logger := initializeApp()

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	repos, err := initializeStorage(appCtx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer repos.Close()

	pub, amqpConn := initializePublisher(cfg, logger)
	if amqpConn != nil {
		defer amqpConn.Close()
	}

	redisClient := initializeRedis(cfg, logger)
	if redisClient != nil {
		defer redisClient.Close()
	}

	users, err := auth.NewDirectory(cfg.Server.Auth.Users)
	if err != nil {
		logger.Error("Failed to load user directory", "error", err)
		os.Exit(1)
	}

	deps := api.Dependencies{
		HomeLoans:       homeloan.NewHomeLoanService(repos.HomeLoans, nil, pub, logger),
		SavingsAccounts: savingsaccount.NewSavingsAccountService(repos.SavingsAccounts, nil, pub, logger),
		Users:           users,
		Tokens:          auth.NewTokenManager(cfg.Server.Auth),
		Redis:           redisClient,
	}

	inventoryJob := batch.NewInventoryJob(map[string]batch.Counter{
		homeloan.ResourceName:       repos.HomeLoans,
		savingsaccount.ResourceName: repos.SavingsAccounts,
	}, logger)

	cronScheduler := startBatchJobs(cfg, logger, inventoryJob)
	router := api.SetupRouter(appCtx, deps, cfg, logger)

	srv, serverErrors, shutdownChan := startServer(cfg, router, logger)
	handleShutdown(srv, cronScheduler, shutdownChan, serverErrors, logger)
}

func initializeApp() (*config.Config, *slog.Logger) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Logger)
	slog.SetDefault(logger)
	logger.Info("Application starting...", "config_source", viper.ConfigFileUsed())

	return cfg, logger
}

// repositories holds the stores of both verticals and releases whatever
// backs them.
type repositories struct {
	HomeLoans       homeloan.Repository
	SavingsAccounts savingsaccount.Repository
	close           func()
}

func (r repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

func initializeStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories, error) {
	switch cfg.Storage.Driver {
	case "", config.StorageDriverMemory:
		logger.Info("Using in-memory storage", "seed", cfg.Storage.Seed)
		return repositories{
			HomeLoans:       memory.NewHomeLoanRepository(cfg.Storage.Seed),
			SavingsAccounts: memory.NewSavingsAccountRepository(cfg.Storage.Seed),
		}, nil

	case config.StorageDriverPostgres:
		logger.Info("Initializing database connection pool...")
		dbPool, err := postgres.NewConnectionPool(ctx, cfg.Database, logger)
		if err != nil {
			return repositories{}, err
		}
		if err := postgres.EnsureSchema(ctx, dbPool, logger); err != nil {
			dbPool.Close()
			return repositories{}, err
		}
		return repositories{
			HomeLoans:       postgres.NewHomeLoanRepository(dbPool, logger),
			SavingsAccounts: postgres.NewSavingsAccountRepository(dbPool, logger),
			close: func() {
				logger.Info("Closing database connection pool...")
				dbPool.Close()
			},
		}, nil

	default:
		return repositories{}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// initializePublisher returns a nil Publisher when events are disabled or the
// broker is unreachable; records are still stored in that case.
func initializePublisher(cfg *config.Config, logger *slog.Logger) (event.Publisher, *amqp.Connection) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("RabbitMQ publishing is disabled via configuration.")
		return nil, nil
	}

	conn, err := event.DialRabbitMQ(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.Username, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Error("Failed to connect to RabbitMQ, record events will not be published", "error", err)
		return nil, nil
	}

	pub, err := event.NewRabbitMQEventPublisher(conn, cfg.RabbitMQ.ExchangeName, logger)
	if err != nil {
		logger.Error("Failed to set up RabbitMQ publisher, record events will not be published", "error", err)
		conn.Close()
		return nil, nil
	}
	return pub, conn
}

func initializeRedis(cfg *config.Config, logger *slog.Logger) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis, falling back to in-memory rate limiting", "addr", cfg.Redis.Addr, "error", err)
		client.Close()
		return nil
	}

	logger.Info("Connected to Redis", "addr", cfg.Redis.Addr)
	return client
}

func startServer(cfg *config.Config, router http.Handler, logger *slog.Logger) (*http.Server, <-chan error, <-chan os.Signal) {
	logger.Info("Setting up HTTP server...", "port", cfg.Server.Port)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Server listening on port %d", cfg.Server.Port))
		err := srv.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			serverErrors <- err
		} else {
			logger.Info("Server closed gracefully.")
			serverErrors <- nil
		}
	}()
	return srv, serverErrors, shutdownChan
}

func handleShutdown(srv *http.Server, cronScheduler *cron.Cron, shutdownChan <-chan os.Signal, serverErrors <-chan error, logger *slog.Logger) {
	logger.Info("Shutdown handler started. Waiting for signal or server error...")

	var triggerReason string
	select {
	case sig := <-shutdownChan:
		triggerReason = "signal: " + sig.String()
		logger.Info("Shutdown signal received.", "signal", sig.String())
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server exited unexpectedly before signal", "error", err)
			os.Exit(1)
		}
		triggerReason = "server exited"
		logger.Info("Server goroutine finished before signal.", "error", err)
	}

	logger.Info("Starting graceful shutdown...", "trigger", triggerReason)

	logger.Info("Stopping cron scheduler...")
	cronCtx := cronScheduler.Stop()
	select {
	case <-cronCtx.Done():
		logger.Info("Cron scheduler stopped gracefully.")
	case <-time.After(15 * time.Second):
		logger.Warn("Cron scheduler shutdown timed out.")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	logger.Info("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", "error", err)
		if err := srv.Close(); err != nil {
			logger.Error("HTTP server forced close failed", "error", err)
		}
	} else {
		logger.Info("HTTP server gracefully stopped.")
	}

	logger.Info("Waiting for server goroutine to confirm exit...")
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("Server goroutine exited with unexpected error after shutdown", "error", err)
		} else {
			logger.Info("Server goroutine confirmed exit.")
		}
	case <-time.After(5 * time.Second):
		logger.Warn("Timed out waiting for server goroutine confirmation.")
	}

	logger.Info("Application shutdown process complete.")
}

func startBatchJobs(cfg *config.Config, logger *slog.Logger, inventoryJob *batch.InventoryJob) *cron.Cron {
	logger.Info("Initializing batch job scheduler...")
	c := cron.New()

	scheduleSpec := cfg.Batch.InventorySchedule
	if scheduleSpec == "" {
		scheduleSpec = "@every 1m"
		logger.Warn("Inventory schedule not configured, using default", "schedule", scheduleSpec)
	}
	jobTimeout := cfg.Batch.InventoryTimeout
	if jobTimeout <= 0 {
		jobTimeout = 30 * time.Second
	}

	jobID, err := c.AddJob(scheduleSpec, cron.FuncJob(func() {
		jobLogger := logger.With("job_name", "Inventory")

		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if runErr := inventoryJob.Run(ctx); runErr != nil {
			jobLogger.Error("Inventory job finished with error", slog.Any("error", runErr))
		}
	}))

	if err != nil {
		logger.Error("Failed to schedule inventory job", "schedule", scheduleSpec, slog.Any("error", err))
	} else {
		logger.Info("Scheduled inventory job", "schedule", scheduleSpec, "job_id", jobID)
	}

	c.Start()
	logger.Info("Cron scheduler started.")
	return c
}

func setupLogger(cfg config.LoggerConfig) *slog.Logger {
	return logging.NewLogger(cfg)
}
