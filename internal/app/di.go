// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	aeadService "github.com/allisson/aeadbench/internal/aead/service"
	benchService "github.com/allisson/aeadbench/internal/bench/service"
	benchUsecase "github.com/allisson/aeadbench/internal/bench/usecase"
	"github.com/allisson/aeadbench/internal/config"
	"github.com/allisson/aeadbench/internal/database"
	"github.com/allisson/aeadbench/internal/http"
	"github.com/allisson/aeadbench/internal/metrics"
	resultsHTTP "github.com/allisson/aeadbench/internal/results/http"
	resultsUsecase "github.com/allisson/aeadbench/internal/results/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	metricsProvider *metrics.Provider
	benchMetrics    metrics.BenchMetrics
	latestCampaign  *http.LatestCampaign
	metricsServer   *http.MetricsServer

	// Managers
	txManager database.TxManager

	// Bench components
	adapterManager    aeadService.AdapterManager
	clock             benchService.Clock
	powerManager      benchService.PowerManager
	campaignUseCase   benchUsecase.CampaignUseCase
	singleShotUseCase benchUsecase.SingleShotUseCase

	// Results components
	benchmarkRepo resultsUsecase.BenchmarkRepository
	resultUseCase resultsUsecase.ResultUseCase
	runHandler    *resultsHTTP.RunHandler

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	txManagerInit       sync.Once
	metricsProviderInit sync.Once
	benchMetricsInit    sync.Once
	latestCampaignInit  sync.Once
	metricsServerInit   sync.Once
	adapterManagerInit  sync.Once
	clockInit           sync.Once
	powerManagerInit    sync.Once
	campaignInit        sync.Once
	singleShotInit      sync.Once
	benchmarkRepoInit   sync.Once
	resultUseCaseInit   sync.Once
	runHandlerInit      sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It writes JSON to stderr so that stdout stays reserved for the report stream.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.setInitError("db", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("db"); storedErr != nil {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.setInitError("txManager", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("txManager"); storedErr != nil {
		return nil, storedErr
	}
	return c.txManager, nil
}

// MetricsProvider returns the OpenTelemetry metrics provider, or nil when metrics are
// disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.setInitError("metricsProvider", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("metricsProvider"); storedErr != nil {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BenchMetrics returns the bench metrics recorder. It is a no-op when metrics are disabled.
func (c *Container) BenchMetrics() (metrics.BenchMetrics, error) {
	var err error
	c.benchMetricsInit.Do(func() {
		c.benchMetrics, err = c.initBenchMetrics()
		if err != nil {
			c.setInitError("benchMetrics", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("benchMetrics"); storedErr != nil {
		return nil, storedErr
	}
	return c.benchMetrics, nil
}

// LatestCampaign returns the holder served on /campaigns/latest.
func (c *Container) LatestCampaign() *http.LatestCampaign {
	c.latestCampaignInit.Do(func() {
		c.latestCampaign = http.NewLatestCampaign()
	})
	return c.latestCampaign
}

// MetricsServer returns the metrics HTTP server.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.setInitError("metricsServer", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("metricsServer"); storedErr != nil {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

func (c *Container) setInitError(name string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initErrors[name] = err
}

func (c *Container) initError(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(context.Background(), database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

// initMetricsProvider creates the provider when metrics are enabled.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBenchMetrics creates the bench metrics recorder, or the no-op recorder when metrics
// are disabled.
func (c *Container) initBenchMetrics() (metrics.BenchMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for bench metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBenchMetrics(), nil
	}

	benchMetrics, err := metrics.NewBenchMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create bench metrics: %w", err)
	}
	return benchMetrics, nil
}

// initMetricsServer creates the metrics server. /metrics is only served when metrics are
// enabled and /runs only when the results store is.
func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}

	var registrars []http.RouteRegistrar
	if c.config.ResultsStoreEnabled {
		runHandler, err := c.RunHandler()
		if err != nil {
			return nil, fmt.Errorf("failed to get run handler for metrics server: %w", err)
		}
		registrars = append(registrars, runHandler)
	}

	return http.NewMetricsServer(
		c.config.MetricsHost,
		c.config.MetricsPort,
		c.Logger(),
		provider,
		c.config.MetricsNamespace,
		c.LatestCampaign(),
		http.ServerOptions{
			CORSEnabled:             c.config.CORSEnabled,
			CORSAllowOrigins:        c.config.CORSAllowOrigins,
			RateLimitEnabled:        c.config.RateLimitEnabled,
			RateLimitRequestsPerSec: c.config.RateLimitRequestsPerSec,
			RateLimitBurst:          c.config.RateLimitBurst,
		},
		registrars...,
	), nil
}
