package app

import (
	"fmt"

	resultsHTTP "github.com/allisson/aeadbench/internal/results/http"
	resultsRepository "github.com/allisson/aeadbench/internal/results/repository"
	resultsUsecase "github.com/allisson/aeadbench/internal/results/usecase"
)

// BenchmarkRepository returns the results repository for the configured driver.
func (c *Container) BenchmarkRepository() (resultsUsecase.BenchmarkRepository, error) {
	var err error
	c.benchmarkRepoInit.Do(func() {
		c.benchmarkRepo, err = c.initBenchmarkRepository()
		if err != nil {
			c.setInitError("benchmarkRepo", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("benchmarkRepo"); storedErr != nil {
		return nil, storedErr
	}
	return c.benchmarkRepo, nil
}

// ResultUseCase returns the results store use case, wrapped with metrics when enabled.
func (c *Container) ResultUseCase() (resultsUsecase.ResultUseCase, error) {
	var err error
	c.resultUseCaseInit.Do(func() {
		c.resultUseCase, err = c.initResultUseCase()
		if err != nil {
			c.setInitError("resultUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("resultUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.resultUseCase, nil
}

// RunHandler returns the stored runs API handler.
func (c *Container) RunHandler() (*resultsHTTP.RunHandler, error) {
	var err error
	c.runHandlerInit.Do(func() {
		c.runHandler, err = c.initRunHandler()
		if err != nil {
			c.setInitError("runHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("runHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.runHandler, nil
}

func (c *Container) initBenchmarkRepository() (resultsUsecase.BenchmarkRepository, error) {
	// Check the driver first so a bad DB_DRIVER does not open a connection.
	switch c.config.DBDriver {
	case "mysql", "postgres":
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for benchmark repository: %w", err)
	}

	if c.config.DBDriver == "mysql" {
		return resultsRepository.NewMySQLBenchmarkRepository(db), nil
	}
	return resultsRepository.NewPostgreSQLBenchmarkRepository(db), nil
}

func (c *Container) initResultUseCase() (resultsUsecase.ResultUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for result use case: %w", err)
	}

	repo, err := c.BenchmarkRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get benchmark repository for result use case: %w", err)
	}

	baseUseCase := resultsUsecase.NewResultUseCase(txManager, repo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		benchMetrics, err := c.BenchMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get bench metrics for result use case: %w", err)
		}
		return resultsUsecase.NewResultUseCaseWithMetrics(baseUseCase, benchMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initRunHandler() (*resultsHTTP.RunHandler, error) {
	resultUseCase, err := c.ResultUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get result use case for run handler: %w", err)
	}
	return resultsHTTP.NewRunHandler(resultUseCase, c.Logger()), nil
}
