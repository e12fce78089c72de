package app

import (
	"fmt"

	aeadService "github.com/allisson/aeadbench/internal/aead/service"
	benchService "github.com/allisson/aeadbench/internal/bench/service"
	benchUsecase "github.com/allisson/aeadbench/internal/bench/usecase"
	"github.com/allisson/aeadbench/internal/config"
)

// AdapterManager returns the manager that binds keys to algorithm adapters.
func (c *Container) AdapterManager() aeadService.AdapterManager {
	c.adapterManagerInit.Do(func() {
		c.adapterManager = aeadService.NewAdapterManager()
	})
	return c.adapterManager
}

// Clock returns the 32-bit microsecond clock used by the timer.
func (c *Container) Clock() benchService.Clock {
	c.clockInit.Do(func() {
		c.clock = benchService.NewMonotonicClock()
	})
	return c.clock
}

// PowerManager returns the single-shot power-down strategy selected by BENCH_POWER_HALT.
func (c *Container) PowerManager() (benchService.PowerManager, error) {
	var err error
	c.powerManagerInit.Do(func() {
		c.powerManager, err = c.initPowerManager()
		if err != nil {
			c.setInitError("powerManager", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("powerManager"); storedErr != nil {
		return nil, storedErr
	}
	return c.powerManager, nil
}

// CampaignUseCase returns the campaign driver, wrapped with metrics when enabled.
func (c *Container) CampaignUseCase() (benchUsecase.CampaignUseCase, error) {
	var err error
	c.campaignInit.Do(func() {
		c.campaignUseCase, err = c.initCampaignUseCase()
		if err != nil {
			c.setInitError("campaignUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("campaignUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.campaignUseCase, nil
}

// SingleShotUseCase returns the single-shot power profile driver.
func (c *Container) SingleShotUseCase() (benchUsecase.SingleShotUseCase, error) {
	var err error
	c.singleShotInit.Do(func() {
		c.singleShotUseCase, err = c.initSingleShotUseCase()
		if err != nil {
			c.setInitError("singleShotUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("singleShotUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.singleShotUseCase, nil
}

func (c *Container) initPowerManager() (benchService.PowerManager, error) {
	switch c.config.BenchPowerHalt {
	case config.PowerHaltIdle, "":
		return benchService.NewIdleHalter(c.Logger()), nil
	case config.PowerHaltNone:
		return benchService.NewNoopHalter(), nil
	default:
		return nil, fmt.Errorf("unsupported power halt strategy: %s", c.config.BenchPowerHalt)
	}
}

func (c *Container) initCampaignUseCase() (benchUsecase.CampaignUseCase, error) {
	baseUseCase := benchUsecase.NewCampaignUseCase(
		c.AdapterManager(),
		c.Clock(),
		c.config.BenchQuiesce,
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		benchMetrics, err := c.BenchMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get bench metrics for campaign use case: %w", err)
		}
		return benchUsecase.NewCampaignUseCaseWithMetrics(baseUseCase, benchMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initSingleShotUseCase() (benchUsecase.SingleShotUseCase, error) {
	campaignUseCase, err := c.CampaignUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign use case for single-shot use case: %w", err)
	}

	powerManager, err := c.PowerManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get power manager for single-shot use case: %w", err)
	}

	return benchUsecase.NewSingleShotUseCase(campaignUseCase, powerManager), nil
}
