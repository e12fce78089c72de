// Package usecase drives measurement campaigns over the configured algorithm matrix.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
	aeadService "github.com/allisson/aeadbench/internal/aead/service"
	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
	benchService "github.com/allisson/aeadbench/internal/bench/service"
	"github.com/allisson/aeadbench/internal/workload"
)

// campaignUseCase implements CampaignUseCase.
type campaignUseCase struct {
	adapters aeadService.AdapterManager
	clock    benchService.Clock
	quiesce  bool
	logger   *slog.Logger
}

// NewCampaignUseCase creates a new CampaignUseCase.
func NewCampaignUseCase(
	adapters aeadService.AdapterManager,
	clock benchService.Clock,
	quiesce bool,
	logger *slog.Logger,
) CampaignUseCase {
	return &campaignUseCase{
		adapters: adapters,
		clock:    clock,
		quiesce:  quiesce,
		logger:   logger,
	}
}

// Run measures every cell, size-major within each algorithm.
func (c *campaignUseCase) Run(ctx context.Context, plan benchDomain.Plan) (*benchDomain.Campaign, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	arena, err := workload.NewArena(plan.MaxMessageSize)
	if err != nil {
		return nil, err
	}

	adapters, err := c.configure(plan.Algorithms)
	if err != nil {
		return nil, err
	}
	defer func() {
		for _, adapter := range adapters {
			adapter.Close()
		}
	}()

	campaign := benchDomain.NewCampaign(plan, time.Now().UTC())
	timer := benchService.NewTimer(
		c.clock,
		benchService.NewVerificationSink(),
		plan.CyclesPerMicrosecond,
		c.quiesce,
	)

	for _, adapter := range adapters {
		if err := c.runAlgorithm(ctx, campaign, arena, timer, adapter); err != nil {
			campaign.CompletedAt = time.Now().UTC()
			return campaign, err
		}
	}

	campaign.CompletedAt = time.Now().UTC()
	return campaign, nil
}

// configure binds the reference key to one fresh adapter per algorithm. Key setup happens
// here, before any timed region.
func (c *campaignUseCase) configure(algs []aeadDomain.Algorithm) ([]aeadService.Adapter, error) {
	adapters := make([]aeadService.Adapter, 0, len(algs))

	for _, alg := range algs {
		params, err := aeadDomain.Lookup(alg)
		if err == nil {
			key := workload.Generate(workload.Key, params.KeyLen)
			var adapter aeadService.Adapter
			adapter, err = c.adapters.Configure(alg, key)
			aeadDomain.Zero(key)
			if err == nil {
				adapters = append(adapters, adapter)
				continue
			}
		}

		for _, adapter := range adapters {
			adapter.Close()
		}
		return nil, fmt.Errorf("failed to configure %s: %w", alg, err)
	}

	return adapters, nil
}

// runAlgorithm measures one algorithm's sizes in plan order. A cell failure is recorded
// and ends the algorithm; only context cancellation is returned.
func (c *campaignUseCase) runAlgorithm(
	ctx context.Context,
	campaign *benchDomain.Campaign,
	arena *workload.Arena,
	timer *benchService.Timer,
	adapter aeadService.Adapter,
) error {
	plan := campaign.Plan
	params := adapter.Params()

	for _, size := range plan.Sizes {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := c.runCell(arena, timer, adapter, size, plan)
		if err != nil {
			campaign.Failures = append(campaign.Failures, benchDomain.CellFailure{
				Algorithm:  params.Algorithm,
				MessageLen: size,
				Err:        err,
			})
			c.logger.Warn("cell aborted, skipping remaining sizes",
				slog.String("algorithm", string(params.Algorithm)),
				slog.Int("msg_len", size),
				slog.Any("error", err),
			)
			return nil
		}

		campaign.Results = append(campaign.Results, result)
		c.logger.Debug("cell measured",
			slog.String("token", result.Token()),
			slog.Int("msg_len", result.MessageLen),
			slog.Uint64("total_us", uint64(result.TotalMicros)),
			slog.Float64("avg_us", result.AvgMicros),
		)
	}

	return nil
}

func (c *campaignUseCase) runCell(
	arena *workload.Arena,
	timer *benchService.Timer,
	adapter aeadService.Adapter,
	size int,
	plan benchDomain.Plan,
) (benchDomain.MeasurementResult, error) {
	w, err := arena.Prepare(adapter.Params(), size, plan.Direction)
	if err != nil {
		return benchDomain.MeasurementResult{}, err
	}
	return timer.Measure(adapter, w, plan.Repetitions, plan.Direction)
}
