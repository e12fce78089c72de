package usecase

import (
	"context"
	"fmt"
	"io"

	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
	benchService "github.com/allisson/aeadbench/internal/bench/service"
)

// singleShotUseCase implements SingleShotUseCase.
type singleShotUseCase struct {
	campaign CampaignUseCase
	power    benchService.PowerManager
}

// NewSingleShotUseCase creates a new SingleShotUseCase.
func NewSingleShotUseCase(campaign CampaignUseCase, power benchService.PowerManager) SingleShotUseCase {
	return &singleShotUseCase{
		campaign: campaign,
		power:    power,
	}
}

// Run emits the trigger marker, runs the single-algorithm plan and powers down. Nothing is
// written to trigger after the marker, so the instrument sees only the measured work.
func (s *singleShotUseCase) Run(
	ctx context.Context,
	plan benchDomain.Plan,
	trigger io.Writer,
) (*benchDomain.Campaign, error) {
	plan.Mode = benchDomain.ModeSingleShotPowerProfile
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	if _, err := fmt.Fprintln(trigger, benchDomain.TriggerMarker); err != nil {
		return nil, fmt.Errorf("failed to write trigger marker: %w", err)
	}

	campaign, err := s.campaign.Run(ctx, plan)
	if err != nil {
		return campaign, err
	}

	if err := s.power.PowerDown(ctx); err != nil {
		return campaign, fmt.Errorf("failed to power down: %w", err)
	}

	return campaign, nil
}
