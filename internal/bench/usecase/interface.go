package usecase

import (
	"context"
	"io"

	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
)

// CampaignUseCase runs the {algorithm x message size} matrix.
type CampaignUseCase interface {
	// Run validates plan, configures one adapter per algorithm and measures every cell in
	// matrix order. A configuration error aborts before any timing. A faulting cell is
	// recorded in Campaign.Failures and the rest of that algorithm's sizes are skipped;
	// the returned campaign still carries every completed cell.
	Run(ctx context.Context, plan benchDomain.Plan) (*benchDomain.Campaign, error)
}

// SingleShotUseCase runs an isolated measurement for an external power instrument.
type SingleShotUseCase interface {
	// Run writes the trigger marker to trigger, measures the plan's cells and enters the
	// power-down state before returning.
	Run(ctx context.Context, plan benchDomain.Plan, trigger io.Writer) (*benchDomain.Campaign, error)
}
