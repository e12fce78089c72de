package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
	benchService "github.com/allisson/aeadbench/internal/bench/service"
	benchUsecase "github.com/allisson/aeadbench/internal/bench/usecase"
)

// RunSingleShot runs a single-algorithm power profile. The trigger marker is the only
// thing written to writer; the outcome is logged once the power-down state is released.
func RunSingleShot(
	ctx context.Context,
	singleShotUseCase benchUsecase.SingleShotUseCase,
	logger *slog.Logger,
	writer io.Writer,
	plan benchDomain.Plan,
) error {
	campaign, err := singleShotUseCase.Run(ctx, plan, writer)
	if err != nil {
		return fmt.Errorf("single-shot run failed: %w", err)
	}

	for _, r := range campaign.Results {
		logger.Info("single-shot cell",
			slog.String("algo", r.Token()),
			slog.Int("msg_len", r.MessageLen),
			slog.Int("reps", r.Repetitions),
			slog.Uint64("total_us", uint64(r.TotalMicros)),
			slog.Float64("avg_us", r.AvgMicros),
		)
	}

	if err := campaign.Err(); err != nil {
		return fmt.Errorf("single-shot finished with %d failed cell(s): %w", len(campaign.Failures), err)
	}
	return nil
}

// RunBaseline writes the trigger marker and enters the power-down state without running
// any cell, giving the instrument an idle reference trace.
func RunBaseline(
	ctx context.Context,
	power benchService.PowerManager,
	logger *slog.Logger,
	writer io.Writer,
) error {
	if _, err := fmt.Fprintln(writer, benchDomain.TriggerMarker); err != nil {
		return fmt.Errorf("failed to write trigger marker: %w", err)
	}

	if err := power.PowerDown(ctx); err != nil {
		return fmt.Errorf("failed to power down: %w", err)
	}

	logger.Info("baseline completed")
	return nil
}
