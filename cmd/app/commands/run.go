package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
	benchUsecase "github.com/allisson/aeadbench/internal/bench/usecase"
	"github.com/allisson/aeadbench/internal/http"
	"github.com/allisson/aeadbench/internal/report"
	resultsUsecase "github.com/allisson/aeadbench/internal/results/usecase"
)

// RunCampaign measures plan and writes the report to writer in format ("csv" or "json").
//
// store and latest are optional. When store is set the campaign is persisted after the
// report is written; when latest is set the metrics server can serve the campaign. A
// campaign interrupted by ctx still reports and stores the cells it finished, and the
// interruption is returned. Cell failures are returned after the report is written.
func RunCampaign(
	ctx context.Context,
	campaignUseCase benchUsecase.CampaignUseCase,
	store resultsUsecase.ResultUseCase,
	latest *http.LatestCampaign,
	logger *slog.Logger,
	writer io.Writer,
	plan benchDomain.Plan,
	format string,
) error {
	reportWriter, err := report.NewWriter(format, writer)
	if err != nil {
		return fmt.Errorf("invalid format %q: %w", format, err)
	}

	logger.Info("starting campaign",
		slog.String("algorithms", joinAlgorithms(plan)),
		slog.Any("sizes", plan.Sizes),
		slog.Int("repetitions", plan.Repetitions),
		slog.String("direction", string(plan.Direction)),
	)

	campaign, runErr := campaignUseCase.Run(ctx, plan)
	if campaign == nil {
		return fmt.Errorf("failed to run campaign: %w", runErr)
	}

	if latest != nil {
		latest.Set(campaign)
	}

	if err := reportWriter.Write(campaign); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if store != nil && len(campaign.Results) > 0 {
		stored, err := store.Store(context.WithoutCancel(ctx), campaign)
		if err != nil {
			return fmt.Errorf("failed to store campaign: %w", err)
		}
		logger.Info("campaign stored",
			slog.String("run_id", stored.Run.ID.String()),
			slog.Int("records", len(stored.Records)),
		)
	}

	logger.Info("campaign completed",
		slog.String("id", campaign.ID.String()),
		slog.Int("results", len(campaign.Results)),
		slog.Int("failures", len(campaign.Failures)),
	)

	if runErr != nil {
		return fmt.Errorf("campaign interrupted: %w", runErr)
	}
	if err := campaign.Err(); err != nil {
		return fmt.Errorf("campaign finished with %d failed cell(s): %w", len(campaign.Failures), err)
	}
	return nil
}

func joinAlgorithms(plan benchDomain.Plan) string {
	names := make([]string, len(plan.Algorithms))
	for i, alg := range plan.Algorithms {
		names[i] = string(alg)
	}
	return strings.Join(names, ",")
}
