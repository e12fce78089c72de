package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/aeadbench/internal/errors"
	"github.com/allisson/aeadbench/internal/report"
	resultsDomain "github.com/allisson/aeadbench/internal/results/domain"
	"github.com/allisson/aeadbench/internal/results/http/dto"
	resultsUsecase "github.com/allisson/aeadbench/internal/results/usecase"
)

// RunShowRun prints a stored run. An empty runID or "latest" selects the most recent run.
// The text format is the CSV report preceded by a '#' comment line, so its output can be
// fed back to summarize.
func RunShowRun(
	ctx context.Context,
	resultUseCase resultsUsecase.ResultUseCase,
	writer io.Writer,
	runID string,
	format string,
) error {
	stored, err := loadRun(ctx, resultUseCase, runID)
	if err != nil {
		return err
	}

	if format == "json" {
		return writeJSON(writer, dto.MapRunWithRecordsToResponse(stored))
	}
	return outputRunText(writer, stored)
}

// RunListRuns prints a page of stored run headers, newest first.
func RunListRuns(
	ctx context.Context,
	resultUseCase resultsUsecase.ResultUseCase,
	writer io.Writer,
	offset, limit int,
	format string,
) error {
	if offset < 0 || limit < 1 {
		return errors.Wrap(errors.ErrInvalidInput, "offset must be non-negative and limit positive")
	}

	runs, err := resultUseCase.List(ctx, offset, limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if format == "json" {
		return writeJSON(writer, dto.MapRunsToListResponse(runs))
	}

	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tMODE\tDIRECTION\tREPS\tFAILURES\tSTARTED AT")
	for _, run := range runs {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			run.ID, run.Mode, run.Direction, run.Repetitions, run.Failures,
			run.StartedAt.UTC().Format(time.RFC3339))
	}
	return tw.Flush()
}

func loadRun(
	ctx context.Context,
	resultUseCase resultsUsecase.ResultUseCase,
	runID string,
) (*resultsDomain.RunWithRecords, error) {
	runID = strings.TrimSpace(runID)
	if runID == "" || strings.EqualFold(runID, "latest") {
		stored, err := resultUseCase.Latest(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get latest run: %w", err)
		}
		return stored, nil
	}

	id, err := uuid.Parse(runID)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "invalid run id %q", runID)
	}

	stored, err := resultUseCase.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return stored, nil
}

func outputRunText(writer io.Writer, stored *resultsDomain.RunWithRecords) error {
	run := stored.Run
	_, err := fmt.Fprintf(writer, "# run %s mode=%s direction=%s reps=%d cycles_per_us=%g failures=%d started_at=%s\n",
		run.ID, run.Mode, run.Direction, run.Repetitions, run.CyclesPerMicrosecond, run.Failures,
		run.StartedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write run header: %w", err)
	}

	return report.WriteRows(writer, dto.MapRecordsToRows(stored.Records))
}

func writeJSON(writer io.Writer, v any) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
