package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
	"github.com/allisson/aeadbench/internal/metrics"
	resultsDomain "github.com/allisson/aeadbench/internal/results/domain"
)

// resultUseCaseWithMetrics decorates ResultUseCase with metrics instrumentation.
type resultUseCaseWithMetrics struct {
	next    ResultUseCase
	metrics metrics.BenchMetrics
}

// NewResultUseCaseWithMetrics wraps a ResultUseCase with metrics recording.
func NewResultUseCaseWithMetrics(useCase ResultUseCase, m metrics.BenchMetrics) ResultUseCase {
	return &resultUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Store records metrics for storing a campaign.
func (r *resultUseCaseWithMetrics) Store(
	ctx context.Context,
	campaign *benchDomain.Campaign,
) (*resultsDomain.RunWithRecords, error) {
	start := time.Now()
	stored, err := r.next.Store(ctx, campaign)
	r.record(ctx, "results_store", start, err)
	return stored, err
}

// Get records metrics for reading a stored run.
func (r *resultUseCaseWithMetrics) Get(
	ctx context.Context,
	runID uuid.UUID,
) (*resultsDomain.RunWithRecords, error) {
	start := time.Now()
	stored, err := r.next.Get(ctx, runID)
	r.record(ctx, "results_get", start, err)
	return stored, err
}

// Latest records metrics for reading the latest stored run.
func (r *resultUseCaseWithMetrics) Latest(ctx context.Context) (*resultsDomain.RunWithRecords, error) {
	start := time.Now()
	stored, err := r.next.Latest(ctx)
	r.record(ctx, "results_latest", start, err)
	return stored, err
}

// List records metrics for listing stored runs.
func (r *resultUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*resultsDomain.Run, error) {
	start := time.Now()
	runs, err := r.next.List(ctx, offset, limit)
	r.record(ctx, "results_list", start, err)
	return runs, err
}

func (r *resultUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "results", operation, status)
	r.metrics.RecordDuration(ctx, "results", operation, time.Since(start), status)
}
