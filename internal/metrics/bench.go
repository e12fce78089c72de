package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	cellAvgInstrument    = "cell_avg_microseconds"
	cellCyclesInstrument = "cell_approx_cycles"
)

// BenchMetrics records campaign operations and per-cell measurements.
type BenchMetrics interface {
	// RecordOperation records an operation with its status.
	// Domain examples: "bench", "results"
	// Operation examples: "campaign_run", "cell", "results_store"
	// Status examples: "success", "error"
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration records the wall-clock duration of an operation in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordCell records one measured cell: its average per-operation latency in
	// microseconds and its cycle estimate.
	RecordCell(ctx context.Context, algorithm, direction string, messageLen int, avgMicros float64, approxCycles uint64)
}

// benchMetrics implements BenchMetrics using OpenTelemetry metrics.
type benchMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
	cellAvgHisto     metric.Float64Histogram
	cellCyclesGauge  metric.Int64Gauge
}

// NewBenchMetrics creates a BenchMetrics implementation using the provided meter provider.
// Returns error if meters cannot be initialized.
func NewBenchMetrics(meterProvider metric.MeterProvider, namespace string) (BenchMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of harness operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Wall-clock duration of harness operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	cellAvgHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_%s", namespace, cellAvgInstrument),
		metric.WithDescription("Average per-operation latency of a measurement cell in microseconds"),
		metric.WithUnit("us"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cell latency histogram: %w", err)
	}

	cellCyclesGauge, err := meter.Int64Gauge(
		fmt.Sprintf("%s_%s", namespace, cellCyclesInstrument),
		metric.WithDescription("Approximate cycles per operation of the last measurement of a cell"),
		metric.WithUnit("{cycle}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cell cycles gauge: %w", err)
	}

	return &benchMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
		cellAvgHisto:     cellAvgHisto,
		cellCyclesGauge:  cellCyclesGauge,
	}, nil
}

// RecordOperation increments the operation counter with domain, operation, and status labels.
func (b *benchMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operationCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("domain", domain),
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

// RecordDuration records the operation duration in seconds with domain, operation, and status labels.
func (b *benchMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durationHisto.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("domain", domain),
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

// RecordCell records the cell latency and cycle estimate with algorithm, direction and
// msg_len labels.
func (b *benchMetrics) RecordCell(
	ctx context.Context,
	algorithm, direction string,
	messageLen int,
	avgMicros float64,
	approxCycles uint64,
) {
	attrs := metric.WithAttributes(
		attribute.String("algorithm", algorithm),
		attribute.String("direction", direction),
		attribute.Int("msg_len", messageLen),
	)
	b.cellAvgHisto.Record(ctx, avgMicros, attrs)
	b.cellCyclesGauge.Record(ctx, int64(approxCycles), attrs) //nolint:gosec // cycle estimates fit int64
}

// NoOpBenchMetrics is a no-op implementation of BenchMetrics for when metrics are disabled.
type NoOpBenchMetrics struct{}

// NewNoOpBenchMetrics creates a no-op BenchMetrics implementation.
func NewNoOpBenchMetrics() BenchMetrics {
	return &NoOpBenchMetrics{}
}

// RecordOperation does nothing when metrics are disabled.
func (n *NoOpBenchMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	// No-op
}

// RecordDuration does nothing when metrics are disabled.
func (n *NoOpBenchMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	// No-op
}

// RecordCell does nothing when metrics are disabled.
func (n *NoOpBenchMetrics) RecordCell(
	ctx context.Context,
	algorithm, direction string,
	messageLen int,
	avgMicros float64,
	approxCycles uint64,
) {
	// No-op
}
