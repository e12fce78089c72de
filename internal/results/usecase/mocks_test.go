package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
	resultsDomain "github.com/allisson/aeadbench/internal/results/domain"
)

// mockTxManager runs fn inline and returns its error unless an error is configured.
type mockTxManager struct {
	mock.Mock
}

func (m *mockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

func (m *mockTxManager) WithReadTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

// readTxManager expects one read snapshot and runs it inline.
func readTxManager(ctx context.Context) *mockTxManager {
	txManager := &mockTxManager{}
	txManager.On("WithReadTx", ctx, mock.Anything).Return(nil).Once()
	return txManager
}

type mockBenchmarkRepository struct {
	mock.Mock
}

func (m *mockBenchmarkRepository) CreateRun(ctx context.Context, run *resultsDomain.Run) error {
	return m.Called(ctx, run).Error(0)
}

func (m *mockBenchmarkRepository) CreateRecord(ctx context.Context, record *resultsDomain.Record) error {
	return m.Called(ctx, record).Error(0)
}

func (m *mockBenchmarkRepository) GetRun(ctx context.Context, runID uuid.UUID) (*resultsDomain.Run, error) {
	args := m.Called(ctx, runID)
	if run := args.Get(0); run != nil {
		return run.(*resultsDomain.Run), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBenchmarkRepository) GetLatestRun(ctx context.Context) (*resultsDomain.Run, error) {
	args := m.Called(ctx)
	if run := args.Get(0); run != nil {
		return run.(*resultsDomain.Run), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBenchmarkRepository) ListRuns(ctx context.Context, offset, limit int) ([]*resultsDomain.Run, error) {
	args := m.Called(ctx, offset, limit)
	if runs := args.Get(0); runs != nil {
		return runs.([]*resultsDomain.Run), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBenchmarkRepository) ListRecords(
	ctx context.Context,
	runID uuid.UUID,
) ([]*resultsDomain.Record, error) {
	args := m.Called(ctx, runID)
	if records := args.Get(0); records != nil {
		return records.([]*resultsDomain.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockResultUseCase struct {
	mock.Mock
}

func (m *mockResultUseCase) Store(
	ctx context.Context,
	campaign *benchDomain.Campaign,
) (*resultsDomain.RunWithRecords, error) {
	args := m.Called(ctx, campaign)
	if stored := args.Get(0); stored != nil {
		return stored.(*resultsDomain.RunWithRecords), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockResultUseCase) Get(ctx context.Context, runID uuid.UUID) (*resultsDomain.RunWithRecords, error) {
	args := m.Called(ctx, runID)
	if stored := args.Get(0); stored != nil {
		return stored.(*resultsDomain.RunWithRecords), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockResultUseCase) Latest(ctx context.Context) (*resultsDomain.RunWithRecords, error) {
	args := m.Called(ctx)
	if stored := args.Get(0); stored != nil {
		return stored.(*resultsDomain.RunWithRecords), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockResultUseCase) List(ctx context.Context, offset, limit int) ([]*resultsDomain.Run, error) {
	args := m.Called(ctx, offset, limit)
	if runs := args.Get(0); runs != nil {
		return runs.([]*resultsDomain.Run), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBenchMetrics struct {
	mock.Mock
}

func (m *mockBenchMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBenchMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBenchMetrics) RecordCell(
	ctx context.Context,
	algorithm, direction string,
	messageLen int,
	avgMicros float64,
	approxCycles uint64,
) {
	m.Called(ctx, algorithm, direction, messageLen, avgMicros, approxCycles)
}
