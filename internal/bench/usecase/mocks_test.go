package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
	aeadService "github.com/allisson/aeadbench/internal/aead/service"
	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockAdapterManager is a local mock for aeadService.AdapterManager.
type mockAdapterManager struct {
	mock.Mock
}

func (m *mockAdapterManager) Configure(alg aeadDomain.Algorithm, key []byte) (aeadService.Adapter, error) {
	args := m.Called(alg, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(aeadService.Adapter), args.Error(1)
}

// faultyAdapter delegates to a real adapter but faults on one message length.
type faultyAdapter struct {
	aeadService.Adapter
	failAt int
	closed bool
}

func (f *faultyAdapter) Encrypt(nonce, aad, buf, tag []byte) error {
	if len(buf) == f.failAt {
		return aeadDomain.ErrBufferTooSmall
	}
	return f.Adapter.Encrypt(nonce, aad, buf, tag)
}

func (f *faultyAdapter) Close() {
	f.closed = true
	f.Adapter.Close()
}

// mockCampaignUseCase is a local mock for usecase.CampaignUseCase.
type mockCampaignUseCase struct {
	mock.Mock
}

func (m *mockCampaignUseCase) Run(ctx context.Context, plan benchDomain.Plan) (*benchDomain.Campaign, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*benchDomain.Campaign), args.Error(1)
}

// mockPowerManager is a local mock for service.PowerManager.
type mockPowerManager struct {
	mock.Mock
}

func (m *mockPowerManager) PowerDown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// mockBenchMetrics is a local mock for metrics.BenchMetrics.
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
