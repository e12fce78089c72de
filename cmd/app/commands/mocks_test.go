package commands

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
	resultsDomain "github.com/allisson/aeadbench/internal/results/domain"
)

var testStartedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestCampaign builds an AES-256-GCM encrypt campaign with 200 repetitions and a
// 3000 µs loop total per size, so every row averages 15.000 µs and 240 cycles.
func newTestCampaign(sizes ...int) *benchDomain.Campaign {
	params, _ := aeadDomain.Lookup(aeadDomain.AES256GCM)

	plan := benchDomain.NewDefaultPlan()
	plan.Algorithms = []aeadDomain.Algorithm{aeadDomain.AES256GCM}
	plan.Sizes = sizes
	plan.Repetitions = 200

	campaign := benchDomain.NewCampaign(plan, testStartedAt)
	for _, size := range sizes {
		campaign.Results = append(campaign.Results,
			benchDomain.NewMeasurementResult(params, benchDomain.Encrypt, size, 200, 3000, 16, 200))
	}
	campaign.CompletedAt = testStartedAt.Add(time.Second)
	return campaign
}

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

type mockSingleShotUseCase struct {
	mock.Mock
}

func (m *mockSingleShotUseCase) Run(
	ctx context.Context,
	plan benchDomain.Plan,
	trigger io.Writer,
) (*benchDomain.Campaign, error) {
	args := m.Called(ctx, plan, trigger)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*benchDomain.Campaign), args.Error(1)
}

type mockPowerManager struct {
	mock.Mock
}

func (m *mockPowerManager) PowerDown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type mockResultUseCase struct {
	mock.Mock
}

func (m *mockResultUseCase) Store(
	ctx context.Context,
	campaign *benchDomain.Campaign,
) (*resultsDomain.RunWithRecords, error) {
	args := m.Called(ctx, campaign)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resultsDomain.RunWithRecords), args.Error(1)
}

func (m *mockResultUseCase) Get(ctx context.Context, id uuid.UUID) (*resultsDomain.RunWithRecords, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resultsDomain.RunWithRecords), args.Error(1)
}

func (m *mockResultUseCase) Latest(ctx context.Context) (*resultsDomain.RunWithRecords, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resultsDomain.RunWithRecords), args.Error(1)
}

func (m *mockResultUseCase) List(ctx context.Context, offset, limit int) ([]*resultsDomain.Run, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*resultsDomain.Run), args.Error(1)
}

// fakeServer blocks in Start until its context is cancelled or Shutdown is called.
type fakeServer struct {
	startErr    error
	shutdownErr error

	mu       sync.Mutex
	started  chan struct{}
	stop     chan struct{}
	shutdown bool
}

func newFakeServer() *fakeServer {
	return &fakeServer{started: make(chan struct{}), stop: make(chan struct{})}
}

func (s *fakeServer) Start(ctx context.Context) error {
	close(s.started)
	if s.startErr != nil {
		return s.startErr
	}
	select {
	case <-ctx.Done():
	case <-s.stop:
	}
	return nil
}

func (s *fakeServer) Shutdown(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.shutdown {
		s.shutdown = true
		close(s.stop)
	}
	return s.shutdownErr
}

func (s *fakeServer) wasShutdown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdown
}
