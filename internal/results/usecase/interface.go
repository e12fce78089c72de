package usecase

import (
	"context"

	"github.com/google/uuid"

	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
	resultsDomain "github.com/allisson/aeadbench/internal/results/domain"
)

// BenchmarkRepository defines the persistence operations for runs and records.
type BenchmarkRepository interface {
	CreateRun(ctx context.Context, run *resultsDomain.Run) error
	CreateRecord(ctx context.Context, record *resultsDomain.Record) error
	GetRun(ctx context.Context, runID uuid.UUID) (*resultsDomain.Run, error)
	GetLatestRun(ctx context.Context) (*resultsDomain.Run, error)
	ListRuns(ctx context.Context, offset, limit int) ([]*resultsDomain.Run, error)
	ListRecords(ctx context.Context, runID uuid.UUID) ([]*resultsDomain.Record, error)
}

// ResultUseCase stores finished campaigns and reads them back for offline analysis.
type ResultUseCase interface {
	// Store persists the run header and every measured cell in one transaction.
	Store(ctx context.Context, campaign *benchDomain.Campaign) (*resultsDomain.RunWithRecords, error)
	// Get returns a stored run with its records.
	Get(ctx context.Context, runID uuid.UUID) (*resultsDomain.RunWithRecords, error)
	// Latest returns the most recently stored run with its records.
	Latest(ctx context.Context) (*resultsDomain.RunWithRecords, error)
	// List returns run headers newest first, without their records.
	List(ctx context.Context, offset, limit int) ([]*resultsDomain.Run, error)
}
