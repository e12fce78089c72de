// Package usecase stores finished benchmark campaigns so that repeated runs can be
// compared offline.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
	"github.com/allisson/aeadbench/internal/database"
	resultsDomain "github.com/allisson/aeadbench/internal/results/domain"
)

type resultUseCase struct {
	txManager database.TxManager
	repo      BenchmarkRepository
	now       func() time.Time
}

// Store writes the run header followed by one record per result, in matrix order. Failed
// cells are counted on the run; they have no record.
func (r *resultUseCase) Store(
	ctx context.Context,
	campaign *benchDomain.Campaign,
) (*resultsDomain.RunWithRecords, error) {
	if campaign == nil || len(campaign.Results) == 0 {
		return nil, resultsDomain.ErrEmptyCampaign
	}

	now := r.now().UTC()
	run := resultsDomain.NewRun(campaign, now)
	records := make([]*resultsDomain.Record, 0, len(campaign.Results))
	for _, result := range campaign.Results {
		records = append(records, resultsDomain.NewRecord(run.ID, result, now))
	}

	err := r.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := r.repo.CreateRun(ctx, run); err != nil {
			return err
		}
		for _, record := range records {
			if err := r.repo.CreateRecord(ctx, record); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &resultsDomain.RunWithRecords{Run: run, Records: records}, nil
}

// Get returns the run with runID and its records, read from one snapshot.
func (r *resultUseCase) Get(ctx context.Context, runID uuid.UUID) (*resultsDomain.RunWithRecords, error) {
	return r.readRun(ctx, func(ctx context.Context) (*resultsDomain.Run, error) {
		return r.repo.GetRun(ctx, runID)
	})
}

// Latest returns the most recent run and its records, read from one snapshot.
func (r *resultUseCase) Latest(ctx context.Context) (*resultsDomain.RunWithRecords, error) {
	return r.readRun(ctx, r.repo.GetLatestRun)
}

// List returns a page of run headers.
func (r *resultUseCase) List(ctx context.Context, offset, limit int) ([]*resultsDomain.Run, error) {
	return r.repo.ListRuns(ctx, offset, limit)
}

func (r *resultUseCase) readRun(
	ctx context.Context,
	getRun func(ctx context.Context) (*resultsDomain.Run, error),
) (*resultsDomain.RunWithRecords, error) {
	var stored *resultsDomain.RunWithRecords
	err := r.txManager.WithReadTx(ctx, func(ctx context.Context) error {
		run, err := getRun(ctx)
		if err != nil {
			return err
		}
		records, err := r.repo.ListRecords(ctx, run.ID)
		if err != nil {
			return err
		}
		stored = &resultsDomain.RunWithRecords{Run: run, Records: records}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// NewResultUseCase creates a ResultUseCase backed by repo.
func NewResultUseCase(txManager database.TxManager, repo BenchmarkRepository) ResultUseCase {
	return &resultUseCase{
		txManager: txManager,
		repo:      repo,
		now:       time.Now,
	}
}
