// Package repository persists benchmark runs and their measurement records in PostgreSQL
// and MySQL.
//
// Both implementations are transaction-aware via database.GetTx(): when called with a
// context returned by TxManager.WithTx they use the transaction, otherwise the pool.
//
//	repo := repository.NewPostgreSQLBenchmarkRepository(db)
//	err := txManager.WithTx(ctx, func(txCtx context.Context) error {
//	    if err := repo.CreateRun(txCtx, run); err != nil {
//	        return err
//	    }
//	    return repo.CreateRecord(txCtx, record)
//	})
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/aeadbench/internal/database"
	apperrors "github.com/allisson/aeadbench/internal/errors"
	resultsDomain "github.com/allisson/aeadbench/internal/results/domain"
)

const (
	postgresRunColumns = `id, mode, direction, repetitions, cycles_per_microsecond, failures,
			  started_at, completed_at, created_at`
	postgresRecordColumns = `id, run_id, token, algorithm, message_len, repetitions,
			  total_micros, avg_micros, approx_cycles, tag_matches, created_at`
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// PostgreSQLBenchmarkRepository stores runs and records using PostgreSQL's native UUID type
// and TIMESTAMPTZ columns.
type PostgreSQLBenchmarkRepository struct {
	db *sql.DB
}

// CreateRun inserts the run header.
func (p *PostgreSQLBenchmarkRepository) CreateRun(ctx context.Context, run *resultsDomain.Run) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO benchmark_runs (` + postgresRunColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := querier.ExecContext(
		ctx,
		query,
		run.ID,
		run.Mode,
		run.Direction,
		run.Repetitions,
		run.CyclesPerMicrosecond,
		run.Failures,
		run.StartedAt,
		run.CompletedAt,
		run.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create benchmark run")
	}
	return nil
}

// CreateRecord inserts one measurement record. The referenced run must already exist.
func (p *PostgreSQLBenchmarkRepository) CreateRecord(ctx context.Context, record *resultsDomain.Record) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO benchmark_records (` + postgresRecordColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := querier.ExecContext(
		ctx,
		query,
		record.ID,
		record.RunID,
		record.Token,
		record.Algorithm,
		record.MessageLen,
		record.Repetitions,
		int64(record.TotalMicros),
		record.AvgMicros,
		int64(record.ApproxCycles), //nolint:gosec // cycle estimates stay far below 2^63
		int64(record.TagMatches),   //nolint:gosec // bounded by the repetition count
		record.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create benchmark record")
	}
	return nil
}

// GetRun returns the run with runID or resultsDomain.ErrRunNotFound.
func (p *PostgreSQLBenchmarkRepository) GetRun(ctx context.Context, runID uuid.UUID) (*resultsDomain.Run, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + postgresRunColumns + ` FROM benchmark_runs WHERE id = $1`

	return scanPostgresRun(querier.QueryRowContext(ctx, query, runID))
}

// GetLatestRun returns the most recently created run or resultsDomain.ErrRunNotFound when
// nothing has been stored yet.
func (p *PostgreSQLBenchmarkRepository) GetLatestRun(ctx context.Context) (*resultsDomain.Run, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + postgresRunColumns + ` FROM benchmark_runs
			  ORDER BY created_at DESC, id DESC
			  LIMIT 1`

	return scanPostgresRun(querier.QueryRowContext(ctx, query))
}

// ListRuns returns stored runs newest first.
func (p *PostgreSQLBenchmarkRepository) ListRuns(ctx context.Context, offset, limit int) ([]*resultsDomain.Run, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + postgresRunColumns + ` FROM benchmark_runs
			  ORDER BY created_at DESC, id DESC
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list benchmark runs")
	}
	defer func() {
		_ = rows.Close()
	}()

	runs := make([]*resultsDomain.Run, 0)
	for rows.Next() {
		run, err := scanPostgresRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate benchmark runs")
	}

	return runs, nil
}

// ListRecords returns the records of runID in insertion (matrix) order.
func (p *PostgreSQLBenchmarkRepository) ListRecords(
	ctx context.Context,
	runID uuid.UUID,
) ([]*resultsDomain.Record, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + postgresRecordColumns + ` FROM benchmark_records
			  WHERE run_id = $1
			  ORDER BY id ASC`

	rows, err := querier.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list benchmark records")
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]*resultsDomain.Record, 0)
	for rows.Next() {
		var record resultsDomain.Record
		var totalMicros, approxCycles, tagMatches int64

		err := rows.Scan(
			&record.ID,
			&record.RunID,
			&record.Token,
			&record.Algorithm,
			&record.MessageLen,
			&record.Repetitions,
			&totalMicros,
			&record.AvgMicros,
			&approxCycles,
			&tagMatches,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan benchmark record")
		}

		record.TotalMicros = uint32(totalMicros) //nolint:gosec // written from a uint32
		record.ApproxCycles = uint64(approxCycles)
		record.TagMatches = uint64(tagMatches)
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate benchmark records")
	}

	return records, nil
}

func scanPostgresRun(row rowScanner) (*resultsDomain.Run, error) {
	var run resultsDomain.Run

	err := row.Scan(
		&run.ID,
		&run.Mode,
		&run.Direction,
		&run.Repetitions,
		&run.CyclesPerMicrosecond,
		&run.Failures,
		&run.StartedAt,
		&run.CompletedAt,
		&run.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resultsDomain.ErrRunNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get benchmark run")
	}
	return &run, nil
}

// NewPostgreSQLBenchmarkRepository creates a new PostgreSQL benchmark repository.
func NewPostgreSQLBenchmarkRepository(db *sql.DB) *PostgreSQLBenchmarkRepository {
	return &PostgreSQLBenchmarkRepository{db: db}
}
