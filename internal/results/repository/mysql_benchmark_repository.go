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
	mysqlRunColumns = `id, mode, direction, repetitions, cycles_per_microsecond, failures,
			  started_at, completed_at, created_at`
	mysqlRecordColumns = `id, run_id, token, algorithm, message_len, repetitions,
			  total_micros, avg_micros, approx_cycles, tag_matches, created_at`
)

// MySQLBenchmarkRepository stores runs and records in MySQL. UUIDs are kept as BINARY(16)
// and marshaled with uuid.MarshalBinary()/UnmarshalBinary().
type MySQLBenchmarkRepository struct {
	db *sql.DB
}

// CreateRun inserts the run header.
func (m *MySQLBenchmarkRepository) CreateRun(ctx context.Context, run *resultsDomain.Run) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO benchmark_runs (` + mysqlRunColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := run.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal benchmark run id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLBenchmarkRepository) CreateRecord(ctx context.Context, record *resultsDomain.Record) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO benchmark_records (` + mysqlRecordColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := record.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal benchmark record id")
	}

	runID, err := record.RunID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal benchmark run id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		runID,
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
func (m *MySQLBenchmarkRepository) GetRun(ctx context.Context, runID uuid.UUID) (*resultsDomain.Run, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + mysqlRunColumns + ` FROM benchmark_runs WHERE id = ?`

	id, err := runID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal benchmark run id")
	}

	return scanMySQLRun(querier.QueryRowContext(ctx, query, id))
}

// GetLatestRun returns the most recently created run or resultsDomain.ErrRunNotFound when
// nothing has been stored yet.
func (m *MySQLBenchmarkRepository) GetLatestRun(ctx context.Context) (*resultsDomain.Run, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + mysqlRunColumns + ` FROM benchmark_runs
			  ORDER BY created_at DESC, id DESC
			  LIMIT 1`

	return scanMySQLRun(querier.QueryRowContext(ctx, query))
}

// ListRuns returns stored runs newest first.
func (m *MySQLBenchmarkRepository) ListRuns(ctx context.Context, offset, limit int) ([]*resultsDomain.Run, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + mysqlRunColumns + ` FROM benchmark_runs
			  ORDER BY created_at DESC, id DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list benchmark runs")
	}
	defer func() {
		_ = rows.Close()
	}()

	runs := make([]*resultsDomain.Run, 0)
	for rows.Next() {
		run, err := scanMySQLRun(rows)
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
func (m *MySQLBenchmarkRepository) ListRecords(
	ctx context.Context,
	runID uuid.UUID,
) ([]*resultsDomain.Record, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + mysqlRecordColumns + ` FROM benchmark_records
			  WHERE run_id = ?
			  ORDER BY id ASC`

	runIDBytes, err := runID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal benchmark run id")
	}

	rows, err := querier.QueryContext(ctx, query, runIDBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list benchmark records")
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]*resultsDomain.Record, 0)
	for rows.Next() {
		var record resultsDomain.Record
		var id, recordRunID []byte
		var totalMicros, approxCycles, tagMatches int64

		err := rows.Scan(
			&id,
			&recordRunID,
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

		if err := record.ID.UnmarshalBinary(id); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal benchmark record id")
		}
		if err := record.RunID.UnmarshalBinary(recordRunID); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal benchmark run id")
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

func scanMySQLRun(row rowScanner) (*resultsDomain.Run, error) {
	var run resultsDomain.Run
	var id []byte

	err := row.Scan(
		&id,
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

	if err := run.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal benchmark run id")
	}
	return &run, nil
}

// NewMySQLBenchmarkRepository creates a new MySQL benchmark repository.
func NewMySQLBenchmarkRepository(db *sql.DB) *MySQLBenchmarkRepository {
	return &MySQLBenchmarkRepository{db: db}
}
