package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	resultsDomain "github.com/allisson/aeadbench/internal/results/domain"
)

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, mock
}

func newTestRun() *resultsDomain.Run {
	return &resultsDomain.Run{
		ID:                   uuid.Must(uuid.NewV7()),
		Mode:                 "throughput-average",
		Direction:            "encrypt",
		Repetitions:          200,
		CyclesPerMicrosecond: 16,
		StartedAt:            fixedTime,
		CompletedAt:          fixedTime.Add(time.Second),
		CreatedAt:            fixedTime.Add(2 * time.Second),
	}
}

func newTestRecord(runID uuid.UUID, msgLen int) *resultsDomain.Record {
	return &resultsDomain.Record{
		ID:           uuid.Must(uuid.NewV7()),
		RunID:        runID,
		Token:        "AES128-GCM-ENC",
		Algorithm:    "aes128-gcm",
		MessageLen:   msgLen,
		Repetitions:  200,
		TotalMicros:  4000,
		AvgMicros:    20,
		ApproxCycles: 320,
		TagMatches:   200,
		CreatedAt:    fixedTime,
	}
}

var (
	runColumnNames = []string{
		"id", "mode", "direction", "repetitions", "cycles_per_microsecond", "failures",
		"started_at", "completed_at", "created_at",
	}
	recordColumnNames = []string{
		"id", "run_id", "token", "algorithm", "message_len", "repetitions",
		"total_micros", "avg_micros", "approx_cycles", "tag_matches", "created_at",
	}
)
