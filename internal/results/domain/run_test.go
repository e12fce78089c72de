package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
	"github.com/allisson/aeadbench/internal/errors"
)

func TestNewRun(t *testing.T) {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	plan := benchDomain.NewDefaultPlan()
	plan.Direction = benchDomain.Decrypt

	campaign := benchDomain.NewCampaign(plan, started)
	campaign.CompletedAt = started.Add(time.Second)
	campaign.Failures = append(campaign.Failures, benchDomain.CellFailure{
		Algorithm:  aeadDomain.ASCON128,
		MessageLen: 64,
		Err:        errors.ErrPrimitiveFault,
	})

	now := started.Add(2 * time.Second)
	run := NewRun(campaign, now)

	assert.Equal(t, campaign.ID, run.ID)
	assert.Equal(t, "throughput-average", run.Mode)
	assert.Equal(t, "decrypt", run.Direction)
	assert.Equal(t, 200, run.Repetitions)
	assert.Equal(t, 16.0, run.CyclesPerMicrosecond)
	assert.Equal(t, 1, run.Failures)
	assert.Equal(t, started, run.StartedAt)
	assert.Equal(t, started.Add(time.Second), run.CompletedAt)
	assert.Equal(t, now, run.CreatedAt)
}

func TestNewRecord(t *testing.T) {
	params, err := aeadDomain.Lookup(aeadDomain.AES128GCM)
	require.NoError(t, err)

	result := benchDomain.NewMeasurementResult(params, benchDomain.Encrypt, 16, 4, 100, 16, 4)
	run := NewRun(benchDomain.NewCampaign(benchDomain.NewDefaultPlan(), time.Now()), time.Now())
	now := time.Now().UTC()

	record := NewRecord(run.ID, result, now)

	assert.NotEqual(t, run.ID, record.ID)
	assert.Equal(t, run.ID, record.RunID)
	assert.Equal(t, "AES128-GCM-ENC", record.Token)
	assert.Equal(t, "aes128-gcm", record.Algorithm)
	assert.Equal(t, 16, record.MessageLen)
	assert.Equal(t, 4, record.Repetitions)
	assert.Equal(t, uint32(100), record.TotalMicros)
	assert.Equal(t, 25.0, record.AvgMicros)
	assert.Equal(t, uint64(400), record.ApproxCycles)
	assert.Equal(t, uint64(4), record.TagMatches)
	assert.Equal(t, now, record.CreatedAt)
}

func TestErrors(t *testing.T) {
	assert.ErrorIs(t, ErrRunNotFound, errors.ErrNotFound)
	assert.ErrorIs(t, ErrEmptyCampaign, errors.ErrInvalidInput)
}
