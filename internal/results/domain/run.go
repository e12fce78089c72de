package domain

import (
	"time"

	"github.com/google/uuid"

	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
)

// Run is the stored header of one campaign. Its ID is the campaign ID.
type Run struct {
	ID                   uuid.UUID
	Mode                 string
	Direction            string
	Repetitions          int
	CyclesPerMicrosecond float64
	Failures             int
	StartedAt            time.Time
	CompletedAt          time.Time
	CreatedAt            time.Time
}

// Record is one stored measurement row, linked to its Run.
type Record struct {
	ID           uuid.UUID
	RunID        uuid.UUID
	Token        string
	Algorithm    string
	MessageLen   int
	Repetitions  int
	TotalMicros  uint32
	AvgMicros    float64
	ApproxCycles uint64
	TagMatches   uint64
	CreatedAt    time.Time
}

// RunWithRecords is a stored run together with its records in matrix order.
type RunWithRecords struct {
	Run     *Run
	Records []*Record
}

// NewRun builds the stored header for campaign.
func NewRun(campaign *benchDomain.Campaign, now time.Time) *Run {
	return &Run{
		ID:                   campaign.ID,
		Mode:                 string(campaign.Plan.Mode),
		Direction:            string(campaign.Plan.Direction),
		Repetitions:          campaign.Plan.Repetitions,
		CyclesPerMicrosecond: campaign.Plan.CyclesPerMicrosecond,
		Failures:             len(campaign.Failures),
		StartedAt:            campaign.StartedAt,
		CompletedAt:          campaign.CompletedAt,
		CreatedAt:            now,
	}
}

// NewRecord builds one stored row for result, linked to runID.
func NewRecord(runID uuid.UUID, result benchDomain.MeasurementResult, now time.Time) *Record {
	return &Record{
		ID:           uuid.Must(uuid.NewV7()),
		RunID:        runID,
		Token:        result.Token(),
		Algorithm:    string(result.Algorithm),
		MessageLen:   result.MessageLen,
		Repetitions:  result.Repetitions,
		TotalMicros:  result.TotalMicros,
		AvgMicros:    result.AvgMicros,
		ApproxCycles: result.ApproxCycles,
		TagMatches:   result.TagMatches,
		CreatedAt:    now,
	}
}
