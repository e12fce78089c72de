// Package dto provides data transfer objects for stored benchmark runs.
package dto

import (
	"time"

	"github.com/allisson/aeadbench/internal/report"
	resultsDomain "github.com/allisson/aeadbench/internal/results/domain"
)

// RunResponse represents a stored run. Records is omitted in list responses.
type RunResponse struct {
	ID                   string           `json:"id"`
	Mode                 string           `json:"mode"`
	Direction            string           `json:"direction"`
	Repetitions          int              `json:"repetitions"`
	CyclesPerMicrosecond float64          `json:"cycles_per_microsecond"`
	Failures             int              `json:"failures"`
	StartedAt            time.Time        `json:"started_at"`
	CompletedAt          time.Time        `json:"completed_at"`
	CreatedAt            time.Time        `json:"created_at"`
	Records              []RecordResponse `json:"records,omitempty"`
}

// RecordResponse represents one stored cell.
type RecordResponse struct {
	Algo         string  `json:"algo"`
	Algorithm    string  `json:"algorithm"`
	MsgLen       int     `json:"msg_len"`
	Reps         int     `json:"reps"`
	TotalMicros  uint32  `json:"total_us"`
	AvgMicros    float64 `json:"avg_us"`
	ApproxCycles uint64  `json:"approx_cycles"`
	TagMatches   uint64  `json:"tag_matches"`
}

// ListRunsResponse represents a page of stored runs.
type ListRunsResponse struct {
	Data []RunResponse `json:"data"`
}

// MapRunToResponse converts a run header without its records.
func MapRunToResponse(run *resultsDomain.Run) RunResponse {
	return RunResponse{
		ID:                   run.ID.String(),
		Mode:                 run.Mode,
		Direction:            run.Direction,
		Repetitions:          run.Repetitions,
		CyclesPerMicrosecond: run.CyclesPerMicrosecond,
		Failures:             run.Failures,
		StartedAt:            run.StartedAt,
		CompletedAt:          run.CompletedAt,
		CreatedAt:            run.CreatedAt,
	}
}

// MapRunWithRecordsToResponse converts a run and its records. Records is never nil.
func MapRunWithRecordsToResponse(stored *resultsDomain.RunWithRecords) RunResponse {
	response := MapRunToResponse(stored.Run)
	response.Records = make([]RecordResponse, 0, len(stored.Records))
	for _, r := range stored.Records {
		response.Records = append(response.Records, RecordResponse{
			Algo:         r.Token,
			Algorithm:    r.Algorithm,
			MsgLen:       r.MessageLen,
			Reps:         r.Repetitions,
			TotalMicros:  r.TotalMicros,
			AvgMicros:    r.AvgMicros,
			ApproxCycles: r.ApproxCycles,
			TagMatches:   r.TagMatches,
		})
	}
	return response
}

// MapRunsToListResponse converts a page of run headers.
func MapRunsToListResponse(runs []*resultsDomain.Run) ListRunsResponse {
	data := make([]RunResponse, 0, len(runs))
	for _, run := range runs {
		data = append(data, MapRunToResponse(run))
	}
	return ListRunsResponse{Data: data}
}

// MapRecordsToRows converts stored records into report rows, keeping their order.
func MapRecordsToRows(records []*resultsDomain.Record) []report.Row {
	rows := make([]report.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, report.Row{
			Algo:         r.Token,
			MsgLen:       r.MessageLen,
			Reps:         r.Repetitions,
			TotalMicros:  float64(r.TotalMicros),
			AvgMicros:    r.AvgMicros,
			ApproxCycles: float64(r.ApproxCycles),
		})
	}
	return rows
}
