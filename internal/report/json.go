package report

import (
	"encoding/json"
	"fmt"
	"io"

	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
)

// JSONWriter renders campaigns as a JSON document.
type JSONWriter struct {
	out io.Writer
}

// NewJSONWriter creates a JSONWriter.
func NewJSONWriter(out io.Writer) *JSONWriter {
	return &JSONWriter{out: out}
}

type jsonCampaign struct {
	ID       string        `json:"id"`
	Mode     string        `json:"mode"`
	Results  []jsonResult  `json:"results"`
	Failures []jsonFailure `json:"failures,omitempty"`
}

type jsonResult struct {
	Algo         string  `json:"algo"`
	Algorithm    string  `json:"algorithm"`
	Direction    string  `json:"direction"`
	MsgLen       int     `json:"msg_len"`
	Reps         int     `json:"reps"`
	TotalMicros  uint32  `json:"total_us"`
	AvgMicros    float64 `json:"avg_us"`
	ApproxCycles uint64  `json:"approx_cycles"`
	TagMatches   uint64  `json:"tag_matches"`
}

type jsonFailure struct {
	Algorithm string `json:"algorithm"`
	MsgLen    int    `json:"msg_len"`
	Error     string `json:"error"`
}

// Write renders the campaign as one indented JSON object.
func (j *JSONWriter) Write(campaign *benchDomain.Campaign) error {
	doc := jsonCampaign{
		ID:      campaign.ID.String(),
		Mode:    string(campaign.Plan.Mode),
		Results: make([]jsonResult, 0, len(campaign.Results)),
	}
	for _, r := range campaign.Results {
		doc.Results = append(doc.Results, jsonResult{
			Algo:         r.Token(),
			Algorithm:    string(r.Algorithm),
			Direction:    string(r.Direction),
			MsgLen:       r.MessageLen,
			Reps:         r.Repetitions,
			TotalMicros:  r.TotalMicros,
			AvgMicros:    r.AvgMicros,
			ApproxCycles: r.ApproxCycles,
			TagMatches:   r.TagMatches,
		})
	}
	for _, f := range campaign.Failures {
		doc.Failures = append(doc.Failures, jsonFailure{
			Algorithm: string(f.Algorithm),
			MsgLen:    f.MessageLen,
			Error:     f.Err.Error(),
		})
	}

	encoder := json.NewEncoder(j.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
