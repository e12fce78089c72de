// Package report renders measurement results for offline analysis and reads them back.
//
// The CSV layout is fixed: header `algo,msg_len,reps,total_us,avg_us,approx_cycles`, one
// row per cell, the average printed with three decimals, and an optional `# Done` trailer.
package report

import (
	"io"
	"strings"

	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
	"github.com/allisson/aeadbench/internal/errors"
)

// Header is the CSV header row.
var Header = []string{"algo", "msg_len", "reps", "total_us", "avg_us", "approx_cycles"}

// DoneTrailer marks the end of a complete campaign in the CSV stream.
const DoneTrailer = "# Done"

// Output formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ErrUnsupportedFormat indicates an unknown output format.
var ErrUnsupportedFormat = errors.Wrap(errors.ErrInvalidInput, "unsupported output format")

// Writer renders a campaign.
type Writer interface {
	Write(campaign *benchDomain.Campaign) error
}

// NewWriter returns the writer for format ("csv" or "json").
func NewWriter(format string, w io.Writer) (Writer, error) {
	switch strings.ToLower(format) {
	case FormatCSV, "":
		return NewCSVWriter(w, true), nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// Row is one line of the CSV report. Values are float so that averaged rows from
// Summarize share the type.
type Row struct {
	Algo         string
	MsgLen       int
	Reps         int
	TotalMicros  float64
	AvgMicros    float64
	ApproxCycles float64
}

// RowFromResult converts a measurement into a report row.
func RowFromResult(r benchDomain.MeasurementResult) Row {
	return Row{
		Algo:         r.Token(),
		MsgLen:       r.MessageLen,
		Reps:         r.Repetitions,
		TotalMicros:  float64(r.TotalMicros),
		AvgMicros:    r.AvgMicros,
		ApproxCycles: float64(r.ApproxCycles),
	}
}
