package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
	"github.com/allisson/aeadbench/internal/errors"
)

// CSVWriter renders campaigns as CSV.
type CSVWriter struct {
	out     io.Writer
	trailer bool
}

// NewCSVWriter creates a CSVWriter. When trailer is set, a complete campaign (no cell
// failures) ends with the `# Done` line.
func NewCSVWriter(out io.Writer, trailer bool) *CSVWriter {
	return &CSVWriter{out: out, trailer: trailer}
}

// Write renders the header and one row per measured cell, in matrix order.
func (c *CSVWriter) Write(campaign *benchDomain.Campaign) error {
	w := csv.NewWriter(c.out)

	if err := w.Write(Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range campaign.Results {
		if err := w.Write(formatResult(r)); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	if c.trailer && len(campaign.Failures) == 0 {
		if _, err := fmt.Fprintln(c.out, DoneTrailer); err != nil {
			return fmt.Errorf("failed to write csv trailer: %w", err)
		}
	}
	return nil
}

func formatResult(r benchDomain.MeasurementResult) []string {
	return []string{
		r.Token(),
		strconv.Itoa(r.MessageLen),
		strconv.Itoa(r.Repetitions),
		strconv.FormatUint(uint64(r.TotalMicros), 10),
		strconv.FormatFloat(r.AvgMicros, 'f', 3, 64),
		strconv.FormatUint(r.ApproxCycles, 10),
	}
}

// WriteRows renders rows under the report header without a trailer. Whole-number totals
// and cycle counts print without decimals.
func WriteRows(out io.Writer, rows []Row) error {
	w := csv.NewWriter(out)

	if err := w.Write(Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Algo,
			strconv.Itoa(r.MsgLen),
			strconv.Itoa(r.Reps),
			strconv.FormatFloat(r.TotalMicros, 'f', -1, 64),
			strconv.FormatFloat(r.AvgMicros, 'f', 3, 64),
			strconv.FormatFloat(r.ApproxCycles, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// ParseCSV reads report rows from harness or serial-console output. Lines starting with
// '#' (trigger and done markers), blank lines and repeated header rows are skipped.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
		}
		if strings.EqualFold(record[0], Header[0]) {
			continue
		}

		line, _ := reader.FieldPos(0)
		row, err := parseRow(record)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(record []string) (Row, error) {
	if len(record) != len(Header) {
		return Row{}, errors.Wrapf(errors.ErrInvalidInput, "expected %d fields, got %d", len(Header), len(record))
	}

	msgLen, err := strconv.Atoi(record[1])
	if err != nil {
		return Row{}, errors.Wrapf(errors.ErrInvalidInput, "msg_len %q", record[1])
	}
	reps, err := strconv.Atoi(record[2])
	if err != nil {
		return Row{}, errors.Wrapf(errors.ErrInvalidInput, "reps %q", record[2])
	}

	var values [3]float64
	for i, field := range record[3:] {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Row{}, errors.Wrapf(errors.ErrInvalidInput, "%s %q", Header[3+i], field)
		}
		values[i] = v
	}

	return Row{
		Algo:         record[0],
		MsgLen:       msgLen,
		Reps:         reps,
		TotalMicros:  values[0],
		AvgMicros:    values[1],
		ApproxCycles: values[2],
	}, nil
}
