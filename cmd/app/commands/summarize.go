package commands

import (
	"fmt"
	"io"

	"github.com/allisson/aeadbench/internal/errors"
	"github.com/allisson/aeadbench/internal/report"
)

// RunSummarize parses one or more captured CSV reports and writes the mean of every
// (algo, msg_len) pair across them.
func RunSummarize(writer io.Writer, inputs ...io.Reader) error {
	var rows []report.Row
	for i, input := range inputs {
		parsed, err := report.ParseCSV(input)
		if err != nil {
			return fmt.Errorf("failed to parse input %d: %w", i+1, err)
		}
		rows = append(rows, parsed...)
	}

	if len(rows) == 0 {
		return errors.Wrap(errors.ErrInvalidInput, "no measurement rows found")
	}

	return report.WriteSummary(writer, report.Summarize(rows))
}
