package report

import (
	"cmp"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// SummaryRow is the mean of every parsed row sharing an (algo, msg_len) pair.
type SummaryRow struct {
	Row
	Runs int
}

// Summarize averages repeated runs per (algo, msg_len) and sorts by algo, then msg_len.
// Reps is carried from the first row of each group.
func Summarize(rows []Row) []SummaryRow {
	type key struct {
		algo   string
		msgLen int
	}

	groups := make(map[key]*SummaryRow)
	for _, r := range rows {
		k := key{algo: r.Algo, msgLen: r.MsgLen}
		s, ok := groups[k]
		if !ok {
			s = &SummaryRow{Row: Row{Algo: r.Algo, MsgLen: r.MsgLen, Reps: r.Reps}}
			groups[k] = s
		}
		s.TotalMicros += r.TotalMicros
		s.AvgMicros += r.AvgMicros
		s.ApproxCycles += r.ApproxCycles
		s.Runs++
	}

	summary := make([]SummaryRow, 0, len(groups))
	for _, s := range groups {
		n := float64(s.Runs)
		s.TotalMicros /= n
		s.AvgMicros /= n
		s.ApproxCycles /= n
		summary = append(summary, *s)
	}

	slices.SortFunc(summary, func(a, b SummaryRow) int {
		if c := cmp.Compare(a.Algo, b.Algo); c != 0 {
			return c
		}
		return cmp.Compare(a.MsgLen, b.MsgLen)
	})
	return summary
}

// WriteSummary renders summary rows as CSV with a trailing runs column.
func WriteSummary(out io.Writer, summary []SummaryRow) error {
	w := csv.NewWriter(out)

	if err := w.Write(append(slices.Clone(Header), "runs")); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}
	for _, s := range summary {
		record := []string{
			s.Algo,
			strconv.Itoa(s.MsgLen),
			strconv.Itoa(s.Reps),
			strconv.FormatFloat(s.TotalMicros, 'f', 3, 64),
			strconv.FormatFloat(s.AvgMicros, 'f', 3, 64),
			strconv.FormatFloat(s.ApproxCycles, 'f', 3, 64),
			strconv.Itoa(s.Runs),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
