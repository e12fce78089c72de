package domain

import (
	"math"

	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
)

// MeasurementResult is the outcome of one cell. It is immutable once built.
type MeasurementResult struct {
	Algorithm   aeadDomain.Algorithm
	Label       string
	Direction   Direction
	MessageLen  int
	Repetitions int
	// TotalMicros is t1-t0 of the repetition loop on the 32-bit microsecond clock.
	TotalMicros uint32
	AvgMicros   float64
	// ApproxCycles is round(AvgMicros * cycles per microsecond); no cycle counter is read.
	ApproxCycles uint64
	// TagMatches counts repetitions whose tag check succeeded. Decrypt cells run over
	// fabricated ciphertext so it is expected to be zero there.
	TagMatches uint64
}

// NewMeasurementResult derives the average and the cycle estimate from the loop total.
// reps must be positive.
func NewMeasurementResult(
	params aeadDomain.Params,
	direction Direction,
	messageLen, reps int,
	totalMicros uint32,
	cyclesPerMicrosecond float64,
	tagMatches uint64,
) MeasurementResult {
	avg := float64(totalMicros) / float64(reps)

	return MeasurementResult{
		Algorithm:    params.Algorithm,
		Label:        params.Label,
		Direction:    direction,
		MessageLen:   messageLen,
		Repetitions:  reps,
		TotalMicros:  totalMicros,
		AvgMicros:    avg,
		ApproxCycles: uint64(math.Round(avg * cyclesPerMicrosecond)),
		TagMatches:   tagMatches,
	}
}

// Token returns the fixed report token, e.g. "AES128-GCM-ENC" or "ChaChaPoly-DEC".
func (r MeasurementResult) Token() string {
	return r.Label + "-" + r.Direction.Suffix()
}
