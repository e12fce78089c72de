package service

import (
	"fmt"
	"runtime"
	"runtime/debug"

	aeadService "github.com/allisson/aeadbench/internal/aead/service"
	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
	"github.com/allisson/aeadbench/internal/workload"
)

// Timer runs the timing protocol for one cell.
//
// The adapter arrives configured: the key schedule has already run and is outside the
// timed region. Inside it, every repetition performs the full per-message cycle against
// the same workload buffers, which are not re-seeded between repetitions. Encrypt cells bind
// the nonce, absorb the AAD, transform in place and emit the tag. Decrypt cells bind the
// nonce, transform in place and check the tag; they absorb no associated data.
type Timer struct {
	clock                Clock
	sink                 *VerificationSink
	cyclesPerMicrosecond float64
	quiesce              bool
}

// NewTimer creates a Timer. When quiesce is set the garbage collector is paused and the
// goroutine is pinned to its OS thread for the duration of the loop.
func NewTimer(clock Clock, sink *VerificationSink, cyclesPerMicrosecond float64, quiesce bool) *Timer {
	return &Timer{
		clock:                clock,
		sink:                 sink,
		cyclesPerMicrosecond: cyclesPerMicrosecond,
		quiesce:              quiesce,
	}
}

// Measure runs reps repetitions of the direction's cycle and returns the cell result.
//
// reps below one is a configuration error returned before the clock is read. The first
// adapter error stops the loop; the cell is then aborted with ErrCellFault and no
// result is produced.
func (t *Timer) Measure(
	adapter aeadService.Adapter,
	w *workload.Workload,
	reps int,
	direction benchDomain.Direction,
) (benchDomain.MeasurementResult, error) {
	if reps <= 0 {
		return benchDomain.MeasurementResult{}, benchDomain.ErrInvalidRepetitions
	}

	params := adapter.Params()
	t.sink.Reset()

	release := t.hold()

	var err error
	t0 := t.clock.NowMicros()
	if direction == benchDomain.Decrypt {
		for i := 0; i < reps; i++ {
			ok, decErr := adapter.Decrypt(w.Nonce, nil, w.Message, w.Tag)
			if decErr != nil {
				err = decErr
				break
			}
			t.sink.Observe(ok)
		}
	} else {
		for i := 0; i < reps; i++ {
			if err = adapter.Encrypt(w.Nonce, w.AAD, w.Message, w.Tag); err != nil {
				break
			}
		}
	}
	t1 := t.clock.NowMicros()

	release()

	if err != nil {
		return benchDomain.MeasurementResult{}, fmt.Errorf("%w: %w", benchDomain.ErrCellFault, err)
	}

	return benchDomain.NewMeasurementResult(
		params,
		direction,
		w.MessageLen,
		reps,
		Elapsed(t0, t1),
		t.cyclesPerMicrosecond,
		t.sink.Accepted(),
	), nil
}

// hold suspends background work that would show up as jitter in the loop and returns the
// function that restores it.
func (t *Timer) hold() func() {
	if !t.quiesce {
		return func() {}
	}

	runtime.LockOSThread()
	runtime.GC()
	prev := debug.SetGCPercent(-1)

	return func() {
		debug.SetGCPercent(prev)
		runtime.UnlockOSThread()
	}
}
