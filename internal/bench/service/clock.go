// Package service implements the timing protocol and its collaborators: the microsecond
// clock, the verification sink and the power-down sink.
package service

import (
	"time"
)

// Clock is a monotonic microsecond counter that wraps at 2^32.
type Clock interface {
	NowMicros() uint32
}

// MonotonicClock reads Go's monotonic clock relative to the instant it was created and
// truncates to 32 bits, like an embedded micros() counter.
type MonotonicClock struct {
	base time.Time
}

// NewMonotonicClock creates a clock starting at zero now.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{base: time.Now()}
}

// NowMicros returns the microseconds elapsed since the clock was created, modulo 2^32.
func (c *MonotonicClock) NowMicros() uint32 {
	return uint32(time.Since(c.base).Microseconds()) //nolint:gosec // wraparound is the contract
}

// Elapsed returns t1-t0 on the wrapping counter. It is correct as long as the interval is
// shorter than one full period (about 71.6 minutes).
func Elapsed(t0, t1 uint32) uint32 {
	return t1 - t0
}
