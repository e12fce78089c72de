package service

import (
	"sync/atomic"
)

// VerificationSink observes every tag-check outcome of the timed loop. The outcome is
// never branched on, but counting it keeps the comparison live and the counts end up in
// the measurement result.
type VerificationSink struct {
	accepted atomic.Uint64
	rejected atomic.Uint64
}

// NewVerificationSink creates an empty sink.
func NewVerificationSink() *VerificationSink {
	return &VerificationSink{}
}

// Observe records one tag-check outcome.
func (s *VerificationSink) Observe(ok bool) {
	if ok {
		s.accepted.Add(1)
		return
	}
	s.rejected.Add(1)
}

// Accepted returns how many tag checks succeeded since the last Reset.
func (s *VerificationSink) Accepted() uint64 {
	return s.accepted.Load()
}

// Rejected returns how many tag checks failed since the last Reset.
func (s *VerificationSink) Rejected() uint64 {
	return s.rejected.Load()
}

// Reset zeroes both counters.
func (s *VerificationSink) Reset() {
	s.accepted.Store(0)
	s.rejected.Store(0)
}
