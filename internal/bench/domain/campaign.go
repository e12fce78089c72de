package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
	"github.com/allisson/aeadbench/internal/errors"
)

// CellFailure records a cell that aborted. The remaining sizes of that algorithm were skipped.
type CellFailure struct {
	Algorithm  aeadDomain.Algorithm
	MessageLen int
	Err        error
}

// Error implements error.
func (f CellFailure) Error() string {
	return fmt.Sprintf("%s/%d: %v", f.Algorithm, f.MessageLen, f.Err)
}

// Unwrap returns the underlying cell error.
func (f CellFailure) Unwrap() error {
	return f.Err
}

// Campaign is the ordered output of one run of the matrix. Results are in matrix order:
// algorithms in plan order, sizes in plan order within each algorithm.
type Campaign struct {
	ID          uuid.UUID
	Plan        Plan
	StartedAt   time.Time
	CompletedAt time.Time
	Results     []MeasurementResult
	Failures    []CellFailure
}

// NewCampaign creates an empty campaign for plan.
func NewCampaign(plan Plan, startedAt time.Time) *Campaign {
	return &Campaign{
		ID:        uuid.Must(uuid.NewV7()),
		Plan:      plan,
		StartedAt: startedAt,
		Results:   make([]MeasurementResult, 0, len(plan.Algorithms)*len(plan.Sizes)),
	}
}

// Err joins every cell failure, or returns nil when all cells completed.
func (c *Campaign) Err() error {
	if len(c.Failures) == 0 {
		return nil
	}
	errs := make([]error, 0, len(c.Failures))
	for _, f := range c.Failures {
		errs = append(errs, f)
	}
	return errors.Join(errs...)
}
