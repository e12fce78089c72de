package domain

import (
	"github.com/allisson/aeadbench/internal/errors"
)

// Measurement errors.
var (
	// ErrInvalidPlan indicates the plan failed validation.
	ErrInvalidPlan = errors.Wrap(errors.ErrInvalidConfig, "invalid plan")

	// ErrInvalidRepetitions indicates a repetition count below one.
	ErrInvalidRepetitions = errors.Wrap(errors.ErrInvalidConfig, "repetitions must be positive")

	// ErrInvalidDirection indicates an unknown direction name.
	ErrInvalidDirection = errors.Wrap(errors.ErrInvalidConfig, "invalid direction")

	// ErrInvalidMode indicates an unknown mode name.
	ErrInvalidMode = errors.Wrap(errors.ErrInvalidConfig, "invalid mode")

	// ErrSingleAlgorithmRequired indicates a single-shot plan naming more or less than one algorithm.
	ErrSingleAlgorithmRequired = errors.Wrap(errors.ErrInvalidConfig, "single-shot mode requires exactly one algorithm")

	// ErrCellFault indicates the primitive faulted inside a measurement cell.
	ErrCellFault = errors.Wrap(errors.ErrPrimitiveFault, "measurement cell aborted")
)
