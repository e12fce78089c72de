package domain

import (
	validation "github.com/jellydator/validation"

	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
	"github.com/allisson/aeadbench/internal/errors"
	customValidation "github.com/allisson/aeadbench/internal/validation"
)

// Plan is the configuration of one campaign: which cells to measure and how.
type Plan struct {
	Algorithms           []aeadDomain.Algorithm
	Sizes                []int
	Repetitions          int
	Mode                 Mode
	Direction            Direction
	CyclesPerMicrosecond float64
	MaxMessageSize       int
}

// NewDefaultPlan returns the reference campaign over every compiled-in algorithm.
func NewDefaultPlan() Plan {
	sizes := make([]int, len(DefaultSizes))
	copy(sizes, DefaultSizes)

	return Plan{
		Algorithms:           aeadDomain.All(),
		Sizes:                sizes,
		Repetitions:          DefaultRepetitions,
		Mode:                 ModeThroughputAverage,
		Direction:            Encrypt,
		CyclesPerMicrosecond: DefaultCyclesPerMicrosecond,
		MaxMessageSize:       DefaultMaxMessageSize,
	}
}

// Validate checks the plan. Every failure is a configuration error raised before any
// timing starts.
func (p *Plan) Validate() error {
	if p.Repetitions <= 0 {
		return ErrInvalidRepetitions
	}

	err := validation.ValidateStruct(p,
		validation.Field(&p.Algorithms,
			validation.Required,
			validation.Each(customValidation.KnownAlgorithm),
		),
		validation.Field(&p.Sizes,
			validation.Required,
			validation.Each(validation.Min(0), validation.Max(p.MaxMessageSize)),
		),
		validation.Field(&p.Mode,
			validation.Required,
			validation.In(ModeThroughputAverage, ModeSingleShotPowerProfile),
		),
		validation.Field(&p.Direction,
			validation.Required,
			validation.In(Encrypt, Decrypt),
		),
		validation.Field(&p.CyclesPerMicrosecond, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&p.MaxMessageSize, validation.Min(0)),
	)
	if err != nil {
		return errors.Wrap(ErrInvalidPlan, err.Error())
	}

	if p.Mode == ModeSingleShotPowerProfile && len(p.Algorithms) != 1 {
		return ErrSingleAlgorithmRequired
	}
	return nil
}
