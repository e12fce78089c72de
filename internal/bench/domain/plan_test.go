package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
	"github.com/allisson/aeadbench/internal/errors"
)

func TestNewDefaultPlan(t *testing.T) {
	plan := NewDefaultPlan()

	assert.Equal(t, aeadDomain.All(), plan.Algorithms)
	assert.Equal(t, []int{16, 32, 64, 128, 256, 512}, plan.Sizes)
	assert.Equal(t, 200, plan.Repetitions)
	assert.Equal(t, 16.0, plan.CyclesPerMicrosecond)
	assert.NoError(t, plan.Validate())

	plan.Sizes[0] = 1
	assert.Equal(t, 16, DefaultSizes[0])
}

func TestPlan_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Plan)
		wantErr error
	}{
		{
			name:    "zero repetitions",
			mutate:  func(p *Plan) { p.Repetitions = 0 },
			wantErr: ErrInvalidRepetitions,
		},
		{
			name:    "negative repetitions",
			mutate:  func(p *Plan) { p.Repetitions = -5 },
			wantErr: ErrInvalidRepetitions,
		},
		{
			name:    "no algorithms",
			mutate:  func(p *Plan) { p.Algorithms = nil },
			wantErr: ErrInvalidPlan,
		},
		{
			name:    "unknown algorithm",
			mutate:  func(p *Plan) { p.Algorithms = []aeadDomain.Algorithm{"rc4"} },
			wantErr: ErrInvalidPlan,
		},
		{
			name:    "no sizes",
			mutate:  func(p *Plan) { p.Sizes = []int{} },
			wantErr: ErrInvalidPlan,
		},
		{
			name:    "size above arena",
			mutate:  func(p *Plan) { p.Sizes = []int{16, 1024} },
			wantErr: ErrInvalidPlan,
		},
		{
			name:    "negative size",
			mutate:  func(p *Plan) { p.Sizes = []int{-1} },
			wantErr: ErrInvalidPlan,
		},
		{
			name:    "unknown direction",
			mutate:  func(p *Plan) { p.Direction = "sideways" },
			wantErr: ErrInvalidPlan,
		},
		{
			name:    "zero clock",
			mutate:  func(p *Plan) { p.CyclesPerMicrosecond = 0 },
			wantErr: ErrInvalidPlan,
		},
		{
			name:    "single shot with many algorithms",
			mutate:  func(p *Plan) { p.Mode = ModeSingleShotPowerProfile },
			wantErr: ErrSingleAlgorithmRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := NewDefaultPlan()
			tt.mutate(&plan)

			err := plan.Validate()
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, errors.ErrInvalidConfig)
		})
	}

	t.Run("single shot with one algorithm", func(t *testing.T) {
		plan := NewDefaultPlan()
		plan.Mode = ModeSingleShotPowerProfile
		plan.Algorithms = []aeadDomain.Algorithm{aeadDomain.AES128GCM}
		plan.Sizes = []int{16}
		assert.NoError(t, plan.Validate())
	})
}
