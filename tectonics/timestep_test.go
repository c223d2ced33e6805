package tectonics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stressedLithosphere(stress float64) *Lithosphere {
	l := NewLithosphere(DefaultParams())
	installBoundary(l, &Boundary{
		Plates: PlatePair{First: 0, Second: 1},
		Stress: stress,
	})
	return l
}

func TestNextStepShrinksUnderHighStress(t *testing.T) {
	a := NewAdaptiveTimeStep()
	l := stressedLithosphere(0.9)

	step := a.NextStep(l, 0.5)
	assert.InDelta(t, 0.05, step, 1e-12)
	assert.Equal(t, 0.9, a.LastMaxStress)
}

func TestNextStepGrowsWhenQuiet(t *testing.T) {
	a := NewAdaptiveTimeStep()
	l := stressedLithosphere(0.1)

	assert.InDelta(t, 0.5, a.NextStep(l, 0.25), 1e-12)
	// Growth is capped at MaxStep.
	assert.Equal(t, a.MaxStep, a.NextStep(l, 0.8))
}

func TestNextStepHoldsInMidRange(t *testing.T) {
	a := NewAdaptiveTimeStep()
	l := stressedLithosphere(0.3)

	assert.Equal(t, 0.25, a.NextStep(l, 0.25))
}

func TestNextStepClampsToMinStep(t *testing.T) {
	a := NewAdaptiveTimeStep()
	l := stressedLithosphere(2.0)

	assert.Equal(t, a.MinStep, a.NextStep(l, 0.005))
}

func TestMaxBoundaryStress(t *testing.T) {
	l := NewLithosphere(DefaultParams())
	assert.Zero(t, MaxBoundaryStress(l))

	l.boundaries = map[PlatePair]*Boundary{
		{First: 0, Second: 1}: {Plates: PlatePair{First: 0, Second: 1}, Stress: 0.4},
		{First: 1, Second: 2}: {Plates: PlatePair{First: 1, Second: 2}, Stress: 0.7},
	}
	l.pairs = []PlatePair{{First: 0, Second: 1}, {First: 1, Second: 2}}
	assert.Equal(t, 0.7, MaxBoundaryStress(l))
}
