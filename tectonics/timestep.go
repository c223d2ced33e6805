package tectonics

import "math"

// AdaptiveTimeStep picks a step size from current boundary stress: small
// steps while plates are colliding hard, large steps while the planet is
// quiet. The host loop owns one of these; the core itself accepts whatever
// dt it is given.
type AdaptiveTimeStep struct {
	MinStep         float64
	MaxStep         float64
	CurrentStep     float64
	StressThreshold float64
	LastMaxStress   float64
}

// NewAdaptiveTimeStep returns a stepper with conservative defaults in
// simulation time units.
func NewAdaptiveTimeStep() *AdaptiveTimeStep {
	return &AdaptiveTimeStep{
		MinStep:         0.001,
		MaxStep:         1.0,
		CurrentStep:     0.001,
		StressThreshold: 0.5,
	}
}

// NextStep returns the step to use, starting from the requested step and
// shrinking or growing it based on the lithosphere's peak boundary stress.
func (a *AdaptiveTimeStep) NextStep(l *Lithosphere, requested float64) float64 {
	maxStress := MaxBoundaryStress(l)
	a.LastMaxStress = maxStress

	switch {
	case maxStress > a.StressThreshold:
		a.CurrentStep = math.Max(a.MinStep, requested*0.1)
	case maxStress < a.StressThreshold*0.5:
		a.CurrentStep = math.Min(a.MaxStep, requested*2)
	default:
		a.CurrentStep = requested
	}

	a.CurrentStep = math.Max(a.MinStep, math.Min(a.MaxStep, a.CurrentStep))
	return a.CurrentStep
}

// MaxBoundaryStress returns the highest stress across all current
// boundaries, zero when there are none.
func MaxBoundaryStress(l *Lithosphere) float64 {
	maxStress := 0.0
	for _, b := range l.Boundaries() {
		if b.Stress > maxStress {
			maxStress = b.Stress
		}
	}
	return maxStress
}
