package tectonics

import (
	"math"

	"github.com/golang/geo/r3"

	"planetsim/geom"
)

// generateCenters rejection-samples up to n unit vectors whose pairwise
// great-circle angle exceeds the minimum separation. The separation scales
// as sqrt(4*pi/n) so the target count roughly tiles the sphere. The attempt
// budget is n*100; when it runs out the shortfall is logged and the centers
// accepted so far are returned.
func (l *Lithosphere) generateCenters(n int) []r3.Vector {
	minAngle := l.params.MinSeparationFactor * math.Sqrt(4*math.Pi/float64(n))
	maxAttempts := n * 100

	centers := make([]r3.Vector, 0, n)
	for attempt := 0; attempt < maxAttempts && len(centers) < n; attempt++ {
		v := r3.Vector{
			X: l.rng.Float64()*2 - 1,
			Y: l.rng.Float64()*2 - 1,
			Z: l.rng.Float64()*2 - 1,
		}
		if v.Norm() < 1e-9 {
			continue
		}
		candidate := v.Normalize()

		ok := true
		for _, c := range centers {
			if geom.AngleBetween(candidate, c) < minAngle {
				ok = false
				break
			}
		}
		if ok {
			centers = append(centers, candidate)
		}
	}

	if len(centers) < n {
		l.log.Warn("plate center sampling budget exhausted",
			"requested", n,
			"accepted", len(centers),
			"minAngle", minAngle)
	}
	return centers
}
