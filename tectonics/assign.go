package tectonics

import (
	"math"

	"github.com/golang/geo/r3"

	"planetsim/geom"
)

// assignVertices recomputes vertex ownership from scratch: every vertex
// goes to the plate whose center is nearest by great-circle angle, ties to
// the lowest plate id. Crust state migrates with the vertex, so a vertex
// that changes hands keeps its thickness and age on its new plate and the
// old plate drops the entries.
func (l *Lithosphere) assignVertices(vertices []r3.Vector) {
	if len(l.plates) == 0 {
		l.owner = make([]int, len(vertices))
		for i := range l.owner {
			l.owner[i] = -1
		}
		return
	}

	prevOwner := l.owner
	prevThickness := make([]map[int]float64, len(l.plates))
	prevAge := make([]map[int]float64, len(l.plates))
	for i, p := range l.plates {
		prevThickness[i] = p.Thickness
		prevAge[i] = p.Age
		p.Vertices = p.Vertices[:0]
		p.Thickness = make(map[int]float64, len(prevThickness[i]))
		p.Age = make(map[int]float64, len(prevAge[i]))
	}

	l.owner = make([]int, len(vertices))
	for i, v := range vertices {
		best := 0
		bestAngle := math.MaxFloat64
		for _, p := range l.plates {
			angle := geom.AngleBetween(v, p.Center)
			if angle < bestAngle {
				bestAngle = angle
				best = p.ID
			}
		}

		l.owner[i] = best
		plate := l.plates[best]
		plate.Vertices = append(plate.Vertices, i)

		if prevOwner != nil && i < len(prevOwner) && prevOwner[i] >= 0 {
			old := prevOwner[i]
			plate.Thickness[i] = prevThickness[old][i]
			plate.Age[i] = prevAge[old][i]
		}
	}
}

// initializeCrust sets the starting thickness and age for every owned
// vertex: a base value per plate type perturbed by low-frequency noise so
// plates do not start perfectly flat, age zero everywhere.
func (l *Lithosphere) initializeCrust(vertices []r3.Vector) {
	scale := l.params.NoiseScale
	for _, p := range l.plates {
		base := l.params.OceanicThickness
		if p.Type == Continental {
			base = l.params.ContinentalThickness
		}
		for _, i := range p.Vertices {
			v := vertices[i]
			n := l.noise.Noise3D(v.X*scale, v.Y*scale, v.Z*scale)
			p.Thickness[i] = clamp(base+n*l.params.ThicknessNoise,
				l.params.MinThickness, l.params.MaxThickness)
			p.Age[i] = 0
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
