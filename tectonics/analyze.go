package tectonics

import (
	"github.com/golang/geo/r3"

	"planetsim/geom"
)

// relativeSpeedFloor is the averaged relative speed below which a boundary
// is treated as inactive.
const relativeSpeedFloor = 1e-6

// classifyCos is the threshold on the convergent fraction of relative
// motion, cos(45 degrees): motion more than 45 degrees off the boundary
// normal classifies as transform.
const classifyCos = 0.707

// analyzeBoundaries classifies every boundary and computes its stress. For
// each shared edge the relative velocity of the two plates is sampled at
// the edge midpoint. Shared edges cross the boundary by construction (one
// endpoint on each plate), so the edge direction, taken from the A-side
// endpoint to the B-side endpoint and projected into the tangent plane,
// serves as the boundary normal. Averages over all edges decide the
// classification: a positive normal component of vA-vB means approach.
func (l *Lithosphere) analyzeBoundaries(vertices []r3.Vector) {
	for _, pair := range l.pairs {
		boundary := l.boundaries[pair]
		plateA := l.plates[pair.First]
		plateB := l.plates[pair.Second]

		var relSum, normalSum r3.Vector
		count := 0
		for _, e := range boundary.Edges {
			pa, pb := vertices[e.A], vertices[e.B]
			if l.owner[e.A] != pair.First {
				pa, pb = pb, pa
			}
			mid := geom.EdgeMidpoint(pa, pb)

			normal := geom.ProjectToTangent(pb.Sub(pa), mid)
			if normal.Norm() == 0 {
				continue
			}

			relSum = relSum.Add(plateA.VelocityAt(mid).Sub(plateB.VelocityAt(mid)))
			normalSum = normalSum.Add(normal.Normalize())
			count++
		}

		avgRel := relSum
		if count > 0 {
			avgRel = relSum.Mul(1 / float64(count))
		}
		relSpeed := avgRel.Norm()

		if count == 0 || relSpeed < relativeSpeedFloor || normalSum.Norm() == 0 {
			boundary.Type = Transform
			boundary.ConvergenceSpeed = 0
			boundary.TransformSpeed = 0
			boundary.RelativeSpeed = 0
			boundary.Stress = 0
			continue
		}

		normal := normalSum.Normalize()
		convergence := avgRel.Dot(normal)
		transform := avgRel.Sub(normal.Mul(convergence)).Norm()

		boundary.RelativeSpeed = relSpeed
		boundary.ConvergenceSpeed = convergence
		boundary.TransformSpeed = transform

		switch {
		case convergence > relSpeed*classifyCos:
			boundary.Type = Convergent
		case convergence < -relSpeed*classifyCos:
			boundary.Type = Divergent
		default:
			boundary.Type = Transform
		}

		boundary.Stress = l.boundaryStress(boundary, plateA, plateB)
	}
}

// boundaryStress scales with the dominant motion component: collisions
// stress crust hardest, continental collisions hardest of all, rifts the
// least.
func (l *Lithosphere) boundaryStress(b *Boundary, plateA, plateB *Plate) float64 {
	var stress float64
	switch b.Type {
	case Convergent:
		stress = 2 * abs(b.ConvergenceSpeed)
		if plateA.Type == Continental && plateB.Type == Continental {
			stress *= 1.5
		}
	case Divergent:
		stress = 0.5 * abs(b.ConvergenceSpeed)
	case Transform:
		stress = b.TransformSpeed
	}
	return stress * 10
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
