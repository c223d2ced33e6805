// Package geom provides the small set of spherical-geometry helpers shared
// by the mesh generator and the tectonic simulation. All positions are unit
// vectors on the sphere unless noted otherwise.
package geom

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// AngleBetween returns the great-circle angle between two directions in
// radians. r3's Angle is atan2-based, which stays accurate for nearly
// parallel and nearly antipodal pairs where acos(dot) loses precision.
func AngleBetween(a, b r3.Vector) float64 {
	return a.Angle(b).Radians()
}

// RotateAround rotates v by angle radians about the given axis. The axis
// does not need to be unit length.
func RotateAround(v, axis r3.Vector, angle float64) r3.Vector {
	n := axis.Norm()
	if n == 0 || angle == 0 {
		return v
	}
	q := mgl64.QuatRotate(angle, mgl64.Vec3{axis.X / n, axis.Y / n, axis.Z / n})
	out := q.Rotate(mgl64.Vec3{v.X, v.Y, v.Z})
	return r3.Vector{X: out.X(), Y: out.Y(), Z: out.Z()}
}

// ProjectToTangent removes the radial component of v at the unit point p,
// leaving the part of v that lies in the tangent plane.
func ProjectToTangent(v, p r3.Vector) r3.Vector {
	return v.Sub(p.Mul(v.Dot(p)))
}

// TangentBasis returns two orthonormal vectors spanning the tangent plane
// at the unit point p.
func TangentBasis(p r3.Vector) (r3.Vector, r3.Vector) {
	up := r3.Vector{X: 0, Y: 1, Z: 0}
	if math.Abs(p.Dot(up)) > 0.9 {
		up = r3.Vector{X: 1, Y: 0, Z: 0}
	}
	t1 := up.Cross(p).Normalize()
	t2 := p.Cross(t1).Normalize()
	return t1, t2
}

// RandomTangent returns a tangent vector at p with the given magnitude and
// a direction drawn uniformly from the tangent plane.
func RandomTangent(rng *rand.Rand, p r3.Vector, magnitude float64) r3.Vector {
	t1, t2 := TangentBasis(p)
	theta := rng.Float64() * 2 * math.Pi
	return t1.Mul(math.Cos(theta) * magnitude).Add(t2.Mul(math.Sin(theta) * magnitude))
}

// EdgeMidpoint returns the midpoint of the chord between two unit points,
// projected back onto the unit sphere.
func EdgeMidpoint(a, b r3.Vector) r3.Vector {
	m := a.Add(b)
	if m.Norm() == 0 {
		// Antipodal endpoints have no well-defined midpoint; fall back to a.
		return a
	}
	return m.Normalize()
}
