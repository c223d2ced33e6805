package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
)

func TestAngleBetween(t *testing.T) {
	x := r3.Vector{X: 1}
	y := r3.Vector{Y: 1}

	assert.InDelta(t, math.Pi/2, AngleBetween(x, y), 1e-12)
	assert.InDelta(t, 0, AngleBetween(x, x), 1e-12)
	assert.InDelta(t, math.Pi, AngleBetween(x, r3.Vector{X: -1}), 1e-12)
}

func TestAngleBetweenNearAntipodal(t *testing.T) {
	// acos(dot) would collapse these to exactly pi; the atan2 form keeps
	// the small deviation.
	a := r3.Vector{X: 1}
	b := r3.Vector{X: -1, Y: 1e-8}.Normalize()

	angle := AngleBetween(a, b)
	assert.Less(t, angle, math.Pi)
	assert.Greater(t, angle, math.Pi-1e-7)
}

func TestRotateAround(t *testing.T) {
	v := r3.Vector{X: 1}
	z := r3.Vector{Z: 1}

	rotated := RotateAround(v, z, math.Pi/2)
	assert.InDelta(t, 0, rotated.X, 1e-12)
	assert.InDelta(t, 1, rotated.Y, 1e-12)
	assert.InDelta(t, 0, rotated.Z, 1e-12)

	// Length is preserved for any axis and angle.
	axis := r3.Vector{X: 0.3, Y: -1.2, Z: 0.5}
	rotated = RotateAround(v, axis, 1.234)
	assert.InDelta(t, 1, rotated.Norm(), 1e-12)
}

func TestProjectToTangent(t *testing.T) {
	p := r3.Vector{X: 0.5, Y: 0.5, Z: math.Sqrt(0.5)}.Normalize()
	v := r3.Vector{X: 1, Y: 2, Z: 3}

	tangent := ProjectToTangent(v, p)
	assert.InDelta(t, 0, tangent.Dot(p), 1e-12)
}

func TestTangentBasis(t *testing.T) {
	points := []r3.Vector{
		{X: 1}, {Y: 1}, {Z: 1},
		r3.Vector{X: 0, Y: 0.999, Z: 0.0447}.Normalize(), // near the pole fallback axis
	}
	for _, p := range points {
		t1, t2 := TangentBasis(p)
		assert.InDelta(t, 1, t1.Norm(), 1e-12)
		assert.InDelta(t, 1, t2.Norm(), 1e-12)
		assert.InDelta(t, 0, t1.Dot(p), 1e-12)
		assert.InDelta(t, 0, t2.Dot(p), 1e-12)
		assert.InDelta(t, 0, t1.Dot(t2), 1e-12)
	}
}

func TestRandomTangent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := r3.Vector{X: 0.2, Y: -0.9, Z: 0.4}.Normalize()

	for i := 0; i < 50; i++ {
		v := RandomTangent(rng, p, 0.02)
		assert.InDelta(t, 0.02, v.Norm(), 1e-12)
		assert.InDelta(t, 0, v.Dot(p), 1e-12)
	}
}

func TestEdgeMidpoint(t *testing.T) {
	a := r3.Vector{X: 1}
	b := r3.Vector{Y: 1}

	mid := EdgeMidpoint(a, b)
	assert.InDelta(t, 1, mid.Norm(), 1e-12)
	assert.InDelta(t, AngleBetween(a, mid), AngleBetween(b, mid), 1e-12)

	// Antipodal endpoints fall back to the first endpoint.
	assert.Equal(t, a, EdgeMidpoint(a, r3.Vector{X: -1}))
}
