package tectonics

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planetsim/mesh"
)

// crustFixture sets up the two-plate octahedron split (plate 0 owns
// everything but vertex 1) with uniform unit thickness and zero age, then
// forces the single boundary into the given state. Boundary vertices are
// 1 through 5; vertex 0 is the only interior vertex.
func crustFixture(t *testing.T, typeA, typeB PlateType, bType BoundaryType, convergence, stress float64) (*Lithosphere, *mesh.Mesh) {
	t.Helper()
	m := mesh.NewOctahedron()
	l := NewLithosphere(DefaultParams())
	installPlates(l, m.VertexCount(),
		newTestPlate(0, typeA, r3.Vector{X: 1}),
		newTestPlate(1, typeB, r3.Vector{X: -1}))

	l.assignVertices(m.Positions)
	l.detectBoundaries(m.Indices)
	for _, p := range l.plates {
		for _, v := range p.Vertices {
			p.Thickness[v] = 1.0
			p.Age[v] = 0
		}
	}

	require.Len(t, l.Boundaries(), 1)
	b := l.Boundaries()[0]
	b.Type = bType
	b.ConvergenceSpeed = convergence
	b.Stress = stress
	return l, m
}

func TestEvolveCrustContinentalCollision(t *testing.T) {
	l, m := crustFixture(t, Continental, Continental, Convergent, 0.02, 0.9)
	params := l.Params()
	l.evolveCrust(1.0, m.Positions)

	// Both sides thicken at half the orogeny rate and reset their age.
	delta := params.OrogenyRate * 0.02 * 0.9 * 0.5
	for v := 1; v <= 5; v++ {
		p := l.plates[l.PlateOf(v)]
		assert.InDelta(t, 1.0+delta, p.Thickness[v], 1e-12, "vertex %d", v)
		assert.Zero(t, p.Age[v], "vertex %d", v)
	}

	// Interior crust just ages.
	assert.Equal(t, 1.0, l.plates[0].Thickness[0])
	assert.Equal(t, params.AgeIncreaseRate, l.plates[0].Age[0])
}

func TestEvolveCrustOceanicSubductsUnderContinental(t *testing.T) {
	l, m := crustFixture(t, Continental, Oceanic, Convergent, 0.02, 0.9)
	params := l.Params()
	l.evolveCrust(1.0, m.Positions)

	uplift := params.OrogenyRate * 0.02 * 0.9
	sink := params.SubductionRate * 0.02

	// Vertex 1 belongs to the oceanic plate and sinks; the continental
	// side of the boundary rises.
	assert.InDelta(t, 1.0-sink, l.plates[1].Thickness[1], 1e-12)
	for v := 2; v <= 5; v++ {
		assert.InDelta(t, 1.0+uplift, l.plates[0].Thickness[v], 1e-12, "vertex %d", v)
	}
	for v := 1; v <= 5; v++ {
		assert.Zero(t, l.plates[l.PlateOf(v)].Age[v])
	}
}

func TestEvolveCrustLowerIDSubductsBetweenOceanicPlates(t *testing.T) {
	l, m := crustFixture(t, Oceanic, Oceanic, Convergent, 0.02, 0.9)
	params := l.Params()
	l.evolveCrust(1.0, m.Positions)

	uplift := params.OrogenyRate * 0.02 * 0.9
	sink := params.SubductionRate * 0.02

	// Plate 0 has the lower id, so it goes under and plate 1 overrides.
	for v := 2; v <= 5; v++ {
		assert.InDelta(t, 1.0-sink, l.plates[0].Thickness[v], 1e-12, "vertex %d", v)
	}
	assert.InDelta(t, 1.0+uplift, l.plates[1].Thickness[1], 1e-12)
}

func TestEvolveCrustDivergentThinsAndRenews(t *testing.T) {
	l, m := crustFixture(t, Continental, Oceanic, Divergent, -0.015, 0.1)
	params := l.Params()

	// Pre-age the boundary so the reset is observable.
	for v := 1; v <= 5; v++ {
		l.plates[l.PlateOf(v)].Age[v] = 40
	}
	l.evolveCrust(1.0, m.Positions)

	thin := params.RiftingRate * 0.015
	for v := 1; v <= 5; v++ {
		p := l.plates[l.PlateOf(v)]
		assert.InDelta(t, 1.0-thin, p.Thickness[v], 1e-12, "vertex %d", v)
		assert.Zero(t, p.Age[v], "vertex %d", v)
	}
}

func TestEvolveCrustTransformLeavesThicknessAlone(t *testing.T) {
	l, m := crustFixture(t, Continental, Oceanic, Transform, 0, 0.2)
	params := l.Params()
	l.evolveCrust(1.0, m.Positions)

	// Transform slip does not build or destroy crust, and the boundary
	// vertices keep aging with the interiors.
	for _, p := range l.plates {
		for _, v := range p.Vertices {
			assert.Equal(t, 1.0, p.Thickness[v], "vertex %d", v)
			assert.Equal(t, params.AgeIncreaseRate, p.Age[v], "vertex %d", v)
		}
	}
}

func TestEvolveCrustClampsThickness(t *testing.T) {
	l, m := crustFixture(t, Continental, Oceanic, Convergent, 5.0, 10.0)
	params := l.Params()

	l.plates[1].Thickness[1] = params.MinThickness + 0.001
	l.evolveCrust(1.0, m.Positions)

	assert.Equal(t, params.MinThickness, l.plates[1].Thickness[1])
	for v := 2; v <= 5; v++ {
		assert.Equal(t, params.MaxThickness, l.plates[0].Thickness[v], "vertex %d", v)
	}
}
