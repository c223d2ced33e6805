package tectonics

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planetsim/mesh"
)

func TestDetectBoundariesOctahedron(t *testing.T) {
	m := mesh.NewOctahedron()
	l := NewLithosphere(DefaultParams())
	installPlates(l, m.VertexCount(),
		newTestPlate(0, Continental, r3.Vector{X: 1}),
		newTestPlate(1, Oceanic, r3.Vector{X: -1}))

	l.assignVertices(m.Positions)
	l.detectBoundaries(m.Indices)

	// Plate 1 owns only vertex 1, so the crossing edges are exactly the
	// four octahedron edges incident to it.
	require.Len(t, l.Boundaries(), 1)
	boundary := l.Boundaries()[0]

	assert.Equal(t, PlatePair{First: 0, Second: 1}, boundary.Plates)
	assert.Equal(t, []Edge{{A: 1, B: 2}, {A: 1, B: 3}, {A: 1, B: 4}, {A: 1, B: 5}}, boundary.Edges)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, boundary.Vertices)

	assert.Equal(t, []PlatePair{boundary.Plates}, l.plates[0].Boundaries)
	assert.Equal(t, []PlatePair{boundary.Plates}, l.plates[1].Boundaries)
}

func TestDetectBoundariesEveryEdgeCrossesPlates(t *testing.T) {
	m := testIcosphere(t, 2)
	l := NewLithosphere(DefaultParams())
	require.NoError(t, l.CreatePlates(m.Positions))
	require.True(t, l.Update(0.5, m.Positions, m.Indices))

	pairsSeen := make(map[PlatePair]bool)
	for _, b := range l.Boundaries() {
		assert.False(t, pairsSeen[b.Plates], "duplicate boundary for %v", b.Plates)
		pairsSeen[b.Plates] = true

		for _, e := range b.Edges {
			ownerA := l.PlateOf(int(e.A))
			ownerB := l.PlateOf(int(e.B))
			assert.NotEqual(t, ownerA, ownerB)
			assert.Equal(t, b.Plates, MakePlatePair(ownerA, ownerB))
			assert.Less(t, e.A, e.B, "edges must be canonicalized")
		}
	}
}

func TestDetectBoundariesClearsPreviousState(t *testing.T) {
	m := mesh.NewOctahedron()
	l := NewLithosphere(DefaultParams())
	installPlates(l, m.VertexCount(),
		newTestPlate(0, Continental, r3.Vector{X: 1}),
		newTestPlate(1, Oceanic, r3.Vector{X: -1}))

	l.assignVertices(m.Positions)
	l.detectBoundaries(m.Indices)
	require.Len(t, l.Boundaries(), 1)

	// Hand the whole sphere to plate 0; stale boundaries must vanish.
	l.plates[1].Center = r3.Vector{X: 0.999, Y: 0.01}.Normalize()
	l.plates[0].Center = r3.Vector{X: 1}
	l.assignVertices(m.Positions)
	for i := range l.owner {
		l.owner[i] = 0
	}
	l.detectBoundaries(m.Indices)

	assert.Empty(t, l.Boundaries())
	assert.Empty(t, l.plates[0].Boundaries)
	assert.Empty(t, l.plates[1].Boundaries)
}

func TestDetectBoundariesSkipsMalformedIndices(t *testing.T) {
	m := mesh.NewOctahedron()
	l := NewLithosphere(DefaultParams())
	installPlates(l, m.VertexCount(),
		newTestPlate(0, Continental, r3.Vector{X: 1}),
		newTestPlate(1, Oceanic, r3.Vector{X: -1}))
	l.assignVertices(m.Positions)

	// A triangle referencing vertices outside the mesh must be ignored,
	// not crash or contribute edges.
	indices := append([]int32{}, m.Indices...)
	indices = append(indices, 0, 1, 99)

	assert.NotPanics(t, func() { l.detectBoundaries(indices) })
	for _, b := range l.Boundaries() {
		for _, e := range b.Edges {
			assert.Less(t, int(e.B), m.VertexCount())
		}
	}
}
