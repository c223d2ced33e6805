package mesh

import (
	"math"

	"github.com/golang/geo/r3"
)

// NewIcosphere builds an icosphere by subdividing an icosahedron the given
// number of times. Vertex spacing is close to uniform, which keeps plate
// areas comparable across the sphere; each subdivision multiplies the
// triangle count by four.
func NewIcosphere(subdivisions int) *Mesh {
	t := (1.0 + math.Sqrt(5.0)) / 2.0

	positions := []r3.Vector{
		{X: -1, Y: t, Z: 0}, {X: 1, Y: t, Z: 0}, {X: -1, Y: -t, Z: 0}, {X: 1, Y: -t, Z: 0},
		{X: 0, Y: -1, Z: t}, {X: 0, Y: 1, Z: t}, {X: 0, Y: -1, Z: -t}, {X: 0, Y: 1, Z: -t},
		{X: t, Y: 0, Z: -1}, {X: t, Y: 0, Z: 1}, {X: -t, Y: 0, Z: -1}, {X: -t, Y: 0, Z: 1},
	}

	indices := []int32{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	for i := 0; i < subdivisions; i++ {
		positions, indices = subdivide(positions, indices)
	}

	m := &Mesh{Indices: indices}
	for _, p := range positions {
		unit := p.Normalize()
		m.Positions = append(m.Positions, unit)
		m.Normals = append(m.Normals, unit)
		m.LatLon = append(m.LatLon, latLonOf(unit))
		ll := m.LatLon[len(m.LatLon)-1]
		m.TexCoords = append(m.TexCoords, [2]float64{
			ll[1]/(2*math.Pi) + 0.5,
			0.5 - ll[0]/math.Pi,
		})
	}

	return m
}

// subdivide splits every triangle into four, caching edge midpoints so
// shared edges produce a single new vertex.
func subdivide(positions []r3.Vector, indices []int32) ([]r3.Vector, []int32) {
	midpoints := make(map[[2]int32]int32)
	newPositions := make([]r3.Vector, len(positions))
	copy(newPositions, positions)
	var newIndices []int32

	getMidpoint := func(i1, i2 int32) int32 {
		key := [2]int32{i1, i2}
		if i1 > i2 {
			key = [2]int32{i2, i1}
		}
		if mid, ok := midpoints[key]; ok {
			return mid
		}

		a, b := positions[i1], positions[i2]
		newPositions = append(newPositions, a.Add(b).Mul(0.5))
		midpoints[key] = int32(len(newPositions) - 1)
		return midpoints[key]
	}

	for i := 0; i < len(indices); i += 3 {
		v1, v2, v3 := indices[i], indices[i+1], indices[i+2]
		m1 := getMidpoint(v1, v2)
		m2 := getMidpoint(v2, v3)
		m3 := getMidpoint(v3, v1)

		newIndices = append(newIndices,
			v1, m1, m3,
			v2, m2, m1,
			v3, m3, m2,
			m1, m2, m3)
	}

	return newPositions, newIndices
}

// NewOctahedron returns the six-vertex octahedron sphere. It is mostly
// useful for tests and debugging where boundary sets can be checked by
// hand.
func NewOctahedron() *Mesh {
	positions := []r3.Vector{
		{X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0}, {X: 0, Y: -1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: -1},
	}

	indices := []int32{
		0, 2, 4, 2, 1, 4, 1, 3, 4, 3, 0, 4,
		2, 0, 5, 1, 2, 5, 3, 1, 5, 0, 3, 5,
	}

	m := &Mesh{Indices: indices}
	for _, p := range positions {
		m.Positions = append(m.Positions, p)
		m.Normals = append(m.Normals, p)
		m.LatLon = append(m.LatLon, latLonOf(p))
		m.TexCoords = append(m.TexCoords, [2]float64{0, 0})
	}
	return m
}
