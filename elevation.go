package main

import (
	"planetsim/mesh"
	"planetsim/tectonics"
)

// Display elevation tuning. These shape the viewer's terrain only; the
// simulation core knows nothing about elevation.
const (
	continentalBaseElevation = 0.01
	oceanicBaseElevation     = -0.02
	thicknessElevationScale  = 0.04
	convergentBoundaryLift   = 0.002
	divergentBoundaryDrop    = 0.001
	neighborFalloff          = 0.5
)

// elevationShader derives a per-vertex display elevation from the plate
// state: a base level per plate type, a contribution from crust thickness,
// and a lift/drop near convergent/divergent boundaries that falls off over
// one neighbor ring.
type elevationShader struct {
	neighbors map[int][]int
}

func newElevationShader(m *mesh.Mesh) *elevationShader {
	return &elevationShader{neighbors: buildNeighborCache(m)}
}

// buildNeighborCache maps every vertex to the vertices it shares a
// triangle edge with.
func buildNeighborCache(m *mesh.Mesh) map[int][]int {
	sets := make(map[int]map[int]struct{})
	add := func(a, b int32) {
		if sets[int(a)] == nil {
			sets[int(a)] = make(map[int]struct{})
		}
		sets[int(a)][int(b)] = struct{}{}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		v1, v2, v3 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		add(v1, v2)
		add(v1, v3)
		add(v2, v1)
		add(v2, v3)
		add(v3, v1)
		add(v3, v2)
	}

	neighbors := make(map[int][]int, len(sets))
	for v, set := range sets {
		for n := range set {
			neighbors[v] = append(neighbors[v], n)
		}
	}
	return neighbors
}

// Elevations computes a display elevation for every vertex of the mesh the
// lithosphere runs on.
func (s *elevationShader) Elevations(l *tectonics.Lithosphere, numVertices int) []float64 {
	elevations := make([]float64, numVertices)

	for _, p := range l.Plates() {
		base := oceanicBaseElevation
		typeThickness := l.Params().OceanicThickness
		if p.Type == tectonics.Continental {
			base = continentalBaseElevation
			typeThickness = l.Params().ContinentalThickness
		}
		for _, v := range p.Vertices {
			elevations[v] = base + (p.Thickness[v]-typeThickness)*thicknessElevationScale
		}
	}

	// Boundary relief: full effect on boundary vertices, half on their
	// immediate neighbors.
	deltas := make(map[int]float64)
	for _, b := range l.Boundaries() {
		var delta float64
		switch b.Type {
		case tectonics.Convergent:
			delta = convergentBoundaryLift * b.Stress
		case tectonics.Divergent:
			delta = -divergentBoundaryDrop * b.Stress
		default:
			continue
		}

		for _, v := range b.Vertices {
			if abs(deltas[v]) < abs(delta) {
				deltas[v] = delta
			}
			for _, n := range s.neighbors[v] {
				falloff := delta * neighborFalloff
				if abs(deltas[n]) < abs(falloff) {
					deltas[n] = falloff
				}
			}
		}
	}

	for v, d := range deltas {
		if v < numVertices {
			elevations[v] += d
		}
	}
	return elevations
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
