// Package mesh generates the sphere meshes the simulation runs on. The
// simulation core never owns a mesh; it only reads positions and triangle
// indices supplied per step.
package mesh

import (
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// Mesh is a triangulated sphere. Positions are unit vectors; Indices holds
// triangle vertex indices in groups of three. Normals equal positions for a
// unit sphere and are kept separate so callers can displace positions
// without losing them. LatLon stores per-vertex latitude/longitude in
// radians for callers that want to texture or export by coordinates.
type Mesh struct {
	Positions []r3.Vector
	Normals   []r3.Vector
	TexCoords [][2]float64
	LatLon    [][2]float64
	Indices   []int32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func latLonOf(p r3.Vector) [2]float64 {
	ll := s2.LatLngFromPoint(s2.Point{Vector: p})
	return [2]float64{ll.Lat.Radians(), ll.Lng.Radians()}
}
