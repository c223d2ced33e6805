package mesh

import (
	"math"

	"github.com/golang/geo/r3"
)

// NewUVSphere builds a UV sphere with the given ring and segment counts.
// Vertices are laid out ring by ring with segments+1 vertices per ring so
// texture coordinates can wrap without seams; positions are unit length.
func NewUVSphere(rings, segments int) *Mesh {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}

	m := &Mesh{}

	for ring := 0; ring <= rings; ring++ {
		theta := float64(ring) * math.Pi / float64(rings)
		sinTheta := math.Sin(theta)
		cosTheta := math.Cos(theta)

		for seg := 0; seg <= segments; seg++ {
			phi := float64(seg) * 2 * math.Pi / float64(segments)

			p := r3.Vector{
				X: math.Cos(phi) * sinTheta,
				Y: cosTheta,
				Z: math.Sin(phi) * sinTheta,
			}

			m.Positions = append(m.Positions, p)
			m.Normals = append(m.Normals, p)
			m.TexCoords = append(m.TexCoords, [2]float64{
				float64(seg) / float64(segments),
				float64(ring) / float64(rings),
			})
			m.LatLon = append(m.LatLon, latLonOf(p))
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := int32(ring*(segments+1) + seg)
			next := current + int32(segments) + 1

			m.Indices = append(m.Indices, current, next, current+1)
			m.Indices = append(m.Indices, current+1, next, next+1)
		}
	}

	return m
}
