package tectonics

import "github.com/golang/geo/r3"

// PlateType distinguishes thick buoyant continental crust from thin dense
// oceanic crust.
type PlateType int

const (
	Continental PlateType = iota
	Oceanic
)

func (t PlateType) String() string {
	switch t {
	case Continental:
		return "continental"
	case Oceanic:
		return "oceanic"
	default:
		return "unknown"
	}
}

// Plate is one rigid tectonic plate. Center is always unit length and
// Movement always lies in the tangent plane at Center; both are maintained
// by the Lithosphere on every update.
//
// Vertices, Thickness, and Age describe the crust the plate currently owns.
// Ownership is recomputed every step; when a vertex changes hands its
// thickness and age move with it, so exactly one plate holds an entry for
// any vertex at any time.
type Plate struct {
	ID           int
	Type         PlateType
	Center       r3.Vector
	Movement     r3.Vector
	RotationRate float64

	Vertices  []int
	Thickness map[int]float64
	Age       map[int]float64
	TotalMass float64

	// Boundaries holds the keys of the canonical boundary records this
	// plate participates in. The records themselves live on the
	// Lithosphere.
	Boundaries []PlatePair
}

// VelocityAt returns the plate's surface velocity at a unit point: the
// tangential movement plus the spin contribution about the center axis.
func (p *Plate) VelocityAt(point r3.Vector) r3.Vector {
	return p.Movement.Add(p.Center.Cross(point).Mul(p.RotationRate))
}
