// Package tectonics simulates a small set of rigid plates drifting over a
// sphere. Mesh vertices are assigned to the nearest plate, edges where
// ownership changes are collected into boundaries, boundaries are
// classified from the plates' relative motion, and per-vertex crust
// thickness and age evolve from the boundary interactions. The package
// never touches vertex positions; it only attaches simulation state to
// vertex indices supplied by the caller.
package tectonics

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/golang/geo/r3"

	"planetsim/geom"
)

// Lithosphere owns the plates, the canonical boundary store, and the
// random source. It is not safe for concurrent use: callers must serialize
// CreatePlates/Update and must not read plate state while an update runs.
type Lithosphere struct {
	params Params
	rng    *rand.Rand
	noise  *perlin.Perlin
	log    *slog.Logger

	plates     []*Plate
	owner      []int // vertex index -> plate id, -1 before creation
	boundaries map[PlatePair]*Boundary
	pairs      []PlatePair // sorted keys of boundaries, fixed iteration order
	hotspots   []Hotspot

	created bool
	time    float64
}

// NewLithosphere builds an empty lithosphere. Plates do not exist until
// CreatePlates runs.
func NewLithosphere(params Params) *Lithosphere {
	return &Lithosphere{
		params:     params,
		rng:        rand.New(rand.NewSource(params.Seed)),
		noise:      perlin.NewPerlin(2, 2, 3, params.Seed),
		log:        slog.Default(),
		boundaries: make(map[PlatePair]*Boundary),
	}
}

// SetLogger replaces the diagnostic logger, which defaults to
// slog.Default().
func (l *Lithosphere) SetLogger(logger *slog.Logger) {
	if logger != nil {
		l.log = logger
	}
}

// CreatePlates generates plate centers, assigns every vertex to its
// nearest plate, initializes crust thickness and age, and gives each plate
// a random tangential movement and rotation rate. It may only run once per
// Lithosphere. Fewer plates than requested are created when center
// sampling cannot satisfy the minimum separation; that shortfall is logged,
// not returned as an error.
func (l *Lithosphere) CreatePlates(vertices []r3.Vector) error {
	if l.created {
		return errors.New("tectonics: plates already created")
	}
	if l.params.NumPlates <= 0 || len(vertices) == 0 {
		// Degenerate setup is a valid no-op world.
		l.created = true
		l.owner = make([]int, len(vertices))
		for i := range l.owner {
			l.owner[i] = -1
		}
		return nil
	}

	centers := l.generateCenters(l.params.NumPlates)

	for i, c := range centers {
		plateType := Oceanic
		if l.rng.Float64() < l.params.ContinentalFraction {
			plateType = Continental
		}
		l.plates = append(l.plates, &Plate{
			ID:        i,
			Type:      plateType,
			Center:    c,
			Thickness: make(map[int]float64),
			Age:       make(map[int]float64),
		})
	}

	l.assignVertices(vertices)
	l.initializeCrust(vertices)

	for _, p := range l.plates {
		speed := l.params.MinPlateSpeed +
			l.rng.Float64()*(l.params.MaxPlateSpeed-l.params.MinPlateSpeed)
		p.Movement = geom.RandomTangent(l.rng, p.Center, speed)
		p.RotationRate = (l.rng.Float64()*2 - 1) * l.params.MaxRotationRate
	}

	if l.params.HotspotCount > 0 {
		l.initHotspots()
	}

	l.recalculateMasses()
	l.created = true

	l.log.Info("plates created",
		"plates", len(l.plates),
		"vertices", len(vertices),
		"hotspots", len(l.hotspots))
	return nil
}

// Update advances the simulation by dt: move plates, reassign vertices,
// detect and analyze boundaries, evolve crust, recompute masses. The
// vertex and index buffers must describe the same mesh CreatePlates saw.
// Returns true when plate state changed, so callers know to rebuild any
// cached geometry.
func (l *Lithosphere) Update(dt float64, vertices []r3.Vector, indices []int32) bool {
	if !l.created || len(l.plates) == 0 || len(vertices) == 0 || dt == 0 {
		return false
	}
	if len(vertices) != len(l.owner) {
		panic(fmt.Sprintf("tectonics: mesh changed size under the simulation: %d vertices, expected %d",
			len(vertices), len(l.owner)))
	}

	l.movePlates(dt)
	l.assignVertices(vertices)
	l.detectBoundaries(indices)
	l.analyzeBoundaries(vertices)
	l.evolveCrust(dt, vertices)
	l.recalculateMasses()

	l.time += dt
	return true
}

// movePlates transports each center along its movement great circle and
// spins the movement vector by the plate's rotation rate. Center stays
// unit length and Movement stays tangent.
func (l *Lithosphere) movePlates(dt float64) {
	for _, p := range l.plates {
		speed := p.Movement.Norm()
		if speed > 0 {
			axis := p.Center.Cross(p.Movement)
			angle := speed * dt
			p.Center = geom.RotateAround(p.Center, axis, angle).Normalize()
			moved := geom.RotateAround(p.Movement, axis, angle)
			tangent := geom.ProjectToTangent(moved, p.Center)
			if n := tangent.Norm(); n > 0 {
				p.Movement = tangent.Mul(speed / n)
			}
		}
		if p.RotationRate != 0 {
			p.Movement = geom.ProjectToTangent(
				geom.RotateAround(p.Movement, p.Center, p.RotationRate*dt), p.Center)
		}
	}
}

// recalculateMasses sums owned thickness per plate. Vertex area weighting
// is deliberately ignored; mass is a relative quantity here.
func (l *Lithosphere) recalculateMasses() {
	for _, p := range l.plates {
		total := 0.0
		for _, v := range p.Vertices {
			total += p.Thickness[v]
		}
		p.TotalMass = total
	}
}

// Plates returns the plate list ordered by ascending id. Callers must not
// mutate it.
func (l *Lithosphere) Plates() []*Plate {
	return l.plates
}

// PlateOf returns the id of the plate owning the vertex, or -1 if the
// index is out of range or no plates exist.
func (l *Lithosphere) PlateOf(vertex int) int {
	if vertex < 0 || vertex >= len(l.owner) || len(l.plates) == 0 {
		return -1
	}
	return l.owner[vertex]
}

// Boundaries returns the canonical boundary records ordered by plate pair.
func (l *Lithosphere) Boundaries() []*Boundary {
	out := make([]*Boundary, 0, len(l.pairs))
	for _, pair := range l.pairs {
		out = append(out, l.boundaries[pair])
	}
	return out
}

// BoundaryBetween looks up the boundary for two plate ids in either order.
func (l *Lithosphere) BoundaryBetween(a, b int) (*Boundary, bool) {
	boundary, ok := l.boundaries[MakePlatePair(a, b)]
	return boundary, ok
}

// Hotspots returns the mantle hotspots, if any were configured.
func (l *Lithosphere) Hotspots() []Hotspot {
	return l.hotspots
}

// Time returns accumulated simulation time.
func (l *Lithosphere) Time() float64 {
	return l.time
}

// Params returns the parameters the lithosphere was built with.
func (l *Lithosphere) Params() Params {
	return l.params
}
