package tectonics

import (
	"math"

	"github.com/golang/geo/r3"

	"planetsim/geom"
)

// Hotspot is a fixed mantle plume. Plates drift over it while it thickens
// the crust directly above, which is how island chains form.
type Hotspot struct {
	Position  r3.Vector
	Intensity float64
	Age       float64
}

// initHotspots scatters the configured number of hotspots uniformly over
// the sphere with random intensities in [0.5, 1.0).
func (l *Lithosphere) initHotspots() {
	l.hotspots = make([]Hotspot, 0, l.params.HotspotCount)
	for i := 0; i < l.params.HotspotCount; i++ {
		theta := l.rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*l.rng.Float64() - 1)
		l.hotspots = append(l.hotspots, Hotspot{
			Position: r3.Vector{
				X: math.Sin(phi) * math.Cos(theta),
				Y: math.Sin(phi) * math.Sin(theta),
				Z: math.Cos(phi),
			},
			Intensity: 0.5 + l.rng.Float64()*0.5,
		})
	}
}

// applyHotspots thickens crust within each hotspot's angular radius with
// linear falloff. Thin oceanic crust builds three times faster, so plumes
// under ocean floor pile up islands rather than gently padding continents.
func (l *Lithosphere) applyHotspots(dt float64, vertices []r3.Vector) {
	thinCrust := l.params.OceanicThickness * 1.5

	for h := range l.hotspots {
		hotspot := &l.hotspots[h]
		for i, v := range vertices {
			d := geom.AngleBetween(v, hotspot.Position)
			if d >= l.params.HotspotRadius {
				continue
			}

			uplift := hotspot.Intensity * l.params.HotspotRate * dt * (1 - d/l.params.HotspotRadius)
			p := l.plates[l.owner[i]]
			if p.Thickness[i] < thinCrust {
				uplift *= 3
			}
			p.Thickness[i] += uplift
		}
		hotspot.Age += dt
	}
}
