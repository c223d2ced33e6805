package tectonics

import "github.com/golang/geo/r3"

// evolveCrust applies the per-boundary-type thickness and age rules, ages
// crust untouched by any boundary interaction, applies hotspot volcanism,
// and clamps every thickness back into range.
//
// Convergent rules: continental collision thickens both sides; otherwise
// one plate overrides and the other subducts. With mixed types the oceanic
// plate subducts; between two oceanic plates the lower plate id subducts.
// Uplift and subduction reset crust age at the boundary. Divergent
// boundaries thin crust and reset age (new crust at the rift); transform
// boundaries leave thickness alone.
func (l *Lithosphere) evolveCrust(dt float64, vertices []r3.Vector) {
	touched := make(map[int]struct{})

	for _, pair := range l.pairs {
		boundary := l.boundaries[pair]
		plateA := l.plates[pair.First]
		plateB := l.plates[pair.Second]
		convergence := abs(boundary.ConvergenceSpeed)

		switch boundary.Type {
		case Convergent:
			if plateA.Type == Continental && plateB.Type == Continental {
				delta := l.params.OrogenyRate * convergence * boundary.Stress * 0.5 * dt
				for _, v := range boundary.Vertices {
					p := l.plates[l.owner[v]]
					p.Thickness[v] += delta
					p.Age[v] = 0
					touched[v] = struct{}{}
				}
				continue
			}

			subducting := l.subductingPlate(plateA, plateB)
			uplift := l.params.OrogenyRate * convergence * boundary.Stress * dt
			sink := l.params.SubductionRate * convergence * dt
			for _, v := range boundary.Vertices {
				p := l.plates[l.owner[v]]
				if p.ID == subducting {
					p.Thickness[v] -= sink
				} else {
					p.Thickness[v] += uplift
				}
				p.Age[v] = 0
				touched[v] = struct{}{}
			}

		case Divergent:
			thin := l.params.RiftingRate * convergence * dt
			for _, v := range boundary.Vertices {
				p := l.plates[l.owner[v]]
				p.Thickness[v] -= thin
				p.Age[v] = 0
				touched[v] = struct{}{}
			}

		case Transform:
			// Slip grinds laterally without direct thickness change;
			// transform vertices age like plate interiors.
		}
	}

	aging := l.params.AgeIncreaseRate * dt
	for _, p := range l.plates {
		for _, v := range p.Vertices {
			if _, ok := touched[v]; !ok {
				p.Age[v] += aging
			}
		}
	}

	if len(l.hotspots) > 0 {
		l.applyHotspots(dt, vertices)
	}

	for _, p := range l.plates {
		for _, v := range p.Vertices {
			p.Thickness[v] = clamp(p.Thickness[v], l.params.MinThickness, l.params.MaxThickness)
		}
	}
}

// subductingPlate picks which of two converging, non-collision plates goes
// under. Oceanic crust subducts beneath continental; between equals the
// lower plate id subducts, a deliberately simple deterministic stand-in
// for comparing plate density or age.
func (l *Lithosphere) subductingPlate(plateA, plateB *Plate) int {
	if plateA.Type == Oceanic && plateB.Type == Continental {
		return plateA.ID
	}
	if plateA.Type == Continental && plateB.Type == Oceanic {
		return plateB.ID
	}
	if plateA.ID < plateB.ID {
		return plateA.ID
	}
	return plateB.ID
}
