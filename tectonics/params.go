package tectonics

// Params controls plate generation and crust evolution. Zero values are not
// meaningful; start from DefaultParams and override.
type Params struct {
	// NumPlates is the requested plate count. Fewer plates may be created
	// if the minimum-separation sampling budget runs out.
	NumPlates int

	// Seed fixes the random source. Identical seed, params, and mesh give
	// identical runs.
	Seed int64

	// ContinentalFraction is the probability a new plate is continental.
	ContinentalFraction float64

	// MinSeparationFactor scales the minimum angular separation between
	// plate centers, minAngle = factor * sqrt(4*pi/N).
	MinSeparationFactor float64

	// Plate motion. Speeds are radians of great-circle travel per unit
	// time; rotation rates are radians per unit time about the center.
	MinPlateSpeed   float64
	MaxPlateSpeed   float64
	MaxRotationRate float64

	// Crust evolution rates, all per unit time.
	OrogenyRate     float64
	SubductionRate  float64
	RiftingRate     float64
	AgeIncreaseRate float64

	// Thickness clamp range and initial values per plate type.
	MinThickness         float64
	MaxThickness         float64
	ContinentalThickness float64
	OceanicThickness     float64

	// Initial thickness perturbation: amplitude of the noise term and the
	// spatial frequency it is sampled at.
	ThicknessNoise float64
	NoiseScale     float64

	// Hotspot volcanism. Zero hotspots disables the feature.
	HotspotCount  int
	HotspotRadius float64
	HotspotRate   float64
}

// DefaultParams returns the tuning used by the host application.
func DefaultParams() Params {
	return Params{
		NumPlates:           8,
		Seed:                1,
		ContinentalFraction: 0.4,
		MinSeparationFactor: 1.0,

		MinPlateSpeed:   0.01,
		MaxPlateSpeed:   0.03,
		MaxRotationRate: 0.01,

		OrogenyRate:     0.15,
		SubductionRate:  0.25,
		RiftingRate:     0.1,
		AgeIncreaseRate: 1.0,

		MinThickness:         0.01,
		MaxThickness:         2.0,
		ContinentalThickness: 1.0,
		OceanicThickness:     0.3,

		ThicknessNoise: 0.15,
		NoiseScale:     2.5,

		HotspotCount:  0,
		HotspotRadius: 0.15,
		HotspotRate:   0.02,
	}
}
