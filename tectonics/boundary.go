package tectonics

// BoundaryType classifies the dominant relative motion across a plate
// boundary.
type BoundaryType int

const (
	Convergent BoundaryType = iota
	Divergent
	Transform
)

func (t BoundaryType) String() string {
	switch t {
	case Convergent:
		return "convergent"
	case Divergent:
		return "divergent"
	case Transform:
		return "transform"
	default:
		return "unknown"
	}
}

// PlatePair is the canonical unordered pair of plate ids, First < Second.
type PlatePair struct {
	First  int
	Second int
}

// MakePlatePair orders two plate ids into canonical form.
func MakePlatePair(a, b int) PlatePair {
	if a > b {
		a, b = b, a
	}
	return PlatePair{First: a, Second: b}
}

// Less orders pairs lexicographically; used to fix iteration order over the
// boundary store.
func (p PlatePair) Less(other PlatePair) bool {
	if p.First != other.First {
		return p.First < other.First
	}
	return p.Second < other.Second
}

// Edge is an undirected mesh edge in canonical form, A < B.
type Edge struct {
	A int32
	B int32
}

// MakeEdge orders two vertex indices into canonical form.
func MakeEdge(a, b int32) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Boundary is the single canonical record for the contact between two
// plates. Speeds follow the convention that positive ConvergenceSpeed means
// the plates are approaching each other.
type Boundary struct {
	Plates PlatePair

	// Vertices are mesh vertices on either plate that sit on an edge
	// crossing to the other plate, ascending. Edges are the crossing
	// edges themselves, canonicalized and sorted.
	Vertices []int
	Edges    []Edge

	Type             BoundaryType
	ConvergenceSpeed float64
	TransformSpeed   float64
	RelativeSpeed    float64
	Stress           float64
}
