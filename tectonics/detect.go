package tectonics

import "sort"

// detectBoundaries scans every triangle edge and records the edges whose
// endpoints belong to different plates, grouped into one canonical record
// per plate pair. All previous boundary state is discarded first. Edges
// referencing out-of-range vertex indices are skipped rather than
// propagated.
func (l *Lithosphere) detectBoundaries(indices []int32) {
	l.boundaries = make(map[PlatePair]*Boundary)
	l.pairs = l.pairs[:0]
	for _, p := range l.plates {
		p.Boundaries = nil
	}

	edgeSets := make(map[PlatePair]map[Edge]struct{})
	vertexSets := make(map[PlatePair]map[int]struct{})

	numVertices := len(l.owner)
	for i := 0; i+2 < len(indices); i += 3 {
		tri := [3]int32{indices[i], indices[i+1], indices[i+2]}

		for j := 0; j < 3; j++ {
			a, b := tri[j], tri[(j+1)%3]
			if a < 0 || b < 0 || int(a) >= numVertices || int(b) >= numVertices {
				continue
			}

			plateA := l.owner[a]
			plateB := l.owner[b]
			if plateA == plateB || plateA < 0 || plateB < 0 {
				continue
			}

			pair := MakePlatePair(plateA, plateB)
			if edgeSets[pair] == nil {
				edgeSets[pair] = make(map[Edge]struct{})
				vertexSets[pair] = make(map[int]struct{})
			}
			edgeSets[pair][MakeEdge(a, b)] = struct{}{}
			vertexSets[pair][int(a)] = struct{}{}
			vertexSets[pair][int(b)] = struct{}{}
		}
	}

	for pair := range edgeSets {
		l.pairs = append(l.pairs, pair)
	}
	sort.Slice(l.pairs, func(i, j int) bool { return l.pairs[i].Less(l.pairs[j]) })

	for _, pair := range l.pairs {
		boundary := &Boundary{Plates: pair}

		for v := range vertexSets[pair] {
			boundary.Vertices = append(boundary.Vertices, v)
		}
		sort.Ints(boundary.Vertices)

		for e := range edgeSets[pair] {
			boundary.Edges = append(boundary.Edges, e)
		}
		sort.Slice(boundary.Edges, func(i, j int) bool {
			if boundary.Edges[i].A != boundary.Edges[j].A {
				return boundary.Edges[i].A < boundary.Edges[j].A
			}
			return boundary.Edges[i].B < boundary.Edges[j].B
		})

		l.boundaries[pair] = boundary
		l.plates[pair.First].Boundaries = append(l.plates[pair.First].Boundaries, pair)
		l.plates[pair.Second].Boundaries = append(l.plates[pair.Second].Boundaries, pair)
	}
}
