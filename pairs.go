package octree

import (
	"slices"

	"github.com/akmonengine/octree/bound"
)

// Pair - Pair of elements close enough to interact
//
// A is always the lower element id, and each pair is reported once.
type Pair struct {
	A ElementId
	B ElementId
}

// FindPairs returns every unordered pair of elements whose positions lie
// within radius of each other, in ascending (A, B) order.
//
// Broad phase: a sphere query around each element, padded by the unit cube
// extent. Narrow phase: exact squared distance between the two positions.
func (t *Octree[U, T]) FindPairs(radius float64) []Pair {
	pairs := make([]Pair, 0, t.Len()/2)
	rr := radius * radius

	for id, elem := range t.Elements() {
		center := elem.Position().Vec3()
		query := bound.NewSphere(center, radius+1)

		candidates := t.IntersectSphere(&query)
		slices.Sort(candidates)

		for _, other := range candidates {
			// Deterministic ordering, avoids reporting (A,B) and (B,A)
			if other <= id {
				continue
			}

			candidate, _ := t.GetElement(other)
			delta := candidate.Position().Vec3().Sub(center)
			if delta.Dot(delta) <= rr {
				pairs = append(pairs, Pair{A: id, B: other})
			}
		}
	}

	return pairs
}
