package octree

import (
	"github.com/akmonengine/octree/bound"
)

// HitResult - Outcome of a ray cast
//
// Hit reports whether any element was reached; Element and Distance are
// only meaningful when it is set.
type HitResult struct {
	Element  ElementId
	Hit      bool
	Distance float64
}

// visitor is the capability set shared by every geometric query: a prune
// predicate over node bounds, a leaf callback fed with the element's unit
// cube, and a child visit order. Node cubes are converted to their float
// twins right before testing.
type visitor struct {
	enterNode func(a *bound.AABB) bool
	visitLeaf func(id ElementId, unit *bound.AABB)
	order     int
}

func (t *Octree[U, T]) walk(id NodeId, v *visitor) {
	n := t.nodes.at(uint32(id))
	a := n.aabb.Float()
	if !v.enterNode(&a) {
		return
	}

	switch n.kind {
	case nodeLeaf:
		unit := t.elements.at(uint32(n.element)).value.Position().UnitAABB()
		v.visitLeaf(n.element, &unit)
	case nodeBranch:
		for i := 0; i < 8; i++ {
			t.walk(n.branch.children[i^v.order], v)
		}
	}
}

// RayCast finds the nearest element whose unit cube is hit by the ray.
//
// Children are visited closest octant first, derived from the direction
// signs, and subtrees whose entry distance exceeds the best hit so far are
// pruned. On a miss the zero HitResult is returned.
func (t *Octree[U, T]) RayCast(ray *bound.Ray) HitResult {
	var hit HitResult

	v := visitor{
		enterNode: func(a *bound.AABB) bool {
			d, ok := ray.IntersectAABB(a)
			return ok && (!hit.Hit || d <= hit.Distance)
		},
		visitLeaf: func(id ElementId, unit *bound.AABB) {
			if d, ok := ray.IntersectAABB(unit); ok && (!hit.Hit || d < hit.Distance) {
				hit = HitResult{Element: id, Hit: true, Distance: d}
			}
		},
		order: rayOrder(ray),
	}
	t.walk(t.root, &v)

	return hit
}

// rayOrder builds the child visit mask from the direction signs, so that
// the octant on the origin side of each splitting plane is visited first.
func rayOrder(ray *bound.Ray) int {
	order := 0
	if ray.Direction.X() < 0 {
		order |= 0b1
	}
	if ray.Direction.Y() < 0 {
		order |= 0b10
	}
	if ray.Direction.Z() < 0 {
		order |= 0b100
	}

	return order
}

// IntersectAABB collects every element whose unit cube overlaps the query
// box, in traversal order.
func (t *Octree[U, T]) IntersectAABB(query *bound.AABB) []ElementId {
	return t.IntersectWith(func(a *bound.AABB) bool {
		return a.Overlaps(*query)
	})
}

// IntersectSphere collects every element whose unit cube overlaps the
// sphere, in traversal order.
func (t *Octree[U, T]) IntersectSphere(query *bound.Sphere) []ElementId {
	return t.IntersectWith(query.IntersectsAABB)
}

// IntersectWith collects elements with a custom overlap predicate. The
// predicate is called with node bounds for pruning and with element unit
// cubes for the final test.
func (t *Octree[U, T]) IntersectWith(overlaps func(a *bound.AABB) bool) []ElementId {
	elements := make([]ElementId, 0, 8)
	t.IntersectWithFunc(overlaps, func(id ElementId, _ T) {
		elements = append(elements, id)
	})

	return elements
}

// IntersectWithFunc calls fn for every element matched by the predicate,
// without allocating a result slice.
func (t *Octree[U, T]) IntersectWithFunc(overlaps func(a *bound.AABB) bool, fn func(id ElementId, elem T)) {
	v := visitor{
		enterNode: overlaps,
		visitLeaf: func(id ElementId, unit *bound.AABB) {
			if overlaps(unit) {
				fn(id, t.elements.at(uint32(id)).value)
			}
		},
	}
	t.walk(t.root, &v)
}

// Intersects checks a box against the root cube only.
func (t *Octree[U, T]) Intersects(query *bound.AABB) bool {
	root := t.aabb.Float()
	return root.Overlaps(*query)
}

// IntersectsSphere checks a sphere against the root cube only.
func (t *Octree[U, T]) IntersectsSphere(query *bound.Sphere) bool {
	root := t.aabb.Float()
	return query.IntersectsAABB(&root)
}
