package octree

import (
	"fmt"

	"github.com/akmonengine/octree/bound"
)

// nodeKind - Live state of a tree node
type nodeKind uint8

const (
	nodeEmpty nodeKind = iota
	nodeLeaf
	nodeBranch
)

func (k nodeKind) String() string {
	switch k {
	case nodeEmpty:
		return "Empty"
	case nodeLeaf:
		return "Leaf"
	case nodeBranch:
		return "Branch"
	}

	return fmt.Sprintf("nodeKind(%d)", uint8(k))
}

// branch holds the eight children of a subdivided node and a count of the
// non-empty ones. The count drives the eager collapse on removal.
type branch struct {
	children [8]NodeId
	filled   uint8
}

// node - Fixed size record of the node pool
//
// A node is Empty, a Leaf holding a single element, or a Branch holding
// eight children whose cubes partition its own. The parent link is
// undefinedNode on the root.
type node[U bound.Unsigned] struct {
	aabb    bound.Aabb[U]
	parent  NodeId
	kind    nodeKind
	element ElementId
	branch  branch
}

func newNode[U bound.Unsigned](aabb bound.Aabb[U], parent NodeId) node[U] {
	return node[U]{
		aabb:   aabb,
		parent: parent,
	}
}

// childByPosition selects the branch child whose octant contains p.
func (n *node[U]) childByPosition(p bound.TUVec3[U]) NodeId {
	return n.branch.children[n.aabb.Octant(p)]
}
