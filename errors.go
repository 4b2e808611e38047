package octree

import (
	"errors"

	"github.com/akmonengine/octree/bound"
)

var (
	// ErrOutOfBounds - the point lies outside the root cube
	ErrOutOfBounds = errors.New("position is outside of the tree bounds")
	// ErrAlreadyExists - the coordinate is already occupied by another element
	ErrAlreadyExists = errors.New("an element already exists at this position")
	// ErrSplitUnsplittable - two distinct points cannot be separated because
	// the cell holding them has reached the minimum half size
	ErrSplitUnsplittable = errors.New("cannot split a cell of half size 1")
	// ErrNotFound - the element id does not reference a live element
	ErrNotFound = errors.New("element not found")

	// ErrOverflow and ErrNotPower2 are surfaced by cube construction.
	ErrOverflow  = bound.ErrOverflow
	ErrNotPower2 = bound.ErrNotPower2
)
