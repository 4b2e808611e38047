package bound

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow - the box would wrap around the limits of its coordinate type
	ErrOverflow = errors.New("aabb bounds overflow the coordinate type")
	// ErrNotPower2 - the half size is not a power of two
	ErrNotPower2 = errors.New("aabb half size is not a power of two")
)

// Aabb - Axis aligned cube over unsigned integer coordinates
//
// The cube spans [Center - HalfSize, Center + HalfSize) on each axis,
// half-open on the upper bound. A point exactly on the upper face belongs
// to the neighbouring cell.
type Aabb[U Unsigned] struct {
	Center   TUVec3[U]
	HalfSize U
}

// NewAabb creates a cube and validates it: the lower corner must not wrap
// below zero, the upper corner must not wrap past the type's maximum, and
// the half size must be a power of two so the cube subdivides evenly.
func NewAabb[U Unsigned](center TUVec3[U], halfSize U) (Aabb[U], error) {
	if !center.Ge(Splat(halfSize)).All() {
		return Aabb[U]{}, fmt.Errorf("%w: center %s, half size %d", ErrOverflow, center, uint64(halfSize))
	}
	if wraps(center.X, halfSize) || wraps(center.Y, halfSize) || wraps(center.Z, halfSize) {
		return Aabb[U]{}, fmt.Errorf("%w: center %s, half size %d", ErrOverflow, center, uint64(halfSize))
	}
	if !IsPower2(halfSize) {
		return Aabb[U]{}, fmt.Errorf("%w: half size %d", ErrNotPower2, uint64(halfSize))
	}

	return NewAabbUnchecked(center, halfSize), nil
}

// NewAabbUnchecked creates a cube without any validation.
func NewAabbUnchecked[U Unsigned](center TUVec3[U], halfSize U) Aabb[U] {
	return Aabb[U]{Center: center, HalfSize: halfSize}
}

// wraps reports whether c + h overflows U.
func wraps[U Unsigned](c, h U) bool {
	return c+h < c
}

// Min is the inclusive lower corner.
func (a Aabb[U]) Min() TUVec3[U] {
	return a.Center.Sub(Splat(a.HalfSize))
}

// Max is the exclusive upper corner.
func (a Aabb[U]) Max() TUVec3[U] {
	return a.Center.Add(Splat(a.HalfSize))
}

// Size is the edge length of the cube.
func (a Aabb[U]) Size() U {
	return a.HalfSize + a.HalfSize
}

// Contains checks a point against the half-open bounds [min, max).
func (a Aabb[U]) Contains(p TUVec3[U]) bool {
	return a.Min().Le(p).All() && a.Max().Gt(p).All()
}

// Octant returns the 3-bit index of the child cube containing p:
// bit 0 for x >= center, bit 1 for y, bit 2 for z.
func (a Aabb[U]) Octant(p TUVec3[U]) int {
	idx := 0
	if p.X >= a.Center.X {
		idx |= 0b1
	}
	if p.Y >= a.Center.Y {
		idx |= 0b10
	}
	if p.Z >= a.Center.Z {
		idx |= 0b100
	}

	return idx
}

// Splittable reports whether the cube can be subdivided into octants.
// A cube of half size 1 is the smallest cell the tree can hold.
func (a Aabb[U]) Splittable() bool {
	return a.HalfSize >= 2
}

// Unit reports whether the cube is a smallest cell.
func (a Aabb[U]) Unit() bool {
	return a.HalfSize == 1
}

// Split subdivides the cube into its eight octants, ordered by Octant index.
func (a Aabb[U]) Split() [8]Aabb[U] {
	var children [8]Aabb[U]
	for i := range children {
		children[i] = a.Child(i)
	}

	return children
}

// Child computes the octant cube for one index of the 1:8 split.
func (a Aabb[U]) Child(i int) Aabb[U] {
	quarter := a.HalfSize >> 1
	center := a.Center

	if i&0b1 != 0 {
		center.X += quarter
	} else {
		center.X -= quarter
	}
	if i&0b10 != 0 {
		center.Y += quarter
	} else {
		center.Y -= quarter
	}
	if i&0b100 != 0 {
		center.Z += quarter
	} else {
		center.Z -= quarter
	}

	return Aabb[U]{Center: center, HalfSize: quarter}
}

// Float converts the integer cube to its float twin with the same geometry.
func (a Aabb[U]) Float() AABB {
	h := float64(a.HalfSize)
	c := a.Center.Vec3()

	return AABB{
		Min: c.Sub(mglSplat(h)),
		Max: c.Add(mglSplat(h)),
	}
}

func (a Aabb[U]) String() string {
	return fmt.Sprintf("aabb{center: %s, half: %d}", a.Center, uint64(a.HalfSize))
}

// IsPower2 reports whether v is a power of two. 1 counts: a half size of 1
// is the valid floor cell even though it cannot be split further.
func IsPower2[U Unsigned](v U) bool {
	return v != 0 && v&(v-1) == 0
}
