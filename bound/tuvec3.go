package bound

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/exp/constraints"
)

// Unsigned covers every unsigned integer width usable as a tree coordinate.
type Unsigned interface {
	constraints.Unsigned
}

// TUVec3 - Three component vector of unsigned integer coordinates
type TUVec3[U Unsigned] struct {
	X, Y, Z U
}

// NewTUVec3 creates a vector from its three components.
func NewTUVec3[U Unsigned](x, y, z U) TUVec3[U] {
	return TUVec3[U]{X: x, Y: y, Z: z}
}

// Splat creates a vector with the same value on all three axes.
func Splat[U Unsigned](v U) TUVec3[U] {
	return TUVec3[U]{X: v, Y: v, Z: v}
}

func (v TUVec3[U]) Add(other TUVec3[U]) TUVec3[U] {
	return TUVec3[U]{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v TUVec3[U]) Sub(other TUVec3[U]) TUVec3[U] {
	return TUVec3[U]{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Lt compares component-wise with strict less-than.
func (v TUVec3[U]) Lt(other TUVec3[U]) BVec3 {
	return BVec3{v.X < other.X, v.Y < other.Y, v.Z < other.Z}
}

// Gt compares component-wise with strict greater-than.
func (v TUVec3[U]) Gt(other TUVec3[U]) BVec3 {
	return BVec3{v.X > other.X, v.Y > other.Y, v.Z > other.Z}
}

// Le compares component-wise with less-or-equal.
func (v TUVec3[U]) Le(other TUVec3[U]) BVec3 {
	return BVec3{v.X <= other.X, v.Y <= other.Y, v.Z <= other.Z}
}

// Ge compares component-wise with greater-or-equal.
func (v TUVec3[U]) Ge(other TUVec3[U]) BVec3 {
	return BVec3{v.X >= other.X, v.Y >= other.Y, v.Z >= other.Z}
}

// Vec3 converts the integer vector to a float vector.
func (v TUVec3[U]) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// UnitAABB is the float cube [v, v+1] on each axis.
// Geometric queries treat an element stored at v as occupying this cube.
func (v TUVec3[U]) UnitAABB() AABB {
	min := v.Vec3()
	return AABB{
		Min: min,
		Max: min.Add(mgl64.Vec3{1, 1, 1}),
	}
}

func (v TUVec3[U]) String() string {
	return fmt.Sprintf("(%d, %d, %d)", uint64(v.X), uint64(v.Y), uint64(v.Z))
}

// BVec3 - Boolean mask of a component-wise comparison
type BVec3 struct {
	X, Y, Z bool
}

// All reports whether the mask is set on every axis.
func (b BVec3) All() bool {
	return b.X && b.Y && b.Z
}

// Any reports whether the mask is set on at least one axis.
func (b BVec3) Any() bool {
	return b.X || b.Y || b.Z
}

// None reports whether the mask is unset on every axis.
func (b BVec3) None() bool {
	return !b.X && !b.Y && !b.Z
}
