package bound

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box in float space
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABB creates a box from its center and half extents.
func NewAABB(center, halfExtents mgl64.Vec3) AABB {
	return AABB{
		Min: center.Sub(halfExtents),
		Max: center.Add(halfExtents),
	}
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on all three axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// Center returns the middle point of the box.
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// DistanceSquared returns the squared distance from a point to the box,
// zero when the point is inside.
func (a AABB) DistanceSquared(point mgl64.Vec3) float64 {
	var d float64
	for i := 0; i < 3; i++ {
		if v := a.Min[i] - point[i]; v > 0 {
			d += v * v
		} else if v := point[i] - a.Max[i]; v > 0 {
			d += v * v
		}
	}

	return d
}

// Ray - Origin, normalized direction and maximum travel distance
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
	Max       float64
}

// NewRay creates a ray, normalizing the direction.
func NewRay(origin, direction mgl64.Vec3, max float64) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
		Max:       max,
	}
}

// IntersectAABB performs the slab test against a box.
//
// Returns the entry distance along the ray and whether the box is hit
// within [0, Max]. A ray starting inside the box hits at distance 0.
func (r *Ray) IntersectAABB(a *AABB) (float64, bool) {
	tmin := 0.0
	tmax := r.Max

	for i := 0; i < 3; i++ {
		d := r.Direction[i]
		if d == 0 {
			// Parallel to the slab: hit only if the origin lies between the planes.
			if r.Origin[i] < a.Min[i] || r.Origin[i] > a.Max[i] {
				return 0, false
			}
			continue
		}

		invD := 1.0 / d
		t1 := (a.Min[i] - r.Origin[i]) * invD
		t2 := (a.Max[i] - r.Origin[i]) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}

	return tmin, true
}

// Sphere - Bounding sphere for overlap queries
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// NewSphere creates a sphere from its center and radius.
func NewSphere(center mgl64.Vec3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// IntersectsAABB checks the sphere against a box by squared distance.
func (s *Sphere) IntersectsAABB(a *AABB) bool {
	return a.DistanceSquared(s.Center) <= s.Radius*s.Radius
}

func mglSplat(v float64) mgl64.Vec3 {
	return mgl64.Vec3{v, v, v}
}
