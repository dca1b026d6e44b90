package geometry

import "github.com/dfraser/go-geometry-kernel/pkg/math"

// AABB represents an axis-aligned bounding box.
type AABB[T math.Float] struct {
	Min math.Vec3[T] // Minimum corner
	Max math.Vec3[T] // Maximum corner
}

// NewAABB creates a new AABB from min and max points.
func NewAABB[T math.Float](min, max math.Vec3[T]) AABB[T] {
	return AABB[T]{Min: min, Max: max}
}

// EmptyAABB returns the identity element for Union: a box whose corners are
// seeded with +/-MaxValue. The sentinels are the largest finite values, not
// the smallest positive subnormal, so running min/max accumulation works for
// negative coordinates too.
func EmptyAABB[T math.Float]() AABB[T] {
	big := math.MaxValue[T]()
	return AABB[T]{
		Min: math.NewVec3(big, big, big),
		Max: math.NewVec3(-big, -big, -big),
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points.
func NewAABBFromPoints[T math.Float](points ...math.Vec3[T]) AABB[T] {
	if len(points) == 0 {
		return EmptyAABB[T]()
	}

	box := AABB[T]{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		box = box.UnionPoint(point)
	}
	return box
}

// Contains reports whether the point lies inside or on the box.
func (aabb AABB[T]) Contains(p math.Vec3[T]) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// IntersectsRay tests the ray against the box using the slab method. It is a
// boolean reject test, cheaper than any full shape intersection.
func (aabb AABB[T]) IntersectsRay(ray Ray[T]) bool {
	tMin, tMax := ray.TMin, ray.TMax

	for axis := 0; axis < 3; axis++ {
		min := aabb.Min.Axis(axis)
		max := aabb.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Ray parallel to this slab: hit only if the origin lies between
		// the two planes.
		if math.Abs(direction) < math.Epsilon[T]() {
			if origin < min || origin > max {
				return false
			}
			continue
		}

		invDirection := 1 / direction
		t1 := (min - origin) * invDirection
		t2 := (max - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another.
func (aabb AABB[T]) Union(other AABB[T]) AABB[T] {
	return AABB[T]{
		Min: math.MinVec(aabb.Min, other.Min),
		Max: math.MaxVec(aabb.Max, other.Max),
	}
}

// UnionPoint returns an AABB grown to include the given point.
func (aabb AABB[T]) UnionPoint(p math.Vec3[T]) AABB[T] {
	return AABB[T]{
		Min: math.MinVec(aabb.Min, p),
		Max: math.MaxVec(aabb.Max, p),
	}
}

// Center returns the center point of the AABB.
func (aabb AABB[T]) Center() math.Vec3[T] {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent of the AABB along each axis.
func (aabb AABB[T]) Size() math.Vec3[T] {
	return aabb.Max.Subtract(aabb.Min)
}

// SurfaceArea returns the surface area of the AABB.
func (aabb AABB[T]) SurfaceArea() T {
	size := aabb.Size()
	return 2 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// Volume returns the volume of the AABB.
func (aabb AABB[T]) Volume() T {
	size := aabb.Size()
	return size.X * size.Y * size.Z
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
func (aabb AABB[T]) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// IsValid returns true if min <= max on every axis.
func (aabb AABB[T]) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Expand returns an AABB expanded by the given amount in all directions.
func (aabb AABB[T]) Expand(amount T) AABB[T] {
	expansion := math.NewVec3(amount, amount, amount)
	return AABB[T]{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}
