// Package geometry provides the shape, intersection, bounding-volume, and
// surface-sampling primitives of the kernel, generic over precision.
package geometry

import "github.com/dfraser/go-geometry-kernel/pkg/math"

// Ray represents a ray with an origin, a unit direction, and a valid
// parameter range [TMin, TMax]. Immutable value type.
type Ray[T math.Float] struct {
	Origin    math.Vec3[T]
	Direction math.Vec3[T]
	TMin      T
	TMax      T
}

// NewRay creates a ray with the default parameter range [0, +inf).
// The direction is normalized.
func NewRay[T math.Float](origin, direction math.Vec3[T]) Ray[T] {
	return Ray[T]{
		Origin:    origin,
		Direction: direction.Normalize(),
		TMin:      0,
		TMax:      math.Inf[T](1),
	}
}

// NewRayWithRange creates a ray clipped to the parameter range [tMin, tMax].
// An empty range (tMin > tMax) is legal and yields no-hit from every query.
func NewRayWithRange[T math.Float](origin, direction math.Vec3[T], tMin, tMax T) Ray[T] {
	return Ray[T]{
		Origin:    origin,
		Direction: direction.Normalize(),
		TMin:      tMin,
		TMax:      tMax,
	}
}

// At returns the point at parameter t along the ray.
func (r Ray[T]) At(t T) math.Vec3[T] {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// WithRange returns a copy of the ray with a new parameter range.
func (r Ray[T]) WithRange(tMin, tMax T) Ray[T] {
	r.TMin, r.TMax = tMin, tMax
	return r
}
