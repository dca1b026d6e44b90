package geometry

import "github.com/dfraser/go-geometry-kernel/pkg/math"

// BoundingSphere is the spherical bounding-volume variant.
type BoundingSphere[T math.Float] struct {
	Center math.Vec3[T]
	Radius T
}

// NewBoundingSphere creates a bounding sphere. A negative radius is clamped
// to zero.
func NewBoundingSphere[T math.Float](center math.Vec3[T], radius T) BoundingSphere[T] {
	return BoundingSphere[T]{Center: center, Radius: math.Max(radius, 0)}
}

// NewBoundingSphereFromAABB returns the sphere through the corners of the box.
func NewBoundingSphereFromAABB[T math.Float](box AABB[T]) BoundingSphere[T] {
	center := box.Center()
	return BoundingSphere[T]{
		Center: center,
		Radius: box.Max.Subtract(center).Length(),
	}
}

// Contains reports whether the point lies inside or on the sphere.
func (s BoundingSphere[T]) Contains(p math.Vec3[T]) bool {
	return p.Subtract(s.Center).LengthSquared() <= s.Radius*s.Radius
}

// IntersectsRay tests the ray against the sphere algebraically.
func (s BoundingSphere[T]) IntersectsRay(ray Ray[T]) bool {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.LengthSquared()
	if a < math.Epsilon[T]() {
		return false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}

	sqrtD := math.Sqrt(discriminant)
	t0 := (-halfB - sqrtD) / a
	t1 := (-halfB + sqrtD) / a

	// The ray overlaps the sphere iff the root interval meets [TMin, TMax].
	return t1 >= ray.TMin && t0 <= ray.TMax
}

// Union returns a sphere guaranteed to contain both inputs. The enclosing
// construction is not necessarily minimal.
func (s BoundingSphere[T]) Union(other BoundingSphere[T]) BoundingSphere[T] {
	span := other.Center.Subtract(s.Center)
	d := span.Length()

	// One sphere already contains the other.
	if d+other.Radius <= s.Radius {
		return s
	}
	if d+s.Radius <= other.Radius {
		return other
	}

	radius := (d + s.Radius + other.Radius) / 2
	center := s.Center.Add(span.Multiply((radius - s.Radius) / d))
	return BoundingSphere[T]{Center: center, Radius: radius}
}

// SurfaceArea returns the surface area of the sphere.
func (s BoundingSphere[T]) SurfaceArea() T {
	return 4 * math.Pi * s.Radius * s.Radius
}

// Volume returns the volume of the sphere.
func (s BoundingSphere[T]) Volume() T {
	return 4 * math.Pi * s.Radius * s.Radius * s.Radius / 3
}
