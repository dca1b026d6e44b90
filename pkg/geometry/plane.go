package geometry

import (
	"fmt"

	"github.com/dfraser/go-geometry-kernel/pkg/math"
)

// Plane represents an infinite plane defined by a point and a normal.
type Plane[T math.Float] struct {
	Point  math.Vec3[T] // A point on the plane
	Normal math.Vec3[T] // Unit normal
	basis  math.OrthonormalBasis[T]
}

// NewPlane creates a new plane. The normal is normalized; a zero or
// non-finite normal is rejected.
func NewPlane[T math.Float](point, normal math.Vec3[T]) (*Plane[T], error) {
	if !point.IsFinite() || !normal.IsFinite() {
		return nil, fmt.Errorf("plane parameters must be finite, got point=%+v normal=%+v", point, normal)
	}
	if normal.LengthSquared() < math.Epsilon[T]() {
		return nil, fmt.Errorf("plane normal must be non-zero, got %+v", normal)
	}
	p := &Plane[T]{Point: point, Normal: normal.Normalize()}
	p.basis = math.NewBasisFromW(p.Normal)
	return p, nil
}

// IntersectT returns the ray parameter of the hit, if any.
func (p *Plane[T]) IntersectT(ray Ray[T]) (T, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane.
	if math.Abs(denominator) < math.Epsilon[T]() {
		return 0, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < ray.TMin || t > ray.TMax {
		return 0, false
	}
	return t, true
}

// Intersect returns the full hit record for the first hit in range.
func (p *Plane[T]) Intersect(ray Ray[T]) (*Intersection[T], bool) {
	t, ok := p.IntersectT(ray)
	if !ok {
		return nil, false
	}

	hitPoint := ray.At(t)
	its := &Intersection[T]{
		Point: hitPoint,
		Shape: p,
		T:     t,
	}
	its.setFaceNormals(ray, p.Normal, p.Normal)

	// Planar UV: coordinates of the hit in the plane's own frame.
	local := p.basis.ToLocal(hitPoint.Subtract(p.Point))
	its.UV = math.NewVec2(local.X, local.Y)

	return its, true
}

// BoundingBox returns an effectively unbounded box; an infinite plane has no
// tight finite bound.
func (p *Plane[T]) BoundingBox() AABB[T] {
	big := math.MaxValue[T]()
	return AABB[T]{
		Min: math.NewVec3(-big, -big, -big),
		Max: math.NewVec3(big, big, big),
	}
}

// SurfaceArea returns positive infinity.
func (p *Plane[T]) SurfaceArea() T {
	return math.Inf[T](1)
}

// Sample returns the plane's reference point with a density of zero: an
// infinite plane carries no uniform area distribution and is excluded from
// area-based sampling.
func (p *Plane[T]) Sample(u1, u2 T) SurfaceSample[T] {
	return SurfaceSample[T]{Point: p.Point, Normal: p.Normal, PDF: 0}
}
