package geometry

import (
	"fmt"

	"github.com/dfraser/go-geometry-kernel/pkg/math"
)

// Sphere represents a sphere, optionally clipped to a partial zenith range
// [ZMin, ZMax] and azimuthal sweep [0, PhiMax]. A full sphere has
// ZMin = -Radius, ZMax = Radius, PhiMax = 2π.
type Sphere[T math.Float] struct {
	Center math.Vec3[T]
	Radius T

	ZMin, ZMax T // z extent relative to the center
	PhiMax     T // azimuthal sweep starting at +x toward +y

	thetaMin, thetaMax T // polar angles matching ZMax and ZMin
	partial            bool
}

// NewSphere creates a full sphere.
func NewSphere[T math.Float](center math.Vec3[T], radius T) (*Sphere[T], error) {
	return NewPartialSphere(center, radius, -radius, radius, 2*math.Pi)
}

// NewPartialSphere creates a sphere clipped to the given zenith extent
// (relative to the center, clamped to [-radius, radius]) and azimuthal sweep.
func NewPartialSphere[T math.Float](center math.Vec3[T], radius, zMin, zMax, phiMax T) (*Sphere[T], error) {
	if !center.IsFinite() || !math.IsFinite(radius) {
		return nil, fmt.Errorf("sphere parameters must be finite, got center=%+v radius=%v", center, radius)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %v", radius)
	}
	if !math.IsFinite(zMin) || !math.IsFinite(zMax) || zMin >= zMax {
		return nil, fmt.Errorf("sphere z extent must satisfy zMin < zMax, got [%v, %v]", zMin, zMax)
	}
	if !math.IsFinite(phiMax) || phiMax <= 0 || phiMax > 2*math.Pi+math.Epsilon[T]() {
		return nil, fmt.Errorf("sphere phi extent must be in (0, 2π], got %v", phiMax)
	}

	zMin = math.Clamp(zMin, -radius, radius)
	zMax = math.Clamp(zMax, -radius, radius)
	phiMax = math.Min(phiMax, 2*math.Pi)

	s := &Sphere[T]{
		Center:   center,
		Radius:   radius,
		ZMin:     zMin,
		ZMax:     zMax,
		PhiMax:   phiMax,
		thetaMin: math.Acos(math.Clamp(zMax/radius, -1, 1)),
		thetaMax: math.Acos(math.Clamp(zMin/radius, -1, 1)),
	}
	s.partial = zMin > -radius || zMax < radius || phiMax < 2*math.Pi
	return s, nil
}

// params returns the spherical coordinates of a point on the sphere.
// phi is wrapped into [0, 2π) so coordinates stay continuous across the seam;
// theta is measured from the +z pole.
func (s *Sphere[T]) params(p math.Vec3[T]) (phi, theta T) {
	local := p.Subtract(s.Center)
	phi = math.Atan2(local.Y, local.X)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	theta = math.Acos(math.Clamp(local.Z/s.Radius, -1, 1))
	return phi, theta
}

// inExtent reports whether spherical coordinates fall inside the clipped
// extents.
func (s *Sphere[T]) inExtent(phi, theta T) bool {
	if !s.partial {
		return true
	}
	eps := math.Epsilon[T]()
	return phi <= s.PhiMax+eps &&
		theta >= s.thetaMin-eps && theta <= s.thetaMax+eps
}

// intersect solves the quadratic |O + tD - C|^2 = r^2 and returns the
// smallest root in range whose hit point lies inside the clipped extents.
func (s *Sphere[T]) intersect(ray Ray[T]) (T, T, T, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.LengthSquared()
	if a < math.Epsilon[T]() {
		return 0, 0, 0, false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, 0, 0, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, then the farther one; a partial sphere can
	// reject the near hit and still accept the far side.
	for _, root := range [2]T{(-halfB - sqrtD) / a, (-halfB + sqrtD) / a} {
		if root < ray.TMin || root > ray.TMax {
			continue
		}
		phi, theta := s.params(ray.At(root))
		if !s.inExtent(phi, theta) {
			continue
		}
		return root, phi, theta, true
	}
	return 0, 0, 0, false
}

// IntersectT returns the ray parameter of the first hit, if any.
func (s *Sphere[T]) IntersectT(ray Ray[T]) (T, bool) {
	t, _, _, ok := s.intersect(ray)
	return t, ok
}

// Intersect returns the full hit record for the first hit in range.
func (s *Sphere[T]) Intersect(ray Ray[T]) (*Intersection[T], bool) {
	t, phi, theta, ok := s.intersect(ray)
	if !ok {
		return nil, false
	}

	hitPoint := ray.At(t)
	outward := hitPoint.Subtract(s.Center).Multiply(1 / s.Radius)

	its := &Intersection[T]{
		Point: hitPoint,
		Shape: s,
		T:     t,
		UV: math.NewVec2(
			phi/s.PhiMax,
			(theta-s.thetaMin)/(s.thetaMax-s.thetaMin),
		),
	}
	its.setFaceNormals(ray, outward, outward)
	return its, true
}

// BoundingBox returns the tight z extent of the clipped sphere; x and y are
// bounded by the full radius.
func (s *Sphere[T]) BoundingBox() AABB[T] {
	return NewAABB(
		s.Center.Add(math.NewVec3(-s.Radius, -s.Radius, s.ZMin)),
		s.Center.Add(math.NewVec3(s.Radius, s.Radius, s.ZMax)),
	)
}

// SurfaceArea returns the area of the clipped sphere: phiMax * r * (zMax-zMin),
// which reduces to 4πr² for a full sphere.
func (s *Sphere[T]) SurfaceArea() T {
	return s.PhiMax * s.Radius * (s.ZMax - s.ZMin)
}

// Sample maps (u1, u2) uniformly by area onto the clipped surface: z is
// uniform over the zenith extent and phi over the sweep, which is uniform in
// area for a spherical zone.
func (s *Sphere[T]) Sample(u1, u2 T) SurfaceSample[T] {
	z := math.Lerp(u1, s.ZMin, s.ZMax)
	phi := s.PhiMax * u2
	rxy := math.Sqrt(math.Max(0, s.Radius*s.Radius-z*z))

	local := math.NewVec3(rxy*math.Cos(phi), rxy*math.Sin(phi), z)
	point := s.Center.Add(local)

	return SurfaceSample[T]{
		Point:  point,
		Normal: local.Normalize(),
		PDF:    1 / s.SurfaceArea(),
	}
}
