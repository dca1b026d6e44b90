// Package sampling provides the canonical-domain sample generators used by
// surface sampling and Monte-Carlo integration. Every mapping is a pure
// function of its inputs; randomness, when wanted, is supplied by the caller
// through a Sampler.
package sampling

import "github.com/dfraser/go-geometry-kernel/pkg/math"

// SquareToUniformDisk maps a canonical sample to the unit disk using the
// concentric mapping, which avoids rejection sampling and preserves
// stratification.
func SquareToUniformDisk[T math.Float](u math.Vec2[T]) math.Vec2[T] {
	// Map the sample to [-1,1]² and handle the degeneracy at the origin.
	offset := math.NewVec2(2*u.X-1, 2*u.Y-1)
	if offset.X == 0 && offset.Y == 0 {
		return math.Vec2[T]{}
	}

	var theta, r T
	if math.Abs(offset.X) > math.Abs(offset.Y) {
		r = offset.X
		theta = math.Pi / 4 * (offset.Y / offset.X)
	} else {
		r = offset.Y
		theta = math.Pi/2 - math.Pi/4*(offset.X/offset.Y)
	}

	return math.NewVec2(r*math.Cos(theta), r*math.Sin(theta))
}

// UniformDiskPDF returns the density of SquareToUniformDisk with respect to
// area on the unit disk.
func UniformDiskPDF[T math.Float]() T {
	return 1 / math.Pi
}

// SquareToCosineHemisphere maps a canonical sample to a direction on the
// +z hemisphere with density proportional to cos(theta).
func SquareToCosineHemisphere[T math.Float](u math.Vec2[T]) math.Vec3[T] {
	phi := 2 * math.Pi * u.X
	r := math.Sqrt(u.Y)

	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	z := math.Sqrt(math.Max(0, 1-u.Y))

	return math.NewVec3(x, y, z)
}

// CosineHemispherePDF returns the solid-angle density of a cosine-weighted
// hemisphere direction with the given cosine against the axis.
func CosineHemispherePDF[T math.Float](cosTheta T) T {
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// CosineHemisphereAround maps a canonical sample to a cosine-weighted
// direction in the hemisphere around an arbitrary normal.
func CosineHemisphereAround[T math.Float](normal math.Vec3[T], u math.Vec2[T]) math.Vec3[T] {
	basis := math.NewBasisFromW(normal)
	return basis.ToWorld(SquareToCosineHemisphere(u))
}

// SquareToUniformHemisphere maps a canonical sample to a uniform direction
// on the +z hemisphere.
func SquareToUniformHemisphere[T math.Float](u math.Vec2[T]) math.Vec3[T] {
	z := u.X // z ∈ [0, 1]
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * u.Y
	return math.NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// UniformHemispherePDF returns the solid-angle density of a uniform
// hemisphere direction.
func UniformHemispherePDF[T math.Float]() T {
	return 1 / (2 * math.Pi)
}

// SquareToUniformSphere maps a canonical sample to a uniform direction on
// the unit sphere.
func SquareToUniformSphere[T math.Float](u math.Vec2[T]) math.Vec3[T] {
	z := 1 - 2*u.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * u.Y
	return math.NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// UniformSpherePDF returns the solid-angle density of a uniform sphere
// direction.
func UniformSpherePDF[T math.Float]() T {
	return 1 / (4 * math.Pi)
}

// SquareToCone maps a canonical sample to a uniform direction inside the
// cone around +z whose half-angle has the given cosine.
func SquareToCone[T math.Float](u math.Vec2[T], cosThetaMax T) math.Vec3[T] {
	cosTheta := 1 - u.X*(1-cosThetaMax)
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * u.Y
	return math.NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
}

// UniformConePDF returns the solid-angle density of a uniform cone
// direction.
func UniformConePDF[T math.Float](cosThetaMax T) T {
	return 1 / (2 * math.Pi * (1 - cosThetaMax))
}

// Stratified returns the jittered sample for cell (ix, iy) of an nx-by-ny
// grid over [0,1)². The jitter pair positions the sample inside its cell, so
// identical inputs always produce identical outputs.
func Stratified[T math.Float](ix, iy, nx, ny int, jitter math.Vec2[T]) math.Vec2[T] {
	return math.NewVec2(
		(T(ix)+jitter.X)/T(nx),
		(T(iy)+jitter.Y)/T(ny),
	)
}
