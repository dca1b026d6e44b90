package sampling

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dfraser/go-geometry-kernel/pkg/math"
)

// unitGrid enumerates a deterministic grid of canonical samples covering the
// corners, edges and interior of [0,1)².
func unitGrid() []math.Vec2[float64] {
	var samples []math.Vec2[float64]
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			samples = append(samples, math.NewVec2(float64(i)/8+0.001, float64(j)/8+0.001))
		}
	}
	samples = append(samples, math.NewVec2(0.0, 0), math.NewVec2(0.5, 0.5), math.NewVec2(0.999, 0.999))
	return samples
}

func TestSquareToUniformDisk(t *testing.T) {
	for _, u := range unitGrid() {
		p := SquareToUniformDisk(u)
		assert.LessOrEqual(t, p.Length(), 1.0+1e-12, "disk point %v from %v outside unit disk", p, u)
	}

	// The center of the square maps to the center of the disk.
	center := SquareToUniformDisk(math.NewVec2(0.5, 0.5))
	assert.InDelta(t, 0, center.Length(), 1e-12)

	assert.InDelta(t, 1/stdmath.Pi, UniformDiskPDF[float64](), 1e-15)
}

func TestSquareToUniformDisk_PreservesStratification(t *testing.T) {
	// The concentric mapping is injective away from the center: distinct
	// strata must land on distinct disk points.
	seen := make(map[math.Vec2[float64]]bool)
	for _, u := range unitGrid() {
		p := SquareToUniformDisk(u)
		assert.False(t, seen[p], "samples collapsed onto %v", p)
		seen[p] = true
	}
}

func TestSquareToCosineHemisphere(t *testing.T) {
	for _, u := range unitGrid() {
		d := SquareToCosineHemisphere(u)
		assert.InDelta(t, 1.0, d.Length(), 1e-9, "direction %v from %v not unit", d, u)
		assert.GreaterOrEqual(t, d.Z, 0.0, "direction %v below the hemisphere", d)

		// Density matches the direction's cosine against +z.
		assert.InDelta(t, d.Z/stdmath.Pi, CosineHemispherePDF(d.Z), 1e-9)
	}

	assert.Equal(t, 0.0, CosineHemispherePDF(-0.5), "below-horizon density must be zero")
	assert.Equal(t, 0.0, CosineHemispherePDF(0.0))
}

func TestCosineHemisphereAround(t *testing.T) {
	normals := []math.Vec3[float64]{
		math.NewVec3(0.0, 0, 1),
		math.NewVec3(0.0, 1, 0),
		math.NewVec3(1.0, 1, 1).Normalize(),
		math.NewVec3(-0.3, 0.2, -0.9).Normalize(),
	}

	for _, n := range normals {
		for _, u := range unitGrid() {
			d := CosineHemisphereAround(n, u)
			assert.InDelta(t, 1.0, d.Length(), 1e-9)
			assert.GreaterOrEqual(t, d.Dot(n), -1e-9, "direction %v outside hemisphere around %v", d, n)
		}
	}
}

func TestSquareToUniformHemisphere(t *testing.T) {
	for _, u := range unitGrid() {
		d := SquareToUniformHemisphere(u)
		assert.InDelta(t, 1.0, d.Length(), 1e-9)
		assert.GreaterOrEqual(t, d.Z, 0.0)
	}
	assert.InDelta(t, 1/(2*stdmath.Pi), UniformHemispherePDF[float64](), 1e-15)
}

func TestSquareToUniformSphere(t *testing.T) {
	sawUpper, sawLower := false, false
	for _, u := range unitGrid() {
		d := SquareToUniformSphere(u)
		assert.InDelta(t, 1.0, d.Length(), 1e-9)
		if d.Z > 0.1 {
			sawUpper = true
		}
		if d.Z < -0.1 {
			sawLower = true
		}
	}
	assert.True(t, sawUpper && sawLower, "sphere mapping must cover both hemispheres")
	assert.InDelta(t, 1/(4*stdmath.Pi), UniformSpherePDF[float64](), 1e-15)
}

func TestSquareToCone(t *testing.T) {
	cosThetaMax := stdmath.Cos(stdmath.Pi / 6)

	for _, u := range unitGrid() {
		d := SquareToCone(u, cosThetaMax)
		assert.InDelta(t, 1.0, d.Length(), 1e-9)
		assert.GreaterOrEqual(t, d.Z, cosThetaMax-1e-9, "direction %v outside the cone", d)
	}

	// A full hemisphere cone reduces to the hemisphere density.
	assert.InDelta(t, UniformHemispherePDF[float64](), UniformConePDF(0.0), 1e-15)
}

func TestStratified(t *testing.T) {
	nx, ny := 4, 3
	jitter := math.NewVec2(0.5, 0.5)

	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			s := Stratified(ix, iy, nx, ny, jitter)

			// Sample is confined to its cell.
			assert.GreaterOrEqual(t, s.X, float64(ix)/float64(nx))
			assert.Less(t, s.X, float64(ix+1)/float64(nx))
			assert.GreaterOrEqual(t, s.Y, float64(iy)/float64(ny))
			assert.Less(t, s.Y, float64(iy+1)/float64(ny))

			// Identical inputs reproduce the sample exactly.
			assert.Equal(t, s, Stratified(ix, iy, nx, ny, jitter))
		}
	}
}

func TestMappingsAreDeterministic(t *testing.T) {
	u := math.NewVec2(0.37, 0.82)
	assert.Equal(t, SquareToUniformDisk(u), SquareToUniformDisk(u))
	assert.Equal(t, SquareToCosineHemisphere(u), SquareToCosineHemisphere(u))
	assert.Equal(t, SquareToUniformSphere(u), SquareToUniformSphere(u))
	assert.Equal(t, SquareToCone(u, 0.9), SquareToCone(u, 0.9))
}

func TestMappings_Float32(t *testing.T) {
	u := math.NewVec2[float32](0.25, 0.75)

	d := SquareToCosineHemisphere(u)
	assert.InDelta(t, 1.0, float64(d.Length()), 1e-5)
	assert.GreaterOrEqual(t, d.Z, float32(0))

	p := SquareToUniformDisk(u)
	assert.LessOrEqual(t, float64(p.Length()), 1.0+1e-5)
}
