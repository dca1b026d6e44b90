package geometry

import (
	stdmath "math"
	"testing"

	"github.com/dfraser/go-geometry-kernel/pkg/math"
)

func mustSphere(t *testing.T, center math.Vec3[float64], radius float64) *Sphere[float64] {
	t.Helper()
	sphere, err := NewSphere(center, radius)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return sphere
}

func TestSphere_Intersect_HeadOn(t *testing.T) {
	sphere := mustSphere(t, math.NewVec3(0.0, 0, 0), 1.0)
	ray := NewRay(math.NewVec3(0.0, 0, 5), math.NewVec3(0.0, 0, -1))

	its, isHit := sphere.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if stdmath.Abs(its.T-4.0) > 1e-12 {
		t.Errorf("Expected t=4, got t=%v", its.T)
	}
	expectedPoint := math.NewVec3(0.0, 0, 1)
	if its.Point.Subtract(expectedPoint).Length() > 1e-12 {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, its.Point)
	}
	expectedNormal := math.NewVec3(0.0, 0, 1)
	if its.Normal.Subtract(expectedNormal).Length() > 1e-12 {
		t.Errorf("Expected normal %v, got %v", expectedNormal, its.Normal)
	}
	if !its.FrontFace {
		t.Error("Expected front face hit")
	}
}

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := mustSphere(t, math.NewVec3(0.0, 0, 0), 1.0)
	ray := NewRay(math.NewVec3(2.0, 0, 0), math.NewVec3(0.0, 1, 0))

	if tHit, isHit := sphere.IntersectT(ray); isHit {
		t.Errorf("Expected miss, but got hit at t=%v", tHit)
	}
}

func TestSphere_Intersect_FrontAndBackFace(t *testing.T) {
	sphere := mustSphere(t, math.NewVec3(0.0, 0, 0), 1.0)

	tests := []struct {
		name           string
		rayOrigin      math.Vec3[float64]
		rayDirection   math.Vec3[float64]
		expectedT      float64
		expectedFront  bool
		expectedNormal math.Vec3[float64]
	}{
		{
			name:           "front face hit picks the smaller root",
			rayOrigin:      math.NewVec3(0.0, 0, 2),
			rayDirection:   math.NewVec3(0.0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: math.NewVec3(0.0, 0, 1),
		},
		{
			name:           "origin inside returns the positive root",
			rayOrigin:      math.NewVec3(0.0, 0, 0),
			rayDirection:   math.NewVec3(0.0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: math.NewVec3(0.0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := NewRay(tt.rayOrigin, tt.rayDirection)
			its, isHit := sphere.Intersect(ray)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if stdmath.Abs(its.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%v, got t=%v", tt.expectedT, its.T)
			}
			if its.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, its.FrontFace)
			}
			if its.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, its.Normal)
			}
		})
	}
}

func TestSphere_Intersect_Bounds(t *testing.T) {
	sphere := mustSphere(t, math.NewVec3(0.0, 0, 0), 1.0)
	origin := math.NewVec3(0.0, 0, 2)
	direction := math.NewVec3(0.0, 0, -1)

	// tMax clips the near hit; the far hit at t=3 is out of range too.
	if _, isHit := sphere.IntersectT(NewRayWithRange(origin, direction, 0.001, 0.5)); isHit {
		t.Error("Expected miss due to tMax bound")
	}

	// tMin past both roots.
	if _, isHit := sphere.IntersectT(NewRayWithRange(origin, direction, 3.5, 1000)); isHit {
		t.Error("Expected miss due to tMin bound")
	}

	// tMin between the roots selects the far root.
	tHit, isHit := sphere.IntersectT(NewRayWithRange(origin, direction, 2.0, 1000))
	if !isHit {
		t.Fatal("Expected far-root hit")
	}
	if stdmath.Abs(tHit-3.0) > 1e-12 {
		t.Errorf("Expected far root t=3, got %v", tHit)
	}
}

func TestSphere_Intersect_Tangent(t *testing.T) {
	sphere := mustSphere(t, math.NewVec3(0.0, 0, 0), 1.0)
	ray := NewRay(math.NewVec3(1.0, 0, 5), math.NewVec3(0.0, 0, -1))

	tHit, isHit := sphere.IntersectT(ray)
	if !isHit {
		t.Fatal("Expected tangent hit, but got miss")
	}
	point := ray.At(tHit)
	if point.Subtract(math.NewVec3(1.0, 0, 0)).Length() > 1e-6 {
		t.Errorf("Expected tangent point (1,0,0), got %v", point)
	}
}

func TestSphere_IntersectAgreesWithIntersectT(t *testing.T) {
	sphere := mustSphere(t, math.NewVec3(1.0, -2, 3), 2.5)
	rays := []Ray[float64]{
		NewRay(math.NewVec3(1.0, -2, 10), math.NewVec3(0.0, 0, -1)),
		NewRay(math.NewVec3(10.0, 0, 0), math.NewVec3(-1.0, -0.2, 0.3)),
		NewRay(math.NewVec3(1.0, -2, 3), math.NewVec3(1.0, 1, 1)),
		NewRay(math.NewVec3(10.0, 10, 10), math.NewVec3(1.0, 0, 0)),
	}

	for _, ray := range rays {
		tHit, okT := sphere.IntersectT(ray)
		its, okFull := sphere.Intersect(ray)
		if okT != okFull {
			t.Fatalf("IntersectT hit=%t disagrees with Intersect hit=%t", okT, okFull)
		}
		if okT && its.T != tHit {
			t.Errorf("Intersect t=%v disagrees with IntersectT t=%v", its.T, tHit)
		}
	}
}

func TestSphere_Idempotent(t *testing.T) {
	sphere := mustSphere(t, math.NewVec3(0.3, 0.7, -1.1), 1.7)
	ray := NewRay(math.NewVec3(5.0, 5, 5), math.NewVec3(-1.0, -0.9, -1.2))

	first, okFirst := sphere.Intersect(ray)
	second, okSecond := sphere.Intersect(ray)
	if okFirst != okSecond {
		t.Fatal("Hit/no-hit flapped between identical queries")
	}
	if okFirst && *first != *second {
		t.Errorf("Expected bit-identical results, got %+v vs %+v", first, second)
	}
}

func TestSphere_UV(t *testing.T) {
	sphere := mustSphere(t, math.NewVec3(0.0, 0, 0), 1.0)

	tests := []struct {
		name       string
		direction  math.Vec3[float64]
		expectedUV math.Vec2[float64]
	}{
		{"+x seam", math.NewVec3(1.0, 0, 0), math.NewVec2(0.0, 0.5)},
		{"-x", math.NewVec3(-1.0, 0, 0), math.NewVec2(0.5, 0.5)},
		{"north pole", math.NewVec3(0.0, 0, 1), math.NewVec2(0.0, 0.0)},
		{"south pole", math.NewVec3(0.0, 0, -1), math.NewVec2(0.0, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origin := tt.direction.Multiply(5)
			ray := NewRay(origin, tt.direction.Negate())
			its, isHit := sphere.Intersect(ray)
			if !isHit {
				t.Fatal("Expected hit")
			}
			if stdmath.Abs(its.UV.X-tt.expectedUV.X) > 1e-9 ||
				stdmath.Abs(its.UV.Y-tt.expectedUV.Y) > 1e-9 {
				t.Errorf("Expected UV %v, got %v", tt.expectedUV, its.UV)
			}
		})
	}
}

func TestPartialSphere_RejectsOutOfExtent(t *testing.T) {
	// Upper hemisphere only.
	sphere, err := NewPartialSphere(math.NewVec3(0.0, 0, 0), 1.0, 0, 1, 2*stdmath.Pi)
	if err != nil {
		t.Fatalf("NewPartialSphere: %v", err)
	}

	// A ray through the lower hemisphere misses.
	if _, isHit := sphere.IntersectT(NewRay(math.NewVec3(0.0, 0, -5), math.NewVec3(0.0, 0, 1)).WithRange(0, 4.9)); isHit {
		t.Error("Expected miss below the clipped extent")
	}

	// A downward ray skips the clipped near hemisphere... and hits the
	// equator plane z=0 boundary region on the far side of the upper half.
	tHit, isHit := sphere.IntersectT(NewRay(math.NewVec3(0.0, 0, 5), math.NewVec3(0.0, 0, -1)))
	if !isHit {
		t.Fatal("Expected hit on the upper hemisphere")
	}
	if stdmath.Abs(tHit-4.0) > 1e-9 {
		t.Errorf("Expected near hit at t=4, got %v", tHit)
	}

	// Phi clipping: a half-sphere sweep excludes -y.
	half, err := NewPartialSphere(math.NewVec3(0.0, 0, 0), 1.0, -1, 1, stdmath.Pi)
	if err != nil {
		t.Fatalf("NewPartialSphere: %v", err)
	}
	tHit, isHit = half.IntersectT(NewRay(math.NewVec3(0.0, -5, 0), math.NewVec3(0.0, 1, 0)))
	if !isHit {
		t.Fatal("Expected far-side hit on the swept half")
	}
	if stdmath.Abs(tHit-6.0) > 1e-9 {
		t.Errorf("Expected the +y far hit at t=6, got %v", tHit)
	}
}

func TestSphere_SurfaceArea(t *testing.T) {
	sphere := mustSphere(t, math.NewVec3(0.0, 0, 0), 2.0)
	if got := sphere.SurfaceArea(); stdmath.Abs(got-16*stdmath.Pi) > 1e-12 {
		t.Errorf("Expected 16π, got %v", got)
	}

	hemisphere, err := NewPartialSphere(math.NewVec3(0.0, 0, 0), 2.0, 0, 2, 2*stdmath.Pi)
	if err != nil {
		t.Fatalf("NewPartialSphere: %v", err)
	}
	if got := hemisphere.SurfaceArea(); stdmath.Abs(got-8*stdmath.Pi) > 1e-12 {
		t.Errorf("Expected hemisphere area 8π, got %v", got)
	}
}

func TestSphere_Sample(t *testing.T) {
	sphere := mustSphere(t, math.NewVec3(1.0, 2, 3), 2.0)
	expectedPDF := 1 / (16 * stdmath.Pi)

	a := sphere.Sample(0, 0)
	b := sphere.Sample(0.5, 0.5)

	if a.Point == b.Point {
		t.Error("Expected distinct sample points for distinct inputs")
	}

	for _, sample := range []SurfaceSample[float64]{a, b} {
		distance := sample.Point.Subtract(sphere.Center).Length()
		if stdmath.Abs(distance-2.0) > 1e-9 {
			t.Errorf("Sample point %v at distance %v from center, want 2", sample.Point, distance)
		}
		if stdmath.Abs(sample.PDF-expectedPDF) > 1e-12 {
			t.Errorf("Expected density 1/(16π), got %v", sample.PDF)
		}
		if stdmath.Abs(sample.Normal.Length()-1.0) > 1e-9 {
			t.Errorf("Expected unit normal, got %v", sample.Normal)
		}
	}
}

func TestSphere_SamplesInsideBoundingBox(t *testing.T) {
	sphere := mustSphere(t, math.NewVec3(-1.0, 4, 0.5), 1.5)
	box := sphere.BoundingBox().Expand(1e-9)

	for _, u := range []struct{ u1, u2 float64 }{
		{0, 0}, {0, 0.999}, {0.999, 0}, {0.5, 0.5}, {0.25, 0.75}, {0.999, 0.999},
	} {
		sample := sphere.Sample(u.u1, u.u2)
		if !box.Contains(sample.Point) {
			t.Errorf("Sample(%v, %v) = %v escapes bounding box", u.u1, u.u2, sample.Point)
		}
	}
}

func TestSphere_ConstructionRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
	}{
		{"zero radius", 0},
		{"negative radius", -1},
		{"NaN radius", stdmath.NaN()},
		{"infinite radius", stdmath.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSphere(math.NewVec3(0.0, 0, 0), tt.radius); err == nil {
				t.Error("Expected construction error")
			}
		})
	}

	if _, err := NewPartialSphere(math.NewVec3(0.0, 0, 0), 1.0, 0.5, 0.5, stdmath.Pi); err == nil {
		t.Error("Expected error for empty z extent")
	}
	if _, err := NewPartialSphere(math.NewVec3(0.0, 0, 0), 1.0, -1, 1, -0.5); err == nil {
		t.Error("Expected error for negative phi extent")
	}
}
