package geometry

import (
	"fmt"

	"github.com/dfraser/go-geometry-kernel/pkg/math"
)

// Triangle represents a single triangle with per-vertex normals and texture
// coordinates.
type Triangle[T math.Float] struct {
	V0, V1, V2    math.Vec3[T] // Vertex positions
	N0, N1, N2    math.Vec3[T] // Per-vertex unit normals
	UV0, UV1, UV2 math.Vec2[T] // Per-vertex texture coordinates

	normal math.Vec3[T] // Geometric normal
	area   T
	bbox   AABB[T]
}

// NewTriangle creates a triangle from three vertices. Vertex normals default
// to the geometric normal and texture coordinates to the canonical
// (0,0)/(1,0)/(0,1) assignment. Degenerate (collinear) triangles are
// rejected.
func NewTriangle[T math.Float](v0, v1, v2 math.Vec3[T]) (*Triangle[T], error) {
	return NewTriangleWithData(
		v0, v1, v2,
		math.Vec3[T]{}, math.Vec3[T]{}, math.Vec3[T]{},
		math.NewVec2[T](0, 0), math.NewVec2[T](1, 0), math.NewVec2[T](0, 1),
	)
}

// NewTriangleWithData creates a triangle with explicit per-vertex normals and
// texture coordinates. Zero normals fall back to the geometric normal.
func NewTriangleWithData[T math.Float](
	v0, v1, v2 math.Vec3[T],
	n0, n1, n2 math.Vec3[T],
	uv0, uv1, uv2 math.Vec2[T],
) (*Triangle[T], error) {
	if !v0.IsFinite() || !v1.IsFinite() || !v2.IsFinite() {
		return nil, fmt.Errorf("triangle vertices must be finite, got %+v %+v %+v", v0, v1, v2)
	}

	cross := v1.Subtract(v0).Cross(v2.Subtract(v0))
	crossLen := cross.Length()
	if crossLen < math.Epsilon[T]() {
		return nil, fmt.Errorf("degenerate triangle: vertices %+v %+v %+v are collinear", v0, v1, v2)
	}

	t := &Triangle[T]{
		V0: v0, V1: v1, V2: v2,
		UV0: uv0, UV1: uv1, UV2: uv2,
		normal: cross.Multiply(1 / crossLen),
		area:   crossLen / 2,
		bbox:   NewAABBFromPoints(v0, v1, v2),
	}

	t.N0, t.N1, t.N2 = t.normal, t.normal, t.normal
	if n0.LengthSquared() > 0 {
		t.N0 = n0.Normalize()
	}
	if n1.LengthSquared() > 0 {
		t.N1 = n1.Normalize()
	}
	if n2.LengthSquared() > 0 {
		t.N2 = n2.Normalize()
	}
	return t, nil
}

// intersectTriangle runs the Möller-Trumbore test against the vertices and
// returns the ray parameter plus the barycentric weights of V1 and V2.
// The V0 weight is 1-b1-b2, so the three weights always sum to exactly one.
func intersectTriangle[T math.Float](v0, v1, v2 math.Vec3[T], ray Ray[T]) (t, b1, b2 T, ok bool) {
	epsilon := math.Epsilon[T]()

	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	// Near-zero determinant: the ray lies in the triangle's plane.
	if det > -epsilon && det < epsilon {
		return 0, 0, 0, false
	}

	invDet := 1 / det
	s := ray.Origin.Subtract(v0)
	b1 = invDet * s.Dot(h)
	if b1 < 0 || b1 > 1 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	b2 = invDet * ray.Direction.Dot(q)
	if b2 < 0 || b1+b2 > 1 {
		return 0, 0, 0, false
	}

	t = invDet * edge2.Dot(q)
	if t < ray.TMin || t > ray.TMax {
		return 0, 0, 0, false
	}
	return t, b1, b2, true
}

// IntersectT returns the ray parameter of the hit, if any.
func (tr *Triangle[T]) IntersectT(ray Ray[T]) (T, bool) {
	t, _, _, ok := intersectTriangle(tr.V0, tr.V1, tr.V2, ray)
	return t, ok
}

// Intersect returns the full hit record. The shading normal and texture
// coordinates are the barycentric interpolation of the per-vertex data, so
// a hit at a vertex reproduces that vertex's data exactly.
func (tr *Triangle[T]) Intersect(ray Ray[T]) (*Intersection[T], bool) {
	t, b1, b2, ok := intersectTriangle(tr.V0, tr.V1, tr.V2, ray)
	if !ok {
		return nil, false
	}
	b0 := 1 - b1 - b2

	shading := tr.N0.Multiply(b0).Add(tr.N1.Multiply(b1)).Add(tr.N2.Multiply(b2)).Normalize()
	uv := tr.UV0.Multiply(b0).Add(tr.UV1.Multiply(b1)).Add(tr.UV2.Multiply(b2))

	its := &Intersection[T]{
		Point: ray.At(t),
		Shape: tr,
		T:     t,
		UV:    uv,
	}
	its.setFaceNormals(ray, tr.normal, shading)
	return its, true
}

// BoundingBox returns the axis-aligned bounding box of the triangle.
func (tr *Triangle[T]) BoundingBox() AABB[T] {
	return tr.bbox
}

// Normal returns the geometric normal.
func (tr *Triangle[T]) Normal() math.Vec3[T] {
	return tr.normal
}

// SurfaceArea returns the triangle's area.
func (tr *Triangle[T]) SurfaceArea() T {
	return tr.area
}

// Sample maps (u1, u2) uniformly by area onto the triangle via the square
// root parameterization.
func (tr *Triangle[T]) Sample(u1, u2 T) SurfaceSample[T] {
	su := math.Sqrt(u1)
	b0 := 1 - su
	b1 := su * (1 - u2)
	b2 := su * u2

	point := tr.V0.Multiply(b0).Add(tr.V1.Multiply(b1)).Add(tr.V2.Multiply(b2))
	normal := tr.N0.Multiply(b0).Add(tr.N1.Multiply(b1)).Add(tr.N2.Multiply(b2)).Normalize()

	return SurfaceSample[T]{
		Point:  point,
		Normal: normal,
		PDF:    1 / tr.area,
	}
}
