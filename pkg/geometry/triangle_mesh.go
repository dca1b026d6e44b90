package geometry

import (
	"fmt"

	"github.com/dfraser/go-geometry-kernel/pkg/math"
)

// MeshOptions carries optional per-vertex attributes for a triangle mesh.
// When present, each slice must have one entry per vertex.
type MeshOptions[T math.Float] struct {
	Normals []math.Vec3[T] // Per-vertex shading normals
	UVs     []math.Vec2[T] // Per-vertex texture coordinates
}

// TriangleMesh is an ordered collection of triangles sharing vertex storage.
// The mesh owns its storage exclusively; individual triangles are index views
// into it, not independently allocated shapes. Intersection is the minimum-t
// hit over all faces via a linear scan.
type TriangleMesh[T math.Float] struct {
	vertices []math.Vec3[T]
	normals  []math.Vec3[T] // len 0 or len(vertices)
	uvs      []math.Vec2[T] // len 0 or len(vertices)
	faces    []int          // vertex indices, three per face

	bbox      AABB[T]
	cumArea   []T // cumulative face areas, for area-proportional sampling
	totalArea T
}

// NewTriangleMesh creates a mesh from vertex positions and face indices
// (three per triangle). The inputs are copied. Malformed input — an index
// out of bounds, a non-finite vertex, a degenerate face, or an attribute
// slice of the wrong length — is rejected with an error identifying the
// offending primitive.
func NewTriangleMesh[T math.Float](vertices []math.Vec3[T], faces []int, options *MeshOptions[T]) (*TriangleMesh[T], error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must come in triples, got %d", len(faces))
	}
	for i, v := range vertices {
		if !v.IsFinite() {
			return nil, fmt.Errorf("vertex %d is not finite: %+v", i, v)
		}
	}
	if options != nil {
		if options.Normals != nil && len(options.Normals) != len(vertices) {
			return nil, fmt.Errorf("got %d normals for %d vertices", len(options.Normals), len(vertices))
		}
		if options.UVs != nil && len(options.UVs) != len(vertices) {
			return nil, fmt.Errorf("got %d uvs for %d vertices", len(options.UVs), len(vertices))
		}
	}

	mesh := &TriangleMesh[T]{
		vertices: append([]math.Vec3[T](nil), vertices...),
		faces:    append([]int(nil), faces...),
	}
	if options != nil && options.Normals != nil {
		mesh.normals = make([]math.Vec3[T], len(options.Normals))
		for i, n := range options.Normals {
			mesh.normals[i] = n.Normalize()
		}
	}
	if options != nil && options.UVs != nil {
		mesh.uvs = append([]math.Vec2[T](nil), options.UVs...)
	}

	numFaces := len(faces) / 3
	mesh.bbox = EmptyAABB[T]()
	mesh.cumArea = make([]T, numFaces)

	for face := 0; face < numFaces; face++ {
		for corner := 0; corner < 3; corner++ {
			idx := faces[face*3+corner]
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d references vertex %d, mesh has %d vertices", face, idx, len(vertices))
			}
		}

		v0, v1, v2 := mesh.corners(face)
		area := v1.Subtract(v0).Cross(v2.Subtract(v0)).Length() / 2
		if area < math.Epsilon[T]() {
			return nil, fmt.Errorf("face %d is degenerate: vertices %+v %+v %+v", face, v0, v1, v2)
		}

		mesh.totalArea += area
		mesh.cumArea[face] = mesh.totalArea
		mesh.bbox = mesh.bbox.UnionPoint(v0).UnionPoint(v1).UnionPoint(v2)
	}

	return mesh, nil
}

// corners returns the vertex positions of a face.
func (m *TriangleMesh[T]) corners(face int) (v0, v1, v2 math.Vec3[T]) {
	return m.vertices[m.faces[face*3]],
		m.vertices[m.faces[face*3+1]],
		m.vertices[m.faces[face*3+2]]
}

// TriangleCount returns the number of faces in the mesh.
func (m *TriangleMesh[T]) TriangleCount() int {
	return len(m.faces) / 3
}

// Triangle returns an index view of the given face. The view shares the
// mesh's storage and must not outlive it.
func (m *TriangleMesh[T]) Triangle(face int) MeshTriangle[T] {
	return MeshTriangle[T]{mesh: m, face: face}
}

// IntersectT returns the smallest hit parameter over all faces.
func (m *TriangleMesh[T]) IntersectT(ray Ray[T]) (T, bool) {
	t, _, ok := m.scan(ray)
	return t, ok
}

// Intersect returns the full hit record of the closest face hit.
func (m *TriangleMesh[T]) Intersect(ray Ray[T]) (*Intersection[T], bool) {
	_, face, ok := m.scan(ray)
	if !ok {
		return nil, false
	}
	return m.Triangle(face).Intersect(ray)
}

// scan finds the closest face hit by shrinking the ray's tMax as it goes.
func (m *TriangleMesh[T]) scan(ray Ray[T]) (T, int, bool) {
	bestFace := -1
	for face := 0; face < m.TriangleCount(); face++ {
		v0, v1, v2 := m.corners(face)
		if t, _, _, ok := intersectTriangle(v0, v1, v2, ray); ok {
			ray.TMax = t
			bestFace = face
		}
	}
	if bestFace < 0 {
		return 0, -1, false
	}
	return ray.TMax, bestFace, true
}

// BoundingBox returns the union of the per-face bounding boxes.
func (m *TriangleMesh[T]) BoundingBox() AABB[T] {
	return m.bbox
}

// SurfaceArea returns the sum of the face areas.
func (m *TriangleMesh[T]) SurfaceArea() T {
	return m.totalArea
}

// Sample picks a face with probability proportional to its area, then
// samples that face uniformly, so the density is uniform over the whole
// mesh surface.
func (m *TriangleMesh[T]) Sample(u1, u2 T) SurfaceSample[T] {
	if len(m.cumArea) == 0 {
		return SurfaceSample[T]{}
	}
	target := u1 * m.totalArea

	// Binary search the cumulative area table for the selected face.
	lo, hi := 0, len(m.cumArea)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if m.cumArea[mid] <= target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	face := lo

	// Remap u1 to the selected face's sub-interval so the pair stays
	// uniform on [0,1)².
	prev := T(0)
	if face > 0 {
		prev = m.cumArea[face-1]
	}
	faceArea := m.cumArea[face] - prev
	uFace := math.Clamp((target-prev)/faceArea, 0, 1)

	sample := m.Triangle(face).Sample(uFace, u2)
	sample.PDF = 1 / m.totalArea
	return sample
}

// MeshTriangle is a single face of a TriangleMesh, addressed by index. It
// implements Shape against the mesh's shared storage.
type MeshTriangle[T math.Float] struct {
	mesh *TriangleMesh[T]
	face int
}

// Vertices returns the face's corner positions.
func (mt MeshTriangle[T]) Vertices() (v0, v1, v2 math.Vec3[T]) {
	return mt.mesh.corners(mt.face)
}

// Normal returns the face's geometric normal.
func (mt MeshTriangle[T]) Normal() math.Vec3[T] {
	v0, v1, v2 := mt.Vertices()
	return v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
}

// vertexData returns the shading normal and texture coordinates of corner i,
// falling back to the geometric normal and canonical UVs when the mesh
// carries no per-vertex attributes.
func (mt MeshTriangle[T]) vertexData(corner int) (math.Vec3[T], math.Vec2[T]) {
	idx := mt.mesh.faces[mt.face*3+corner]

	normal := mt.Normal()
	if mt.mesh.normals != nil {
		normal = mt.mesh.normals[idx]
	}

	uv := [3]math.Vec2[T]{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}[corner]
	if mt.mesh.uvs != nil {
		uv = mt.mesh.uvs[idx]
	}
	return normal, uv
}

// IntersectT returns the ray parameter of the hit, if any.
func (mt MeshTriangle[T]) IntersectT(ray Ray[T]) (T, bool) {
	v0, v1, v2 := mt.Vertices()
	t, _, _, ok := intersectTriangle(v0, v1, v2, ray)
	return t, ok
}

// Intersect returns the full hit record with barycentric-interpolated
// shading data.
func (mt MeshTriangle[T]) Intersect(ray Ray[T]) (*Intersection[T], bool) {
	v0, v1, v2 := mt.Vertices()
	t, b1, b2, ok := intersectTriangle(v0, v1, v2, ray)
	if !ok {
		return nil, false
	}
	b0 := 1 - b1 - b2

	n0, uv0 := mt.vertexData(0)
	n1, uv1 := mt.vertexData(1)
	n2, uv2 := mt.vertexData(2)

	shading := n0.Multiply(b0).Add(n1.Multiply(b1)).Add(n2.Multiply(b2)).Normalize()
	uv := uv0.Multiply(b0).Add(uv1.Multiply(b1)).Add(uv2.Multiply(b2))

	its := &Intersection[T]{
		Point: ray.At(t),
		Shape: mt,
		T:     t,
		UV:    uv,
	}
	its.setFaceNormals(ray, mt.Normal(), shading)
	return its, true
}

// BoundingBox returns the axis-aligned bounding box of the face.
func (mt MeshTriangle[T]) BoundingBox() AABB[T] {
	v0, v1, v2 := mt.Vertices()
	return NewAABBFromPoints(v0, v1, v2)
}

// SurfaceArea returns the face's area.
func (mt MeshTriangle[T]) SurfaceArea() T {
	v0, v1, v2 := mt.Vertices()
	return v1.Subtract(v0).Cross(v2.Subtract(v0)).Length() / 2
}

// Sample maps (u1, u2) uniformly by area onto the face.
func (mt MeshTriangle[T]) Sample(u1, u2 T) SurfaceSample[T] {
	v0, v1, v2 := mt.Vertices()
	su := math.Sqrt(u1)
	b0 := 1 - su
	b1 := su * (1 - u2)
	b2 := su * u2

	n0, _ := mt.vertexData(0)
	n1, _ := mt.vertexData(1)
	n2, _ := mt.vertexData(2)

	return SurfaceSample[T]{
		Point:  v0.Multiply(b0).Add(v1.Multiply(b1)).Add(v2.Multiply(b2)),
		Normal: n0.Multiply(b0).Add(n1.Multiply(b1)).Add(n2.Multiply(b2)).Normalize(),
		PDF:    1 / mt.SurfaceArea(),
	}
}
