package geometry

import "github.com/dfraser/go-geometry-kernel/pkg/math"

// BoundingVolume is the common contract of the two bounding-volume variants,
// AABB and BoundingSphere. Implementations are pure values; unions produce
// new instances.
type BoundingVolume[T math.Float] interface {
	Contains(p math.Vec3[T]) bool
	IntersectsRay(ray Ray[T]) bool
	SurfaceArea() T
	Volume() T
}

// Intersection describes where and how a ray meets a shape. It is a
// caller-owned value; Shape is a reference to the hit shape, not ownership.
type Intersection[T math.Float] struct {
	Point         math.Vec3[T]               // Point of intersection
	Normal        math.Vec3[T]               // Geometric normal, oriented against the ray
	ShadingNormal math.Vec3[T]               // Interpolated normal, oriented like Normal
	UV            math.Vec2[T]               // Texture coordinates at the hit
	Basis         math.OrthonormalBasis[T]   // Local frame around ShadingNormal
	Shape         Shape[T]                   // The shape that was hit
	T             T                          // Ray parameter at the hit
	FrontFace     bool                       // Whether the ray hit the front face
}

// setFaceNormals orients the geometric and shading normals against the
// incoming ray and records which face was hit.
func (its *Intersection[T]) setFaceNormals(ray Ray[T], outward, shading math.Vec3[T]) {
	its.FrontFace = ray.Direction.Dot(outward) < 0
	if its.FrontFace {
		its.Normal = outward
		its.ShadingNormal = shading
	} else {
		its.Normal = outward.Negate()
		its.ShadingNormal = shading.Negate()
	}
	its.Basis = math.NewBasisFromW(its.ShadingNormal)
}

// SurfaceSample is a point sampled on a shape's surface together with the
// surface normal there and the probability density of the sample with
// respect to surface area.
type SurfaceSample[T math.Float] struct {
	Point  math.Vec3[T]
	Normal math.Vec3[T]
	PDF    T
}

// Shape is the closed abstraction over the concrete geometric variants:
// Plane, Sphere, Triangle, TriangleMesh, and RectangularCuboid.
//
// All methods are side-effect-free and safe for concurrent use on an
// immutable shape. IntersectT is the cheap first-hit query used for
// shadow/occlusion tests; Intersect agrees with it exactly on hit/no-hit and
// on the reported t.
type Shape[T math.Float] interface {
	// BoundingBox returns a tight axis-aligned bound of the shape.
	BoundingBox() AABB[T]

	// IntersectT returns the smallest t in [ray.TMin, ray.TMax] at which
	// the ray hits the surface.
	IntersectT(ray Ray[T]) (T, bool)

	// Intersect returns the full hit record for the first hit in range.
	Intersect(ray Ray[T]) (*Intersection[T], bool)

	// SurfaceArea returns the total surface area. Infinite for a plane.
	SurfaceArea() T

	// Sample maps two canonical random numbers in [0,1) to a point on the
	// surface under uniform-area sampling.
	Sample(u1, u2 T) SurfaceSample[T]
}
