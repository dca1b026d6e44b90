package geometry

// Precision-suffixed aliases for the two supported instantiations.
// F names the 32-bit variant, D the 64-bit variant.
type (
	RayF = Ray[float32]
	RayD = Ray[float64]

	AABBF = AABB[float32]
	AABBD = AABB[float64]

	BoundingSphereF = BoundingSphere[float32]
	BoundingSphereD = BoundingSphere[float64]

	BoundingVolumeF = BoundingVolume[float32]
	BoundingVolumeD = BoundingVolume[float64]

	ShapeF = Shape[float32]
	ShapeD = Shape[float64]

	IntersectionF = Intersection[float32]
	IntersectionD = Intersection[float64]

	SurfaceSampleF = SurfaceSample[float32]
	SurfaceSampleD = SurfaceSample[float64]

	PlaneF = Plane[float32]
	PlaneD = Plane[float64]

	SphereF = Sphere[float32]
	SphereD = Sphere[float64]

	TriangleF = Triangle[float32]
	TriangleD = Triangle[float64]

	TriangleMeshF = TriangleMesh[float32]
	TriangleMeshD = TriangleMesh[float64]

	MeshTriangleF = MeshTriangle[float32]
	MeshTriangleD = MeshTriangle[float64]

	RectangularCuboidF = RectangularCuboid[float32]
	RectangularCuboidD = RectangularCuboid[float64]
)
