package math

// Precision-suffixed aliases for the two supported instantiations.
// F names the 32-bit variant, D the 64-bit variant.
type (
	Vec2F = Vec2[float32]
	Vec2D = Vec2[float64]

	Vec3F = Vec3[float32]
	Vec3D = Vec3[float64]

	BasisF = OrthonormalBasis[float32]
	BasisD = OrthonormalBasis[float64]
)
