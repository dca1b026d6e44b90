package math

// OrthonormalBasis is a local coordinate frame of three mutually
// perpendicular unit axes. W is the primary axis, conventionally the surface
// normal for shading and sampling frames. Immutable once constructed.
type OrthonormalBasis[T Float] struct {
	U, V, W Vec3[T]
}

// NewBasisFromW builds a basis around the primary axis w. The perpendicular
// axis is seeded from the coordinate axis along w's smallest-magnitude
// component, which keeps the cross product well conditioned for any non-zero
// input.
func NewBasisFromW[T Float](w Vec3[T]) OrthonormalBasis[T] {
	w = w.Normalize()

	ax, ay, az := Abs(w.X), Abs(w.Y), Abs(w.Z)
	var axis Vec3[T]
	switch {
	case ax <= ay && ax <= az:
		axis = Vec3[T]{X: 1}
	case ay <= az:
		axis = Vec3[T]{Y: 1}
	default:
		axis = Vec3[T]{Z: 1}
	}

	u := axis.Cross(w).Normalize()
	v := w.Cross(u)
	return OrthonormalBasis[T]{U: u, V: v, W: w}
}

// NewBasisFromWV builds a basis around the primary axis w, using v as a hint
// for the secondary axis. The hint is re-orthogonalized against w via
// Gram-Schmidt; if it is (near-)parallel to w the single-vector construction
// is used instead.
func NewBasisFromWV[T Float](w, v Vec3[T]) OrthonormalBasis[T] {
	w = w.Normalize()

	vPerp := v.Subtract(w.Multiply(v.Dot(w)))
	if vPerp.LengthSquared() < Epsilon[T]() {
		return NewBasisFromW(w)
	}
	vUnit := vPerp.Normalize()
	u := vUnit.Cross(w)
	return OrthonormalBasis[T]{U: u, V: vUnit, W: w}
}

// ToWorld transforms a basis-space vector into world space.
func (b OrthonormalBasis[T]) ToWorld(local Vec3[T]) Vec3[T] {
	return b.U.Multiply(local.X).Add(b.V.Multiply(local.Y)).Add(b.W.Multiply(local.Z))
}

// ToLocal transforms a world-space vector into basis space.
func (b OrthonormalBasis[T]) ToLocal(world Vec3[T]) Vec3[T] {
	return Vec3[T]{X: world.Dot(b.U), Y: world.Dot(b.V), Z: world.Dot(b.W)}
}
