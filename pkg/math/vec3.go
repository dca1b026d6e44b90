package math

// Vec3 represents a 3D vector or point at precision T.
type Vec3[T Float] struct {
	X, Y, Z T
}

// NewVec3 creates a new Vec3.
func NewVec3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors.
func (v Vec3[T]) Subtract(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar.
func (v Vec3[T]) Multiply(scalar T) Vec3[T] {
	return Vec3[T]{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors.
func (v Vec3[T]) MultiplyVec(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Negate returns the negative of the vector.
func (v Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// Length returns the magnitude of the vector.
func (v Vec3[T]) Length() T {
	return Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector.
func (v Vec3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors.
func (v Vec3[T]) Dot(other Vec3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors.
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction. The zero vector
// normalizes to the zero vector; downstream epsilon checks turn that into a
// no-hit answer rather than NaN.
func (v Vec3[T]) Normalize() Vec3[T] {
	length := v.Length()
	if length == 0 {
		return Vec3[T]{}
	}
	return Vec3[T]{v.X / length, v.Y / length, v.Z / length}
}

// Lerp linearly interpolates between v (t=0) and other (t=1).
func (v Vec3[T]) Lerp(other Vec3[T], t T) Vec3[T] {
	return v.Multiply(1 - t).Add(other.Multiply(t))
}

// Axis returns the component selected by axis (0=X, 1=Y, 2=Z).
func (v Vec3[T]) Axis(axis int) T {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// IsFinite reports whether every component is finite.
func (v Vec3[T]) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}

// MinVec returns the component-wise minimum of two vectors.
func MinVec[T Float](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{Min(a.X, b.X), Min(a.Y, b.Y), Min(a.Z, b.Z)}
}

// MaxVec returns the component-wise maximum of two vectors.
func MaxVec[T Float](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{Max(a.X, b.X), Max(a.Y, b.Y), Max(a.Z, b.Z)}
}
