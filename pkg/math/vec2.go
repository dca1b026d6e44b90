package math

// Vec2 represents a 2D vector, most often a texture coordinate or a pair of
// canonical sample values.
type Vec2[T Float] struct {
	X, Y T
}

// NewVec2 creates a new Vec2.
func NewVec2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2[T]) Add(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X + other.X, v.Y + other.Y}
}

// Subtract returns the difference of two vectors.
func (v Vec2[T]) Subtract(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X - other.X, v.Y - other.Y}
}

// Multiply returns the vector scaled by a scalar.
func (v Vec2[T]) Multiply(scalar T) Vec2[T] {
	return Vec2[T]{v.X * scalar, v.Y * scalar}
}

// Dot returns the dot product of two vectors.
func (v Vec2[T]) Dot(other Vec2[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude of the vector.
func (v Vec2[T]) Length() T {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// Lerp linearly interpolates between v (t=0) and other (t=1).
func (v Vec2[T]) Lerp(other Vec2[T], t T) Vec2[T] {
	return v.Multiply(1 - t).Add(other.Multiply(t))
}

// IsFinite reports whether both components are finite.
func (v Vec2[T]) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}
