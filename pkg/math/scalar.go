// Package math provides the precision-generic scalar and vector algebra the
// geometry kernel is built on. Every operation is parameterized over the two
// supported precisions and dispatches to the matching native math routine, so
// float32 code never pays for float64 round-trips.
package math

import (
	stdmath "math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the set of supported scalar precisions. The constraint is exact
// (no underlying-type terms) so values can be dispatched on with a type
// assertion.
type Float interface {
	float32 | float64
}

// Pi at full precision; assignment to a float32 rounds it appropriately.
const Pi = stdmath.Pi

// Sqrt returns the square root of x at x's own precision.
func Sqrt[T Float](x T) T {
	if x32, ok := any(x).(float32); ok {
		return T(math32.Sqrt(x32))
	}
	return T(stdmath.Sqrt(float64(x)))
}

// Sin returns the sine of x (radians).
func Sin[T Float](x T) T {
	if x32, ok := any(x).(float32); ok {
		return T(math32.Sin(x32))
	}
	return T(stdmath.Sin(float64(x)))
}

// Cos returns the cosine of x (radians).
func Cos[T Float](x T) T {
	if x32, ok := any(x).(float32); ok {
		return T(math32.Cos(x32))
	}
	return T(stdmath.Cos(float64(x)))
}

// Tan returns the tangent of x (radians).
func Tan[T Float](x T) T {
	if x32, ok := any(x).(float32); ok {
		return T(math32.Tan(x32))
	}
	return T(stdmath.Tan(float64(x)))
}

// Asin returns the arcsine of x.
func Asin[T Float](x T) T {
	if x32, ok := any(x).(float32); ok {
		return T(math32.Asin(x32))
	}
	return T(stdmath.Asin(float64(x)))
}

// Acos returns the arccosine of x.
func Acos[T Float](x T) T {
	if x32, ok := any(x).(float32); ok {
		return T(math32.Acos(x32))
	}
	return T(stdmath.Acos(float64(x)))
}

// Atan2 returns the angle of the point (x, y) in the correct quadrant.
func Atan2[T Float](y, x T) T {
	if y32, ok := any(y).(float32); ok {
		return T(math32.Atan2(y32, any(x).(float32)))
	}
	return T(stdmath.Atan2(float64(y), float64(x)))
}

// Floor returns the greatest integer value less than or equal to x.
func Floor[T Float](x T) T {
	if x32, ok := any(x).(float32); ok {
		return T(math32.Floor(x32))
	}
	return T(stdmath.Floor(float64(x)))
}

// Pow returns x raised to the power y.
func Pow[T Float](x, y T) T {
	if x32, ok := any(x).(float32); ok {
		return T(math32.Pow(x32, any(y).(float32)))
	}
	return T(stdmath.Pow(float64(x), float64(y)))
}

// Hypot returns sqrt(x²+y²) without undue overflow.
func Hypot[T Float](x, y T) T {
	if x32, ok := any(x).(float32); ok {
		return T(math32.Hypot(x32, any(y).(float32)))
	}
	return T(stdmath.Hypot(float64(x), float64(y)))
}

// Inf returns an infinity of the requested precision: positive if sign >= 0,
// negative otherwise.
func Inf[T Float](sign int) T {
	return T(stdmath.Inf(sign))
}

// MaxValue returns the largest finite value of the precision. It is the
// sentinel used for empty and unbounded extents; the smallest positive
// denormal has no role in this package.
func MaxValue[T Float]() T {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return T(stdmath.MaxFloat32)
	}
	max64 := float64(stdmath.MaxFloat64)
	return T(max64)
}

// Epsilon returns the geometric tolerance of the precision, used for
// parallel-ray and degeneracy tests.
func Epsilon[T Float]() T {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return T(1e-4)
	}
	return T(1e-8)
}

// IsNaN reports whether x is a not-a-number value.
func IsNaN[T Float](x T) bool {
	return x != x
}

// IsInf reports whether x is an infinity of either sign.
func IsInf[T Float](x T) bool {
	return x > MaxValue[T]() || x < -MaxValue[T]()
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite[T Float](x T) bool {
	return !IsNaN(x) && !IsInf(x)
}

// Abs returns the absolute value of x.
func Abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to the range [lo, hi].
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Sqr returns x².
func Sqr[T constraints.Float](x T) T {
	return x * x
}

// Lerp linearly interpolates between a (t=0) and b (t=1).
func Lerp[T constraints.Float](t, a, b T) T {
	return a + t*(b-a)
}

// Radians converts degrees to radians.
func Radians[T Float](degrees T) T {
	return degrees * Pi / 180
}

// Degrees converts radians to degrees.
func Degrees[T Float](radians T) T {
	return radians * 180 / Pi
}
