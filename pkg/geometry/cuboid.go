package geometry

import (
	"fmt"

	"github.com/dfraser/go-geometry-kernel/pkg/math"
)

// RectangularCuboid is an axis-aligned box shape defined by its min and max
// corners. Unlike AABB it is a full Shape: it intersects via the slab method
// and supports area sampling over its six faces.
type RectangularCuboid[T math.Float] struct {
	Min, Max math.Vec3[T]
	bbox     AABB[T]
}

// NewRectangularCuboid creates a cuboid from opposite corners. Flat or
// inverted extents are rejected.
func NewRectangularCuboid[T math.Float](min, max math.Vec3[T]) (*RectangularCuboid[T], error) {
	if !min.IsFinite() || !max.IsFinite() {
		return nil, fmt.Errorf("cuboid corners must be finite, got min=%+v max=%+v", min, max)
	}
	for axis := 0; axis < 3; axis++ {
		if min.Axis(axis) >= max.Axis(axis) {
			return nil, fmt.Errorf("cuboid must have positive extent on every axis, got min=%+v max=%+v", min, max)
		}
	}
	return &RectangularCuboid[T]{Min: min, Max: max, bbox: NewAABB(min, max)}, nil
}

// axisUnit returns the unit vector along an axis with the given sign.
func axisUnit[T math.Float](axis int, sign T) math.Vec3[T] {
	var v math.Vec3[T]
	switch axis {
	case 0:
		v.X = sign
	case 1:
		v.Y = sign
	default:
		v.Z = sign
	}
	return v
}

// intersect runs the slab method and reports the chosen hit parameter, the
// axis whose slab produced it, and whether the ray was entering (near edge)
// or leaving (far edge, origin inside the box).
func (c *RectangularCuboid[T]) intersect(ray Ray[T]) (t T, axis int, entering, ok bool) {
	epsilon := math.Epsilon[T]()
	tNear, tFar := math.Inf[T](-1), math.Inf[T](1)
	nearAxis, farAxis := -1, -1

	for a := 0; a < 3; a++ {
		origin := ray.Origin.Axis(a)
		direction := ray.Direction.Axis(a)
		min := c.Min.Axis(a)
		max := c.Max.Axis(a)

		if math.Abs(direction) < epsilon {
			if origin < min || origin > max {
				return 0, 0, false, false
			}
			continue
		}

		invDirection := 1 / direction
		t1 := (min - origin) * invDirection
		t2 := (max - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if t1 > tNear {
			tNear, nearAxis = t1, a
		}
		if t2 < tFar {
			tFar, farAxis = t2, a
		}
		if tNear > tFar {
			return 0, 0, false, false
		}
	}

	// Near edge wins when it is in range; the far edge covers a ray origin
	// inside the box. tMin/tMax are hard clipping bounds.
	if nearAxis >= 0 && tNear >= ray.TMin && tNear <= ray.TMax {
		return tNear, nearAxis, true, true
	}
	if farAxis >= 0 && tFar >= ray.TMin && tFar <= ray.TMax {
		return tFar, farAxis, false, true
	}
	return 0, 0, false, false
}

// IntersectT returns the ray parameter of the hit, if any.
func (c *RectangularCuboid[T]) IntersectT(ray Ray[T]) (T, bool) {
	t, _, _, ok := c.intersect(ray)
	return t, ok
}

// Intersect returns the full hit record for the first hit in range.
func (c *RectangularCuboid[T]) Intersect(ray Ray[T]) (*Intersection[T], bool) {
	t, axis, entering, ok := c.intersect(ray)
	if !ok {
		return nil, false
	}

	// Outward normal lies along the hit slab's axis: against the ray
	// direction when entering, with it when leaving from inside.
	sign := T(1)
	if ray.Direction.Axis(axis) > 0 {
		sign = -1
	}
	if !entering {
		sign = -sign
	}
	outward := axisUnit(axis, sign)

	hitPoint := ray.At(t)
	its := &Intersection[T]{
		Point: hitPoint,
		Shape: c,
		T:     t,
	}
	its.setFaceNormals(ray, outward, outward)
	its.UV = c.faceUV(axis, hitPoint)
	return its, true
}

// faceUV maps the hit point onto [0,1]² over the two axes spanning the face.
func (c *RectangularCuboid[T]) faceUV(axis int, p math.Vec3[T]) math.Vec2[T] {
	size := c.Max.Subtract(c.Min)
	bAxis, cAxis := (axis+1)%3, (axis+2)%3
	return math.NewVec2(
		(p.Axis(bAxis)-c.Min.Axis(bAxis))/size.Axis(bAxis),
		(p.Axis(cAxis)-c.Min.Axis(cAxis))/size.Axis(cAxis),
	)
}

// BoundingBox returns the cuboid itself as its bound.
func (c *RectangularCuboid[T]) BoundingBox() AABB[T] {
	return c.bbox
}

// SurfaceArea returns the total area of the six faces.
func (c *RectangularCuboid[T]) SurfaceArea() T {
	size := c.Max.Subtract(c.Min)
	return 2 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// Sample picks one of the six faces with probability proportional to its
// area, then samples that face uniformly.
func (c *RectangularCuboid[T]) Sample(u1, u2 T) SurfaceSample[T] {
	size := c.Max.Subtract(c.Min)

	// Face areas come in axis pairs: the two x-faces span y*z, and so on.
	var faceArea [3]T
	faceArea[0] = size.Y * size.Z
	faceArea[1] = size.Z * size.X
	faceArea[2] = size.X * size.Y
	total := c.SurfaceArea()

	// Walk the six faces (min then max side per axis) against the scaled u1,
	// remapping u1 within the chosen face so the pair stays uniform.
	target := u1 * total
	axis, side := 2, 1
	var accum T
walk:
	for a := 0; a < 3; a++ {
		for s := 0; s < 2; s++ {
			if target < accum+faceArea[a] || (a == 2 && s == 1) {
				axis, side = a, s
				u1 = math.Clamp((target-accum)/faceArea[a], 0, 1)
				break walk
			}
			accum += faceArea[a]
		}
	}

	bAxis, cAxis := (axis+1)%3, (axis+2)%3
	point := c.Min
	if side == 1 {
		point = point.Add(axisUnit(axis, size.Axis(axis)))
	}
	point = point.
		Add(axisUnit(bAxis, u1*size.Axis(bAxis))).
		Add(axisUnit(cAxis, u2*size.Axis(cAxis)))

	normalSign := T(-1)
	if side == 1 {
		normalSign = 1
	}

	return SurfaceSample[T]{
		Point:  point,
		Normal: axisUnit(axis, normalSign),
		PDF:    1 / total,
	}
}
