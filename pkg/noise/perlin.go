// Package noise provides coherent gradient noise over 2D/3D coordinates for
// procedural perturbation.
package noise

import (
	"github.com/MichaelTJones/pcg"

	"github.com/dfraser/go-geometry-kernel/pkg/math"
)

// Perlin evaluates classic improved gradient noise. The permutation table is
// built once from the seed and never mutated afterwards, so a generator is
// safe for concurrent use.
type Perlin[T math.Float] struct {
	perm [512]uint8
}

// permSequence selects the PCG stream used to shuffle permutation tables.
const permSequence = 0x9e3779b97f4a7c15

// NewPerlin creates a generator whose gradient field is determined entirely
// by the seed: two generators with the same seed agree everywhere.
func NewPerlin[T math.Float](seed uint64) *Perlin[T] {
	var table [256]uint8
	for i := range table {
		table[i] = uint8(i)
	}

	rng := pcg.NewPCG32()
	rng.Seed(seed, permSequence)
	for i := len(table) - 1; i > 0; i-- {
		j := int(rng.Bounded(uint32(i + 1)))
		table[i], table[j] = table[j], table[i]
	}

	n := &Perlin[T]{}
	for i := range n.perm {
		n.perm[i] = table[i&255]
	}
	return n
}

// fade is the quintic interpolant 6t⁵-15t⁴+10t³; its first and second
// derivatives vanish at the lattice points, which keeps the field smooth
// across integer boundaries.
func fade[T math.Float](t T) T {
	return t * t * t * (t*(t*6-15) + 10)
}

// grad projects the point onto one of twelve gradient directions selected by
// the hash.
func grad[T math.Float](hash uint8, x, y, z T) T {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// Noise3 returns the gradient noise value at (x, y, z). The result lies in
// [-1, 1] (the attainable extrema are ±√3/2) and is continuous and smooth
// everywhere.
func (n *Perlin[T]) Noise3(x, y, z T) T {
	xf, yf, zf := math.Floor(x), math.Floor(y), math.Floor(z)
	xi := int(xf) & 255
	yi := int(yf) & 255
	zi := int(zf) & 255
	x -= xf
	y -= yf
	z -= zf

	u, v, w := fade(x), fade(y), fade(z)

	a := int(n.perm[xi]) + yi
	aa := int(n.perm[a]) + zi
	ab := int(n.perm[a+1]) + zi
	b := int(n.perm[xi+1]) + yi
	ba := int(n.perm[b]) + zi
	bb := int(n.perm[b+1]) + zi

	return math.Lerp(w,
		math.Lerp(v,
			math.Lerp(u, grad(n.perm[aa], x, y, z), grad(n.perm[ba], x-1, y, z)),
			math.Lerp(u, grad(n.perm[ab], x, y-1, z), grad(n.perm[bb], x-1, y-1, z)),
		),
		math.Lerp(v,
			math.Lerp(u, grad(n.perm[aa+1], x, y, z-1), grad(n.perm[ba+1], x-1, y, z-1)),
			math.Lerp(u, grad(n.perm[ab+1], x, y-1, z-1), grad(n.perm[bb+1], x-1, y-1, z-1)),
		),
	)
}

// Noise2 returns the gradient noise value at (x, y), evaluated as the z=0
// slice of the 3D field.
func (n *Perlin[T]) Noise2(x, y T) T {
	return n.Noise3(x, y, 0)
}

// FBM sums octaves of noise with the given frequency multiplier (lacunarity)
// and amplitude falloff (gain), normalized back into [-1, 1].
func (n *Perlin[T]) FBM(x, y, z T, octaves int, lacunarity, gain T) T {
	var sum, norm T
	amplitude, frequency := T(1), T(1)
	for octave := 0; octave < octaves; octave++ {
		sum += amplitude * n.Noise3(x*frequency, y*frequency, z*frequency)
		norm += amplitude
		frequency *= lacunarity
		amplitude *= gain
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// Turbulence sums octaves of absolute noise, the classic fractal used for
// marble and fire perturbation. The result lies in [0, 1].
func (n *Perlin[T]) Turbulence(x, y, z T, octaves int) T {
	var sum, norm T
	amplitude, frequency := T(1), T(1)
	for octave := 0; octave < octaves; octave++ {
		sum += amplitude * math.Abs(n.Noise3(x*frequency, y*frequency, z*frequency))
		norm += amplitude
		frequency *= 2
		amplitude /= 2
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// Precision-suffixed aliases for the two supported instantiations.
type (
	PerlinF = Perlin[float32]
	PerlinD = Perlin[float64]
)
