package sampling

import (
	"math/rand"

	"github.com/MichaelTJones/pcg"

	"github.com/dfraser/go-geometry-kernel/pkg/math"
)

// Sampler supplies canonical random values in [0, 1). Implementations are
// the only stateful part of the sampling subsystem and are owned by the
// caller; thread-safety is the caller's responsibility.
type Sampler[T math.Float] interface {
	Get1D() T
	Get2D() math.Vec2[T]
}

// RandomSampler wraps a standard Go random generator.
type RandomSampler[T math.Float] struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator.
func NewRandomSampler[T math.Float](random *rand.Rand) *RandomSampler[T] {
	return &RandomSampler[T]{random: random}
}

// Get1D returns a random value in [0, 1).
func (r *RandomSampler[T]) Get1D() T {
	return T(r.random.Float64())
}

// Get2D returns two random values in [0, 1).
func (r *RandomSampler[T]) Get2D() math.Vec2[T] {
	return math.NewVec2(T(r.random.Float64()), T(r.random.Float64()))
}

// pcgDefaultSequence selects the PCG stream; any odd constant works.
const pcgDefaultSequence = 0xda3e39cb94b95bdb

// PCGSampler draws from a PCG-32 stream. It is cheaper to seed than
// math/rand and two samplers with the same seed produce identical
// sequences.
type PCGSampler[T math.Float] struct {
	rng *pcg.PCG32
}

// NewPCGSampler creates a PCG-backed sampler with the given seed.
func NewPCGSampler[T math.Float](seed uint64) *PCGSampler[T] {
	rng := pcg.NewPCG32()
	rng.Seed(seed, pcgDefaultSequence)
	return &PCGSampler[T]{rng: rng}
}

// Get1D returns a random value in [0, 1).
func (s *PCGSampler[T]) Get1D() T {
	return T(float64(s.rng.Random()) / (1 << 32))
}

// Get2D returns two random values in [0, 1).
func (s *PCGSampler[T]) Get2D() math.Vec2[T] {
	return math.NewVec2(s.Get1D(), s.Get1D())
}
