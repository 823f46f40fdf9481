package testutil

import (
	"math"
	"math/rand/v2"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand  *rand.Rand
	seed  uint64
	draws uint64
	mu    sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: newRand(seed),
		seed: seed,
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // deterministic test source
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = newRand(r.seed)
	r.draws = 0
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// Draws returns the number of values drawn since creation or the last Reset.
func (r *RNG) Draws() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.draws
}

// IntN returns a non-negative pseudo-random number in [0,n).
func (r *RNG) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draws++
	return r.rand.IntN(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draws++
	return r.rand.Float32()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
	r.draws += uint64(len(dst))
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
	r.draws += uint64(len(dst))
}

// Sequence is a scripted random source. Float32 returns the scripted values
// in order and wraps around; IntN returns int(value*n) clamped to [0, n).
type Sequence struct {
	values []float32
	pos    int
}

// NewSequence creates a scripted source. It panics when values is empty.
func NewSequence(values ...float32) *Sequence {
	if len(values) == 0 {
		panic("testutil: empty sequence")
	}
	return &Sequence{values: values}
}

func (s *Sequence) next() float32 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

// Float32 returns the next scripted value.
func (s *Sequence) Float32() float32 {
	return s.next()
}

// IntN maps the next scripted value into [0, n).
func (s *Sequence) IntN(n int) int {
	v := int(s.next() * float32(n))
	return min(max(v, 0), n-1)
}

// Draws returns how many values were consumed.
func (s *Sequence) Draws() int {
	return s.pos
}

// IsIntegral reports whether v is a finite float32 without a fractional part.
func IsIntegral(v float32) bool {
	f := float64(v)
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
}

// Clone returns a copy of v that does not share its backing array.
func Clone(v []float32) []float32 {
	out := make([]float32, len(v))
	copy(out, v)
	return out
}
