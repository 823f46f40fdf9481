package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(4711)
	b := NewRNG(4711)

	for range 100 {
		require.Equal(t, a.Float32(), b.Float32())
		require.Equal(t, a.IntN(100), b.IntN(100))
	}
	assert.Equal(t, uint64(200), a.Draws())
	assert.Equal(t, uint64(4711), a.Seed())
}

func TestRNG_Reset(t *testing.T) {
	rng := NewRNG(7)

	first := make([]float32, 16)
	rng.FillUniform(first)
	assert.Equal(t, uint64(16), rng.Draws())

	rng.Reset()
	assert.Zero(t, rng.Draws())

	second := make([]float32, 16)
	rng.FillUniform(second)
	assert.Equal(t, first, second)
}

func TestRNG_Ranges(t *testing.T) {
	rng := NewRNG(4711)

	v := make([]float32, 1000)
	rng.FillUniform(v)
	for _, x := range v {
		assert.GreaterOrEqual(t, x, float32(0))
		assert.Less(t, x, float32(1))
	}

	rng.FillUniformRange(v, -1, 1)
	for _, x := range v {
		assert.GreaterOrEqual(t, x, float32(-1))
		assert.Less(t, x, float32(1))
	}

	for range 1000 {
		n := rng.IntN(100)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 100)
	}
}

func TestSequence(t *testing.T) {
	s := NewSequence(0.25, 0.999, 0)

	assert.Equal(t, float32(0.25), s.Float32())
	assert.Equal(t, 99, s.IntN(100))
	assert.Equal(t, 0, s.IntN(100))
	assert.Equal(t, float32(0.25), s.Float32(), "wraps around")
	assert.Equal(t, 4, s.Draws())

	assert.Panics(t, func() { NewSequence() })
}

func TestIsIntegral(t *testing.T) {
	assert.True(t, IsIntegral(0))
	assert.True(t, IsIntegral(99))
	assert.True(t, IsIntegral(-3))
	assert.False(t, IsIntegral(0.5))
	assert.False(t, IsIntegral(float32(math.NaN())))
	assert.False(t, IsIntegral(float32(math.Inf(1))))
}

func TestClone(t *testing.T) {
	src := []float32{1, 2, 3}
	dst := Clone(src)
	dst[0] = 42

	assert.Equal(t, []float32{1, 2, 3}, src)
	assert.Equal(t, []float32{42, 2, 3}, dst)
}
