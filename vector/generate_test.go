package vector

import (
	"testing"

	"github.com/hupe1980/kernelbase/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFill(t *testing.T) {
	for _, n := range []int{0, 1, 5, 100, 10000} {
		rng := testutil.NewRNG(4711)
		v := make([]float32, n)

		Fill(rng, v)

		assert.Len(t, v, n)
		assert.Equal(t, uint64(n), rng.Draws(), "one draw per element")
		for i, x := range v {
			assert.True(t, testutil.IsIntegral(x), "v[%d]=%v not integral", i, x)
			assert.GreaterOrEqual(t, x, float32(0))
			assert.Less(t, x, float32(MaxValue))
		}
	}
}

func TestFill_ConsecutiveCallsDiffer(t *testing.T) {
	rng := testutil.NewRNG(1)
	a := make([]float32, 64)
	b := make([]float32, 64)

	Fill(rng, a)
	Fill(rng, b)

	assert.NotEqual(t, a, b)
}

func TestFill_ReproducibleWithSeed(t *testing.T) {
	a := make([]float32, 64)
	b := make([]float32, 64)

	Fill(testutil.NewRNG(99), a)
	Fill(testutil.NewRNG(99), b)

	assert.Equal(t, a, b)
}

func TestFill_Bounds(t *testing.T) {
	v := make([]float32, 3)
	Fill(testutil.NewSequence(0, 0.5, 0.9999), v)
	assert.Equal(t, []float32{0, 50, 99}, v)
}
