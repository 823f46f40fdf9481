package vector

// MaxValue is the exclusive upper bound of generated element values.
const MaxValue = 100

// Rand is the random source consumed by Fill.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Fill overwrites every element of v with an integer-valued float drawn
// uniformly from [0, MaxValue). An empty v draws nothing.
func Fill(rng Rand, v []float32) {
	for i := range v {
		v[i] = float32(rng.IntN(MaxValue))
	}
}
