package saxpy

import "fmt"

// Mismatch describes one index where the computed result differs from the
// independently recomputed value.
type Mismatch struct {
	Index    int
	Expected float32
	Found    float32
	A        float32
	B        float32
}

func (m Mismatch) String() string {
	return fmt.Sprintf("Idx %d expected %v found %v = %v + %v", m.Index, m.Expected, m.Found, m.A, m.B)
}

// Expected returns scale*a + b rounded the same way the kernel rounds.
func Expected(a, b, scale float32) float32 {
	return float32(scale*a) + b
}

// Verify recomputes scale*a[i] + b[i] for every index of c and returns how
// many entries of c differ. Comparison is exact; NaN never matches.
func Verify(a, b, c []float32, scale float32) int {
	return VerifyEach(a, b, c, scale, nil)
}

// VerifyEach is Verify with a callback invoked for every mismatch in index
// order. fn may be nil.
func VerifyEach(a, b, c []float32, scale float32, fn func(Mismatch)) int {
	a = a[:len(c)]
	b = b[:len(c)]

	errorCount := 0
	for i, got := range c {
		want := Expected(a[i], b[i], scale)
		if got != want {
			errorCount++
			if fn != nil {
				fn(Mismatch{Index: i, Expected: want, Found: got, A: a[i], B: b[i]})
			}
		}
	}
	return errorCount
}
