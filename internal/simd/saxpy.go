package simd

var (
	saxpyImpl = saxpyGeneric
	saxpyName = Generic
)

// Saxpy accumulates y[i] = scale*x[i] + y[i] for every i < len(x).
//
// SAFETY: This function assumes len(y) >= len(x).
// A shorter y panics with the runtime bounds check.
func Saxpy(x, y []float32, scale float32) {
	saxpyImpl(x, y, scale)
}

// KernelName reports the bound SAXPY implementation.
func KernelName() string {
	return saxpyName
}

// The explicit float32 conversion of the product prevents FMA fusion.
func saxpyGeneric(x, y []float32, scale float32) {
	y = y[:len(x)]
	for i, v := range x {
		y[i] = float32(scale*v) + y[i]
	}
}

func saxpyUnrolled(x, y []float32, scale float32) {
	n := len(x)
	y = y[:n]

	i := 0
	for ; i <= n-8; i += 8 {
		xs := x[i : i+8 : i+8]
		ys := y[i : i+8 : i+8]
		ys[0] = float32(scale*xs[0]) + ys[0]
		ys[1] = float32(scale*xs[1]) + ys[1]
		ys[2] = float32(scale*xs[2]) + ys[2]
		ys[3] = float32(scale*xs[3]) + ys[3]
		ys[4] = float32(scale*xs[4]) + ys[4]
		ys[5] = float32(scale*xs[5]) + ys[5]
		ys[6] = float32(scale*xs[6]) + ys[6]
		ys[7] = float32(scale*xs[7]) + ys[7]
	}
	for ; i < n; i++ {
		y[i] = float32(scale*x[i]) + y[i]
	}
}
