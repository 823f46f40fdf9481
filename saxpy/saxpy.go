package saxpy

import (
	"github.com/hupe1980/kernelbase/internal/simd"
)

// DefaultScale is the scale factor used by the drivers.
const DefaultScale float32 = 2.0

// Kernel sets y[i] = scale*x[i] + y[i] for every i < len(x).
// y must be at least as long as x.
func Kernel(x, y []float32, scale float32) {
	simd.Saxpy(x, y, scale)
}

// KernelName reports the kernel implementation selected for this CPU.
func KernelName() string {
	return simd.KernelName()
}
