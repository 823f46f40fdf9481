package simd

import (
	"errors"
	"fmt"
)

// Kernel names accepted by Select.
const (
	Generic  = "generic"
	Unrolled = "unrolled8"
	// Auto selects DefaultKernel.
	Auto = "auto"
)

// ErrUnknownKernel is returned by Select for a name that is not in Kernels.
var ErrUnknownKernel = errors.New("simd: unknown kernel")

// hasVectorUnit is set by the platform init when the CPU has a SIMD unit
// the compiler can schedule the unrolled loop onto.
var hasVectorUnit bool

var kernels = map[string]func(x, y []float32, scale float32){
	Generic:  saxpyGeneric,
	Unrolled: saxpyUnrolled,
}

// HasVectorUnit reports whether a SIMD unit was detected (AVX2 on x86-64,
// ASIMD on ARM64).
func HasVectorUnit() bool {
	return hasVectorUnit
}

// DefaultKernel returns the kernel chosen at init for this CPU.
func DefaultKernel() string {
	if hasVectorUnit {
		return Unrolled
	}
	return Generic
}

// Kernels lists the selectable kernel names.
func Kernels() []string {
	return []string{Generic, Unrolled}
}

// Select binds the named SAXPY kernel. An empty name or Auto restores
// DefaultKernel. Select must not run concurrently with Saxpy.
func Select(name string) error {
	if name == "" || name == Auto {
		name = DefaultKernel()
	}
	impl, ok := kernels[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
	saxpyImpl, saxpyName = impl, name
	return nil
}
