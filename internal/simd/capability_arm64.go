//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	hasVectorUnit = cpu.ARM64.HasASIMD
	saxpyImpl, saxpyName = kernels[DefaultKernel()], DefaultKernel()
}
