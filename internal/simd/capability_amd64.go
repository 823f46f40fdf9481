//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	hasVectorUnit = cpu.X86.HasAVX2
	saxpyImpl, saxpyName = kernels[DefaultKernel()], DefaultKernel()
}
