// Package simd provides the CPU SAXPY kernels and the capability probe that
// selects between them.
//
// Machines with a vector unit (AVX2 on x86-64, ASIMD on ARM64, detected with
// golang.org/x/sys/cpu) get the 8-way unrolled kernel; everything else uses
// the plain loop. Select overrides the choice.
//
// Every kernel rounds the product to float32 before the add, so all kernels
// produce bit-identical output on every GOARCH.
package simd
