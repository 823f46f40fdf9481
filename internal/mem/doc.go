// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte aligned allocation for vector kernels (AVX-512 friendly).
// Out-of-range sizes and makeslice panics are reported as
// ErrAllocationFailed. A request the OS cannot back is a fatal runtime error
// that recover cannot catch, so callers bound sizes beforehand (see
// resource.SystemMemoryLimit).
package mem
