package mem

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

// Alignment is the byte alignment required for AVX-512 (64 bytes).
const Alignment = 64

// MaxFloat32 is the largest element count AllocAlignedFloat32 accepts.
const MaxFloat32 = (math.MaxInt - Alignment) / 4

// ErrAllocationFailed is returned when a buffer cannot be allocated.
var ErrAllocationFailed = errors.New("mem: allocation failed")

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// A zero size returns a nil slice and no error. Negative or out-of-range sizes,
// and sizes makeslice rejects, return ErrAllocationFailed.
func AllocAligned(size int) (buf []byte, err error) {
	if size == 0 {
		return nil, nil
	}
	if size < 0 || size > math.MaxInt-Alignment {
		return nil, fmt.Errorf("%w: size %d out of range", ErrAllocationFailed, size)
	}

	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: %v", ErrAllocationFailed, r)
		}
	}()

	raw := make([]byte, size+Alignment)

	ptr := unsafe.Pointer(&raw[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return raw[offset : offset+uintptr(size)], nil
}

// AllocAlignedFloat32 allocates a zeroed float32 slice of n elements with
// 64-byte alignment.
func AllocAlignedFloat32(n uint64) ([]float32, error) {
	if n == 0 {
		return nil, nil
	}
	if n > MaxFloat32 {
		return nil, fmt.Errorf("%w: %d float32 elements out of range", ErrAllocationFailed, n)
	}

	byteSlice, err := AllocAligned(int(n) * 4)
	if err != nil {
		return nil, err
	}

	ptr := unsafe.Pointer(&byteSlice[0])              //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*float32)(ptr), int(n)), nil //nolint:gosec // unsafe is required for memory alignment
}
