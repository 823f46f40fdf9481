package vector

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/kernelbase/internal/mem"
	"github.com/hupe1980/kernelbase/resource"
)

// ErrAllocationFailed is returned when a buffer cannot be allocated,
// either because the memory budget is exhausted or the runtime refused
// the request.
var ErrAllocationFailed = errors.New("vector: allocation failed")

const elemSize = 4

type allocOptions struct {
	rc *resource.Controller
}

// AllocOption configures Alloc.
type AllocOption func(*allocOptions)

// WithController charges the buffer against rc's memory budget until Release.
func WithController(rc *resource.Controller) AllocOption {
	return func(o *allocOptions) {
		o.rc = rc
	}
}

// Buffer is an owned, fixed-length float32 vector.
// Buffers are not safe for concurrent use.
type Buffer struct {
	data     []float32
	bytes    int64
	rc       *resource.Controller
	released bool
}

// Alloc allocates a zeroed buffer of n elements.
func Alloc(n uint64, optFns ...AllocOption) (*Buffer, error) {
	var o allocOptions
	for _, fn := range optFns {
		fn(&o)
	}

	if n > math.MaxInt64/elemSize {
		return nil, fmt.Errorf("%w: %d elements overflow the byte count", ErrAllocationFailed, n)
	}
	bytes := int64(n) * elemSize

	if err := o.rc.AcquireMemory(bytes); err != nil {
		return nil, fmt.Errorf("%w: %d bytes: %w", ErrAllocationFailed, bytes, err)
	}

	data, err := mem.AllocAlignedFloat32(n)
	if err != nil {
		o.rc.ReleaseMemory(bytes)
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}

	return &Buffer{
		data:  data,
		bytes: bytes,
		rc:    o.rc,
	}, nil
}

// Data returns the backing slice. It is nil after Release.
func (b *Buffer) Data() []float32 {
	if b == nil {
		return nil
	}
	return b.data
}

// Len returns the element count.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Bytes returns the reserved size in bytes.
func (b *Buffer) Bytes() int64 {
	if b == nil {
		return 0
	}
	return b.bytes
}

// CopyFrom copies src into b and returns the number of elements copied.
func (b *Buffer) CopyFrom(src *Buffer) int {
	return copy(b.Data(), src.Data())
}

// Release drops the backing slice and returns the reservation to the
// controller. Safe to call more than once and on a nil Buffer.
func (b *Buffer) Release() {
	if b == nil || b.released {
		return
	}
	b.released = true
	b.rc.ReleaseMemory(b.bytes)
	b.data = nil
}
