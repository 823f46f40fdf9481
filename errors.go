package kernelbase

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kernelbase/montecarlo"
	"github.com/hupe1980/kernelbase/resource"
	"github.com/hupe1980/kernelbase/vector"
)

var (
	// ErrAllocationFailed is returned when a SAXPY vector cannot be allocated.
	ErrAllocationFailed = errors.New("allocation failed")

	// ErrInvalidSampleSize is returned in strict mode for a zero sample size.
	ErrInvalidSampleSize = errors.New("sample size must be positive")

	// ErrInvalidIterationCount is returned in strict mode for a zero iteration count.
	ErrInvalidIterationCount = errors.New("iteration count must be positive")
)

const (
	// StatusOK is the integer status of a successful run.
	StatusOK = 0
	// StatusFailure is the integer status of a failed run.
	StatusFailure = -1
)

// Status maps a driver error to the integer status contract: 0 on success,
// -1 otherwise.
func Status(err error) int {
	if err == nil {
		return StatusOK
	}
	return StatusFailure
}

// ErrAllocation indicates which SAXPY vector could not be allocated.
//
// The underlying error can be accessed via errors.Unwrap.
type ErrAllocation struct {
	Vector   string
	Elements uint64
	cause    error
}

func (e *ErrAllocation) Error() string {
	return fmt.Sprintf("vector %s (%d elements): %v", e.Vector, e.Elements, e.cause)
}

func (e *ErrAllocation) Unwrap() error { return e.cause }

// MemoryLimitExceeded reports whether the allocation failed because the
// configured memory limit was reached.
func (e *ErrAllocation) MemoryLimitExceeded() bool {
	return errors.Is(e.cause, resource.ErrMemoryLimitExceeded)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, vector.ErrAllocationFailed) {
		return fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}
	if errors.Is(err, montecarlo.ErrZeroSampleSize) {
		return fmt.Errorf("%w: %w", ErrInvalidSampleSize, err)
	}
	if errors.Is(err, montecarlo.ErrZeroIterations) {
		return fmt.Errorf("%w: %w", ErrInvalidIterationCount, err)
	}

	return err
}
