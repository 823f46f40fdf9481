package montecarlo

import (
	"errors"
	"time"
)

var (
	// ErrZeroSampleSize is returned in strict mode when samples is 0.
	ErrZeroSampleSize = errors.New("montecarlo: sample size must be positive")

	// ErrZeroIterations is returned in strict mode when iterations is 0.
	ErrZeroIterations = errors.New("montecarlo: iteration count must be positive")
)

// Rand is the random source consumed by Estimate.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float32() float32
}

// Result is the outcome of one estimation run.
type Result struct {
	Iterations uint64
	Samples    uint64
	Hits       uint64
	Estimate   float64
	Elapsed    time.Duration
}

// Draws returns the number of sampled points.
func (r Result) Draws() uint64 {
	return r.Iterations * r.Samples
}

type options struct {
	strict   bool
	progress func(iter uint64)
	now      func() time.Time
}

// Option configures Estimate.
type Option func(*options)

// WithStrict rejects zero iteration or sample counts with an error instead of
// returning a non-finite estimate.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithProgress calls fn with the zero-based index of every iteration before
// its samples are drawn.
func WithProgress(fn func(iter uint64)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithClock replaces time.Now for measuring Elapsed.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// Estimate runs iterations × samples draws and derives π from the hit ratio.
func Estimate(rng Rand, iterations, samples uint64, optFns ...Option) (Result, error) {
	o := options{now: time.Now}
	for _, fn := range optFns {
		fn(&o)
	}

	if o.strict {
		if samples == 0 {
			return Result{}, ErrZeroSampleSize
		}
		if iterations == 0 {
			return Result{}, ErrZeroIterations
		}
	}

	start := o.now()

	var totalHits uint64
	for iter := range iterations {
		if o.progress != nil {
			o.progress(iter)
		}
		totalHits += sample(rng, samples)
	}

	elapsed := o.now().Sub(start)

	return Result{
		Iterations: iterations,
		Samples:    samples,
		Hits:       totalHits,
		Estimate:   Pi(totalHits, iterations, samples),
		Elapsed:    elapsed,
	}, nil
}

// sample draws n points and returns how many fall inside the quarter-circle.
func sample(rng Rand, n uint64) uint64 {
	var hits uint64
	for range n {
		x := rng.Float32()
		y := rng.Float32()
		if Hit(x, y) {
			hits++
		}
	}
	return hits
}

// Hit reports whether (x, y) lies strictly inside the unit quarter-circle,
// using truncation of x² + y² toward zero.
func Hit(x, y float32) bool {
	return int(float32(x*x)+float32(y*y)) == 0
}

// Pi derives the estimate from hit counts as 4 * ((hits / samples) / iterations).
// Zero samples or iterations produce NaN.
func Pi(hits, iterations, samples uint64) float64 {
	return 4 * ((float64(hits) / float64(samples)) / float64(iterations))
}
