package kernelbase

import (
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hupe1980/kernelbase/resource"
	"github.com/hupe1980/kernelbase/saxpy"
)

// DefaultProgressInterval throttles the iteration counter printed while
// estimating π.
const DefaultProgressInterval = 100 * time.Millisecond

// Rand is the random source shared by the generator and the estimator.
// *math/rand/v2.Rand and testutil.RNG satisfy it.
type Rand interface {
	IntN(n int) int
	Float32() float32
}

type options struct {
	out              io.Writer
	logger           *Logger
	rng              Rand
	scale            float32
	diagnostics      bool
	metricsCollector MetricsCollector
	memoryLimit      int64
	strict           bool
	progressInterval time.Duration
}

func defaultOptions() options {
	return options{
		out:              os.Stdout,
		logger:           NoopLogger(),
		scale:            saxpy.DefaultScale,
		diagnostics:      true,
		metricsCollector: NoopMetricsCollector{},
		memoryLimit:      resource.SystemMemoryLimit(),
		progressInterval: DefaultProgressInterval,
	}
}

func applyOptions(optFns []Option) options {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // not used for security
	}
	return o
}

// Option configures RunSaxpy and RunMCPi.
type Option func(*options)

// WithOutput sets the writer for the report and diagnostic output.
// Defaults to os.Stdout. A nil writer discards output.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			w = io.Discard
		}
		o.out = w
	}
}

// WithLogger configures structured logging.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithRand sets the random source. Without it each run draws from a randomly
// seeded PCG generator.
func WithRand(r Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed seeds a PCG generator for reproducible runs.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // not used for security
	}
}

// WithScale sets the SAXPY scale factor used by both kernel and verifier.
// Defaults to saxpy.DefaultScale.
func WithScale(scale float32) Option {
	return func(o *options) {
		o.scale = scale
	}
}

// WithDiagnostics turns the diagnostic printer on or off. Enabled by default.
func WithDiagnostics(enabled bool) Option {
	return func(o *options) {
		o.diagnostics = enabled
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kernelbase.BasicMetricsCollector{}
//	_, _ = kernelbase.RunSaxpy(1024, kernelbase.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithMemoryLimit caps the bytes RunSaxpy may reserve for its three vectors.
// The default is resource.SystemMemoryLimit, so requests the machine cannot
// hold fail with ErrAllocationFailed instead of aborting the process.
// Zero removes the cap.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithStrict makes RunMCPi reject zero sample or iteration counts instead of
// reporting a NaN estimate.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithProgressInterval sets how often the π iteration counter is refreshed.
// Zero or negative refreshes on every iteration.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.progressInterval = d
	}
}
