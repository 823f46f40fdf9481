package kernelbase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/hupe1980/kernelbase/montecarlo"
	"github.com/hupe1980/kernelbase/resource"
	"github.com/hupe1980/kernelbase/saxpy"
	"github.com/hupe1980/kernelbase/vector"
)

// SaxpyReport summarises a RunSaxpy invocation.
type SaxpyReport struct {
	RunID         string
	VectorSize    uint64
	Scale         float32
	Kernel        string
	Errors        int
	Elapsed       time.Duration
	BytesReserved int64
}

// PiReport summarises a RunMCPi invocation.
type PiReport struct {
	RunID string
	montecarlo.Result
}

// RunSaxpy allocates vectors a, b and c of vectorSize elements, fills a and
// b randomly, copies b into c, accumulates scale*a into c, and verifies c
// against an independent recomputation. It prints "Found <errors> / <n>
// errors" to the configured output.
//
// Allocation failure aborts the run before any computation; the returned
// error wraps ErrAllocationFailed.
func RunSaxpy(vectorSize uint64, optFns ...Option) (*SaxpyReport, error) {
	o := applyOptions(optFns)
	ctx := context.Background()

	runID := uuid.NewString()
	log := o.logger.WithRunID(runID).WithKernel("saxpy")
	diag := NewDiagnostics(o.out, o.diagnostics)

	fmt.Fprint(o.out, "Hello Saxpy!\n")

	rc := resource.NewController(resource.Config{MemoryLimitBytes: o.memoryLimit})

	bufs, err := allocVectors(ctx, log, rc, vectorSize)
	if err != nil {
		fmt.Fprint(o.out, "Unable to malloc memory ... Exiting!\n")
		o.metricsCollector.RecordSaxpy(vectorSize, 0, 0, err)
		return nil, translateError(err)
	}
	defer func() {
		for _, b := range bufs {
			b.Release()
		}
	}()

	a, b, c := bufs[0].Data(), bufs[1].Data(), bufs[2].Data()

	vector.Fill(o.rng, a)
	vector.Fill(o.rng, b)
	bufs[2].CopyFrom(bufs[1])
	scale := o.scale

	diag.Print("\n Adding vectors : \n")
	diag.Printf(" scale = %f\n", scale)
	diag.Printf(" a = %s\n", vector.FormatPrefix(a))
	diag.Printf(" b = %s\n", vector.FormatPrefix(b))

	start := time.Now()
	saxpy.Kernel(a, c, scale)
	elapsed := time.Since(start)

	diag.Printf(" c = %s\n", vector.FormatPrefix(c))

	errorCount := saxpy.VerifyEach(a, b, c, scale, func(m saxpy.Mismatch) {
		diag.Print(m.String() + "\n")
	})
	fmt.Fprintf(o.out, "Found %d / %d errors \n", errorCount, vectorSize)

	log.LogSaxpy(ctx, vectorSize, errorCount, elapsed)
	o.metricsCollector.RecordSaxpy(vectorSize, errorCount, elapsed, nil)

	return &SaxpyReport{
		RunID:         runID,
		VectorSize:    vectorSize,
		Scale:         scale,
		Kernel:        saxpy.KernelName(),
		Errors:        errorCount,
		Elapsed:       elapsed,
		BytesReserved: rc.PeakMemoryUsage(),
	}, nil
}

// allocVectors allocates a, b and c, releasing earlier buffers if a later
// one fails.
func allocVectors(ctx context.Context, log *Logger, rc *resource.Controller, n uint64) ([3]*vector.Buffer, error) {
	var bufs [3]*vector.Buffer
	for i, name := range [...]string{"a", "b", "c"} {
		buf, err := vector.Alloc(n, vector.WithController(rc))
		log.LogAllocation(ctx, name, n, err)
		if err != nil {
			for _, b := range bufs[:i] {
				b.Release()
			}
			return [3]*vector.Buffer{}, &ErrAllocation{Vector: name, Elements: n, cause: err}
		}
		bufs[i] = buf
	}
	return bufs, nil
}

// RunMCPi estimates π from iterations × samples random points and prints
// the estimate and the sampling time to the configured output.
//
// A zero sample count reports a NaN estimate. With WithStrict it returns
// ErrInvalidSampleSize (or ErrInvalidIterationCount) instead.
func RunMCPi(iterations, samples uint64, optFns ...Option) (*PiReport, error) {
	o := applyOptions(optFns)
	ctx := context.Background()

	runID := uuid.NewString()
	log := o.logger.WithRunID(runID).WithKernel("mcpi")
	diag := NewDiagnostics(o.out, o.diagnostics)

	counter := newProgressCounter(diag, o.progressInterval)

	estOpts := []montecarlo.Option{montecarlo.WithProgress(counter.update)}
	if o.strict {
		estOpts = append(estOpts, montecarlo.WithStrict())
	}

	diag.Print("Iteration: ")
	res, err := montecarlo.Estimate(o.rng, iterations, samples, estOpts...)
	counter.finish()

	log.LogEstimate(ctx, iterations, samples, res.Hits, res.Estimate, res.Elapsed, err)
	o.metricsCollector.RecordEstimate(iterations, samples, res.Hits, res.Elapsed, err)

	if err != nil {
		fmt.Fprintf(o.out, "Unable to estimate Pi: %v\n", err)
		return nil, translateError(err)
	}

	fmt.Fprintf(o.out, "Estimated Pi = %s\n", strconv.FormatFloat(res.Estimate, 'g', 10, 64))
	fmt.Fprintf(o.out, "It took %s seconds.\n", strconv.FormatFloat(res.Elapsed.Seconds(), 'g', 10, 64))

	return &PiReport{RunID: runID, Result: res}, nil
}

// progressCounter rewrites the current iteration index in place using
// backspaces, refreshing at most once per interval.
type progressCounter struct {
	diag      *Diagnostics
	sometimes rate.Sometimes
	last      string
	iter      uint64
	started   bool
}

func newProgressCounter(diag *Diagnostics, interval time.Duration) *progressCounter {
	p := &progressCounter{diag: diag}
	if interval > 0 {
		p.sometimes = rate.Sometimes{First: 1, Interval: interval}
	} else {
		p.sometimes = rate.Sometimes{Every: 1}
	}
	return p
}

func (p *progressCounter) update(iter uint64) {
	if !p.diag.Enabled() {
		return
	}
	p.iter, p.started = iter, true
	p.sometimes.Do(func() {
		p.show(strconv.FormatUint(iter, 10))
	})
}

// finish shows the last started iteration and ends the line.
func (p *progressCounter) finish() {
	if p.started {
		p.show(strconv.FormatUint(p.iter, 10))
	}
	p.diag.Print("\n\n")
}

func (p *progressCounter) show(s string) {
	p.diag.Print(strings.Repeat("\b", len(p.last)) + s)
	p.last = s
}
