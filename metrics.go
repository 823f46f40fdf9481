package kernelbase

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems;
// metric.PrometheusCollector is the Prometheus implementation.
type MetricsCollector interface {
	// RecordSaxpy is called after each SAXPY run.
	// mismatches is the verifier's error count, duration covers the kernel,
	// err is non-nil if the run aborted before computing.
	RecordSaxpy(vectorSize uint64, mismatches int, duration time.Duration, err error)

	// RecordEstimate is called after each π estimation.
	// duration is the wall-clock time of the sampling loop.
	RecordEstimate(iterations, samples, hits uint64, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSaxpy(uint64, int, time.Duration, error)               {}
func (NoopMetricsCollector) RecordEstimate(uint64, uint64, uint64, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SaxpyCount         atomic.Int64
	SaxpyErrors        atomic.Int64
	SaxpyElements      atomic.Uint64
	SaxpyMismatches    atomic.Int64
	SaxpyTotalNanos    atomic.Int64
	EstimateCount      atomic.Int64
	EstimateErrors     atomic.Int64
	EstimateDraws      atomic.Uint64
	EstimateHits       atomic.Uint64
	EstimateTotalNanos atomic.Int64
}

// RecordSaxpy implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSaxpy(vectorSize uint64, mismatches int, duration time.Duration, err error) {
	b.SaxpyCount.Add(1)
	if err != nil {
		b.SaxpyErrors.Add(1)
		return
	}
	b.SaxpyElements.Add(vectorSize)
	b.SaxpyMismatches.Add(int64(mismatches))
	b.SaxpyTotalNanos.Add(duration.Nanoseconds())
}

// RecordEstimate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEstimate(iterations, samples, hits uint64, duration time.Duration, err error) {
	b.EstimateCount.Add(1)
	if err != nil {
		b.EstimateErrors.Add(1)
		return
	}
	b.EstimateDraws.Add(iterations * samples)
	b.EstimateHits.Add(hits)
	b.EstimateTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SaxpyCount:       b.SaxpyCount.Load(),
		SaxpyErrors:      b.SaxpyErrors.Load(),
		SaxpyElements:    b.SaxpyElements.Load(),
		SaxpyMismatches:  b.SaxpyMismatches.Load(),
		SaxpyAvgNanos:    b.getAvgSaxpyNanos(),
		EstimateCount:    b.EstimateCount.Load(),
		EstimateErrors:   b.EstimateErrors.Load(),
		EstimateDraws:    b.EstimateDraws.Load(),
		EstimateHits:     b.EstimateHits.Load(),
		EstimateAvgNanos: b.getAvgEstimateNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgSaxpyNanos() int64 {
	count := b.SaxpyCount.Load() - b.SaxpyErrors.Load()
	if count <= 0 {
		return 0
	}
	return b.SaxpyTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgEstimateNanos() int64 {
	count := b.EstimateCount.Load() - b.EstimateErrors.Load()
	if count <= 0 {
		return 0
	}
	return b.EstimateTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SaxpyCount       int64
	SaxpyErrors      int64
	SaxpyElements    uint64
	SaxpyMismatches  int64
	SaxpyAvgNanos    int64
	EstimateCount    int64
	EstimateErrors   int64
	EstimateDraws    uint64
	EstimateHits     uint64
	EstimateAvgNanos int64
}
