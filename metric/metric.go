// Package metric exports kernel run metrics to Prometheus.
//
// PrometheusCollector satisfies kernelbase.MetricsCollector:
//
//	reg := prometheus.NewRegistry()
//	pc, err := metric.NewPrometheusCollector(metric.Config{Registry: reg})
//	if err != nil {
//	    return err
//	}
//	_, _ = kernelbase.RunSaxpy(1<<20, kernelbase.WithMetricsCollector(pc))
//	_ = metric.WriteText(os.Stderr, reg)
package metric

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/hupe1980/kernelbase/montecarlo"
)

// DefaultNamespace is the metric namespace used when Config.Namespace is empty.
const DefaultNamespace = "kernelbase"

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Config configures a PrometheusCollector.
type Config struct {
	// Namespace prefixes every metric name. Defaults to DefaultNamespace.
	Namespace string

	// Registry receives the collectors.
	// If nil, uses prometheus.DefaultRegisterer.
	Registry prometheus.Registerer

	// DurationBuckets are the histogram buckets for run durations in seconds.
	// Defaults to prometheus.DefBuckets.
	DurationBuckets []float64
}

// PrometheusCollector records SAXPY and π estimation runs as Prometheus
// counters and histograms.
type PrometheusCollector struct {
	runs       *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	elements   prometheus.Counter
	mismatches prometheus.Counter
	draws      prometheus.Counter
	hits       prometheus.Counter
	estimate   prometheus.Gauge
}

// NewPrometheusCollector creates the collectors and registers them with
// cfg.Registry.
func NewPrometheusCollector(cfg Config) (*PrometheusCollector, error) {
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.DefaultRegisterer
	}
	if len(cfg.DurationBuckets) == 0 {
		cfg.DurationBuckets = prometheus.DefBuckets
	}

	c := &PrometheusCollector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "runs_total",
			Help:      "Total kernel runs by kernel and result.",
		}, []string{"kernel", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of the compute phase of successful kernel runs.",
			Buckets:   cfg.DurationBuckets,
		}, []string{"kernel"}),
		elements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "saxpy",
			Name:      "elements_total",
			Help:      "Total vector elements processed by SAXPY.",
		}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "saxpy",
			Name:      "mismatches_total",
			Help:      "Total elements that failed SAXPY verification.",
		}),
		draws: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "mcpi",
			Name:      "samples_total",
			Help:      "Total random points drawn by the π estimator.",
		}),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "mcpi",
			Name:      "hits_total",
			Help:      "Total points that landed inside the quarter circle.",
		}),
		estimate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Subsystem: "mcpi",
			Name:      "estimate",
			Help:      "Most recent π estimate.",
		}),
	}

	for _, col := range []prometheus.Collector{
		c.runs, c.duration, c.elements, c.mismatches, c.draws, c.hits, c.estimate,
	} {
		if err := cfg.Registry.Register(col); err != nil {
			return nil, fmt.Errorf("metric: register: %w", err)
		}
	}

	return c, nil
}

// RecordSaxpy records a SAXPY run.
func (c *PrometheusCollector) RecordSaxpy(vectorSize uint64, mismatches int, duration time.Duration, err error) {
	if err != nil {
		c.runs.WithLabelValues("saxpy", ResultError).Inc()
		return
	}
	c.runs.WithLabelValues("saxpy", ResultOK).Inc()
	c.duration.WithLabelValues("saxpy").Observe(duration.Seconds())
	c.elements.Add(float64(vectorSize))
	c.mismatches.Add(float64(mismatches))
}

// RecordEstimate records a π estimation run.
func (c *PrometheusCollector) RecordEstimate(iterations, samples, hits uint64, duration time.Duration, err error) {
	if err != nil {
		c.runs.WithLabelValues("mcpi", ResultError).Inc()
		return
	}
	c.runs.WithLabelValues("mcpi", ResultOK).Inc()
	c.duration.WithLabelValues("mcpi").Observe(duration.Seconds())
	c.draws.Add(float64(iterations * samples))
	c.hits.Add(float64(hits))
	if iterations > 0 && samples > 0 {
		c.estimate.Set(montecarlo.Pi(hits, iterations, samples))
	}
}

// WriteText gathers g and writes every metric family in the Prometheus text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, gatherErr := g.Gather()

	var errs []error
	if gatherErr != nil {
		errs = append(errs, gatherErr)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
