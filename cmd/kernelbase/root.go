package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/hupe1980/kernelbase"
	"github.com/hupe1980/kernelbase/internal/simd"
	"github.com/hupe1980/kernelbase/metric"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	logLevel  string
	logFormat string
	quiet     bool
	seed      uint64
	metrics   bool
	kernel    string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "kernelbase",
		Short: "CPU reference kernels: SAXPY and Monte Carlo π",
		Long: `kernelbase runs the CPU baseline of two numeric kernels.

saxpy computes c = scale*a + b on random vectors and verifies the result.
mcpi estimates π by sampling random points in the unit square.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if err := simd.Select(g.kernel); err != nil {
				return fmt.Errorf("invalid --kernel: %w", err)
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.logLevel, "log-level", "off", "Structured log level on stderr (off, debug, info, warn, error)")
	pf.StringVar(&g.logFormat, "log-format", "text", "Structured log format (text, json)")
	pf.BoolVarP(&g.quiet, "quiet", "q", false, "Suppress diagnostic output")
	pf.Uint64Var(&g.seed, "seed", 0, "Seed for reproducible runs (0 draws a random seed)")
	pf.BoolVar(&g.metrics, "metrics", false, "Dump Prometheus metrics to stderr after the run")
	pf.StringVar(&g.kernel, "kernel", simd.Auto, "SAXPY kernel ("+strings.Join(simd.Kernels(), ", ")+", or auto)")

	cmd.AddCommand(
		newSaxpyCmd(g),
		newMCPiCmd(g),
		newInfoCmd(),
	)

	return cmd
}

// runEnv holds what a subcommand needs to run a kernel.
type runEnv struct {
	opts     []kernelbase.Option
	registry *prometheus.Registry
	stderr   io.Writer
}

func (g *globalFlags) env(cmd *cobra.Command) (*runEnv, error) {
	logger, err := newLogger(g.logLevel, g.logFormat, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	e := &runEnv{stderr: cmd.ErrOrStderr()}
	e.opts = append(e.opts,
		kernelbase.WithOutput(cmd.OutOrStdout()),
		kernelbase.WithLogger(logger),
		kernelbase.WithDiagnostics(!g.quiet),
	)
	if g.seed != 0 {
		e.opts = append(e.opts, kernelbase.WithSeed(g.seed))
	}

	if g.metrics {
		e.registry = prometheus.NewRegistry()
		pc, err := metric.NewPrometheusCollector(metric.Config{Registry: e.registry})
		if err != nil {
			return nil, err
		}
		e.opts = append(e.opts, kernelbase.WithMetricsCollector(pc))
	}

	return e, nil
}

// finish dumps metrics if requested and converts a failed run into a
// command error carrying the integer status.
func (e *runEnv) finish(runErr error) error {
	if e.registry != nil {
		if err := metric.WriteText(e.stderr, e.registry); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	if runErr != nil {
		return fmt.Errorf("status %d: %w", kernelbase.Status(runErr), runErr)
	}
	return nil
}

func newLogger(level, format string, w io.Writer) (*kernelbase.Logger, error) {
	level = strings.ToLower(level)
	if level == "off" || level == "" {
		return kernelbase.NoopLogger(), nil
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", level)
	}
	hopts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return kernelbase.NewLogger(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return kernelbase.NewLogger(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q", format)
	}
}

func newSaxpyCmd(g *globalFlags) *cobra.Command {
	var (
		size        uint64
		scale       float32
		memoryLimit int64
	)

	cmd := &cobra.Command{
		Use:   "saxpy",
		Short: "Run SAXPY on random vectors and verify the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := g.env(cmd)
			if err != nil {
				return err
			}
			opts := append(e.opts, kernelbase.WithScale(scale))
			if cmd.Flags().Changed("memory-limit") {
				opts = append(opts, kernelbase.WithMemoryLimit(memoryLimit))
			}
			_, runErr := kernelbase.RunSaxpy(size, opts...)
			return e.finish(runErr)
		},
	}

	cmd.Flags().Uint64VarP(&size, "size", "n", 1<<20, "Number of vector elements")
	cmd.Flags().Float32Var(&scale, "scale", 2.0, "Scale factor applied to a")
	cmd.Flags().Int64Var(&memoryLimit, "memory-limit", 0, "Memory budget in bytes for the three vectors (default RAM+swap, 0 = unlimited)")

	return cmd
}

func newMCPiCmd(g *globalFlags) *cobra.Command {
	var (
		iterations       uint64
		samples          uint64
		strict           bool
		progressInterval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "mcpi",
		Short: "Estimate π with Monte Carlo sampling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := g.env(cmd)
			if err != nil {
				return err
			}
			opts := append(e.opts, kernelbase.WithProgressInterval(progressInterval))
			if strict {
				opts = append(opts, kernelbase.WithStrict())
			}
			_, runErr := kernelbase.RunMCPi(iterations, samples, opts...)
			return e.finish(runErr)
		},
	}

	cmd.Flags().Uint64VarP(&iterations, "iterations", "i", 10, "Number of sampling iterations")
	cmd.Flags().Uint64VarP(&samples, "samples", "s", 1_000_000, "Points sampled per iteration")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject zero iterations or samples instead of printing NaN")
	cmd.Flags().DurationVar(&progressInterval, "progress-interval", kernelbase.DefaultProgressInterval, "Refresh interval of the iteration counter")

	return cmd
}
