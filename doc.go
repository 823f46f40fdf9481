// Package kernelbase is a CPU reference implementation of two numeric
// kernels: SAXPY (y = a·x + y) and a Monte Carlo estimate of π.
//
// It is the correctness baseline for accelerator-offloaded variants of the
// same kernels: every result is computed single threaded with a rounding
// behaviour that is identical on every GOARCH.
//
// # Drivers
//
//	report, err := kernelbase.RunSaxpy(1 << 20)
//	os.Exit(kernelbase.Status(err))
//
//	pi, err := kernelbase.RunMCPi(10, 1_000_000, kernelbase.WithSeed(42))
//
// RunSaxpy allocates three vectors, fills two of them from the random
// source, runs the kernel, verifies the result by exact comparison, and
// prints "Found <errors> / <n> errors". RunMCPi samples points in the unit
// square and prints the estimate together with the sampling time.
//
// # Diagnostics
//
// Diagnostic output (vector prefixes, mismatches, iteration progress) goes
// to the same writer as the report and is on by default. Disable it with
// WithDiagnostics(false). Structured logs go through Logger (log/slog).
//
// # Errors
//
// Allocation failure is the only way RunSaxpy fails; the error wraps
// ErrAllocationFailed and Status maps it to -1. Vectors are reserved against
// a memory budget that defaults to the machine's RAM plus swap, so an
// oversized request fails with this error rather than aborting the process. RunMCPi only fails in strict
// mode, for zero sample or iteration counts.
//
// # Packages
//
//   - vector: owned buffers, random generation, prefix printing
//   - saxpy: kernel and exact verifier
//   - montecarlo: π estimator
//   - resource: memory budget for vector buffers
//   - metric: Prometheus MetricsCollector
package kernelbase
