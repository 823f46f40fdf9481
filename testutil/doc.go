// Package testutil provides testing utilities for kernelbase.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded random sources that satisfy the generator and
// estimator RNG handles, plus scripted sources for exact assertions.
//
// # Seeded Randomness
//
//	rng := testutil.NewRNG(seed)
//	vector.Fill(rng, v)                       // integer values in [0, 100)
//	montecarlo.Estimate(rng, 1, 1_000_000)    // reproducible estimate
//
// # Scripted Sources
//
//	src := testutil.NewSequence(0.5, 0.5, 0.9, 0.9)
//	montecarlo.Estimate(src, 1, 2)            // one hit, one miss
package testutil
