// Package saxpy implements single-precision A·X plus Y and its verifier.
//
// Kernel accumulates y[i] = scale*x[i] + y[i] in place. Verify recomputes
// the expected value independently and compares by exact float equality;
// any rounding difference between two implementations is reported as a
// mismatch.
package saxpy
