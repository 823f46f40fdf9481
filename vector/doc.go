// Package vector provides the float32 vectors the kernels operate on.
//
// # Buffers
//
// A Buffer owns a fixed-length, 64-byte aligned []float32. Alloc reports
// failure as ErrAllocationFailed instead of panicking, and can charge the
// allocation against a resource.Controller memory budget:
//
//	buf, err := vector.Alloc(n, vector.WithController(rc))
//	if err != nil {
//	    return err
//	}
//	defer buf.Release()
//
// # Generation
//
// Fill draws integer-valued elements in [0, 100) from an explicit random
// source, so runs are reproducible when the source is seeded.
//
// # Printing
//
// Print writes at most MaxPrintElems leading elements for inspection.
package vector
