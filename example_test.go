package kernelbase_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/kernelbase"
)

// ExampleRunSaxpy runs SAXPY on a small reproducible input without the
// diagnostic lines.
func ExampleRunSaxpy() {
	_, err := kernelbase.RunSaxpy(1024,
		kernelbase.WithSeed(1),
		kernelbase.WithDiagnostics(false),
	)
	if err != nil {
		log.Fatal(err)
	}
	// Output:
	// Hello Saxpy!
	// Found 0 / 1024 errors
}

// ExampleRunSaxpy_memoryLimit shows the allocation failure path.
func ExampleRunSaxpy_memoryLimit() {
	_, err := kernelbase.RunSaxpy(1<<20,
		kernelbase.WithMemoryLimit(1<<20),
		kernelbase.WithDiagnostics(false),
	)

	fmt.Println("status:", kernelbase.Status(err))
	// Output:
	// Hello Saxpy!
	// Unable to malloc memory ... Exiting!
	// status: -1
}
