// Command kernelbase runs the SAXPY and Monte Carlo π reference kernels.
//
//	kernelbase saxpy --size 1048576
//	kernelbase mcpi --iterations 10 --samples 1000000
//	kernelbase info
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
