package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/kernelbase/internal/simd"
	"github.com/hupe1980/kernelbase/saxpy"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the selected kernel and detected CPU capability",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()

			fmt.Fprintf(w, "Platform:     %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(w, "Vector unit:  %v\n", simd.HasVectorUnit())
			fmt.Fprintf(w, "Kernel:       %s\n", saxpy.KernelName())
			fmt.Fprintf(w, "Default:      %s\n", simd.DefaultKernel())
			fmt.Fprintf(w, "Available:    %s\n", strings.Join(simd.Kernels(), ", "))
		},
	}
}
