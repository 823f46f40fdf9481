package main

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kernelbase"
	"github.com/hupe1980/kernelbase/internal/simd"
	"github.com/hupe1980/kernelbase/resource"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSaxpyCommand(t *testing.T) {
	stdout, _, err := execute(t, "saxpy", "--size", "64", "--seed", "7")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Hello Saxpy!\n")
	assert.Contains(t, stdout, " scale = 2.000000\n")
	assert.Contains(t, stdout, "Found 0 / 64 errors \n")
}

func TestSaxpyCommand_Quiet(t *testing.T) {
	stdout, _, err := execute(t, "saxpy", "-n", "8", "-q", "--scale", "0.5")
	require.NoError(t, err)

	assert.Equal(t, "Hello Saxpy!\nFound 0 / 8 errors \n", stdout)
}

func TestSaxpyCommand_MemoryLimit(t *testing.T) {
	stdout, _, err := execute(t, "saxpy", "-n", "1024", "--memory-limit", "100", "-q")
	require.Error(t, err)

	assert.ErrorIs(t, err, kernelbase.ErrAllocationFailed)
	assert.Contains(t, err.Error(), "status -1")
	assert.Contains(t, stdout, "Unable to malloc memory ... Exiting!\n")
}

func TestMCPiCommand(t *testing.T) {
	stdout, _, err := execute(t, "mcpi", "-i", "2", "-s", "1000", "--seed", "3", "-q")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Estimated Pi = ")
	assert.Contains(t, stdout, "It took ")
}

func TestMCPiCommand_Strict(t *testing.T) {
	_, _, err := execute(t, "mcpi", "-s", "0", "--strict", "-q")
	assert.ErrorIs(t, err, kernelbase.ErrInvalidSampleSize)

	stdout, _, err := execute(t, "mcpi", "-s", "0", "-q")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Estimated Pi = NaN\n")
}

func TestMetricsFlag(t *testing.T) {
	_, stderr, err := execute(t, "saxpy", "-n", "16", "-q", "--metrics")
	require.NoError(t, err)

	assert.Contains(t, stderr, `kernelbase_runs_total{kernel="saxpy",result="ok"} 1`)
	assert.Contains(t, stderr, "kernelbase_saxpy_elements_total 16")
}

func TestLogFlags(t *testing.T) {
	_, stderr, err := execute(t, "mcpi", "-i", "1", "-s", "10", "-q", "--log-level", "info", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"pi estimation completed"`)

	_, _, err = execute(t, "saxpy", "--log-level", "loud")
	assert.Error(t, err)

	_, _, err = execute(t, "saxpy", "--log-level", "info", "--log-format", "xml")
	assert.Error(t, err)
}

func TestInfoCommand(t *testing.T) {
	stdout, _, err := execute(t, "info")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Vector unit:")
	assert.Contains(t, stdout, "Kernel:       ")
	assert.Contains(t, stdout, "Available:    generic, unrolled8\n")
	assert.Contains(t, stdout, "Features:")
}

func TestKernelFlag(t *testing.T) {
	t.Cleanup(func() { _ = simd.Select(simd.Auto) })

	stdout, _, err := execute(t, "info", "--kernel", simd.Generic)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Kernel:       generic\n")

	stdout, _, err = execute(t, "info", "--kernel", simd.Unrolled)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Kernel:       unrolled8\n")

	stdout, _, err = execute(t, "saxpy", "-n", "33", "-q", "--kernel", simd.Generic)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Found 0 / 33 errors \n")

	stdout, _, err = execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Kernel:       "+simd.DefaultKernel()+"\n")

	_, _, err = execute(t, "saxpy", "--kernel", "avx512")
	assert.ErrorIs(t, err, simd.ErrUnknownKernel)
}

func TestSaxpyCommand_DefaultMemoryBudget(t *testing.T) {
	limit := resource.SystemMemoryLimit()
	if limit == 0 {
		t.Skip("memory size not probed on this platform")
	}
	size := max(uint64(1)<<38, uint64(limit)/4+1)

	stdout, _, err := execute(t, "saxpy", "-n", strconv.FormatUint(size, 10), "-q")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernelbase.ErrAllocationFailed)
	assert.Contains(t, stdout, "Unable to malloc memory ... Exiting!\n")
}
