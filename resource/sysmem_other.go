//go:build !linux && !darwin

package resource

// SystemMemoryLimit returns 0: the memory size is not probed on this platform.
func SystemMemoryLimit() int64 {
	return 0
}
