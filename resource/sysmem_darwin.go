//go:build darwin

package resource

import "golang.org/x/sys/unix"

// SystemMemoryLimit returns the physical memory size (hw.memsize).
// It returns 0 if the size is unknown.
func SystemMemoryLimit() int64 {
	total, err := unix.SysctlUint64("hw.memsize")
	if err != nil {
		return 0
	}
	return clampInt64(total)
}
