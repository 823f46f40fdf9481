//go:build linux

package resource

import "golang.org/x/sys/unix"

// SystemMemoryLimit returns physical RAM plus swap, capped by the process
// address-space limit (RLIMIT_AS). It returns 0 if the size is unknown.
func SystemMemoryLimit() int64 {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0
	}

	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}
	total := (uint64(info.Totalram) + uint64(info.Totalswap)) * unit

	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_AS, &rl); err == nil && rl.Cur < total {
		total = rl.Cur
	}

	return clampInt64(total)
}
