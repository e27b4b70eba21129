// SPDX-License-Identifier: MIT

//go:build linux || darwin || freebsd || netbsd || openbsd

package rusage

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// PeakRSS returns the maximum resident set size of the process in bytes.
func PeakRSS() (int64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}
	// darwin reports bytes, the others KiB.
	if runtime.GOOS == "darwin" {
		return int64(ru.Maxrss), nil
	}

	return int64(ru.Maxrss) * 1024, nil
}
