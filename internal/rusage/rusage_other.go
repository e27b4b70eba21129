// SPDX-License-Identifier: MIT

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package rusage

// PeakRSS is unavailable on this platform.
func PeakRSS() (int64, error) {
	return 0, ErrUnsupported
}
