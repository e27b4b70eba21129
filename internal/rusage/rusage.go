// SPDX-License-Identifier: MIT

// Package rusage reports process memory high-water marks.
package rusage

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned on platforms without getrusage.
var ErrUnsupported = errors.New("rusage: unsupported platform")

// Bytes formats n with a binary unit suffix ("512 B", "1.5 MiB").
func Bytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
