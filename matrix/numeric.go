// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

// abs returns |v| for any float type.
func abs[F constraints.Float](v F) F {
	if v < 0 {
		return -v
	}

	return v
}

// isNegligible reports whether v must not be stored under threshold t:
// exact zero always, and |v| < t when t > 0.
func isNegligible[F constraints.Float](v, t F) bool {
	return v == 0 || abs(v) < t
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// withinTol reports |a-b| <= tol. NaN on either side is never within tolerance.
func withinTol[F constraints.Float](a, b, tol F) bool {
	return abs(a-b) <= tol
}
