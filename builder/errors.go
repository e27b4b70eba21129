// SPDX-License-Identifier: MIT
// Package: spmat/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with builderErrorf (wraps via %w).
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Priority (tie-break when multiple validations fail):
//   • ErrTooSmall        - rows/cols below 1.
//   • ErrDegreeTooLarge  - degree beyond cols, or rows beyond cols.
//   • ErrNeedRandSource  - then RNG presence.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates that rows or cols is smaller than 1.
// Usage: if errors.Is(err, ErrTooSmall) { /* report invalid size */ }.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrDegreeTooLarge indicates that a row cannot hold the requested number of
// distinct columns (degree > cols), or that the diagonal is not addressable
// for every row (rows > cols).
var ErrDegreeTooLarge = errors.New("builder: degree exceeds columns")

// ErrNeedRandSource indicates that a generator requires a non-nil *rand.Rand
// (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf wraps err with the method context and a formatted detail.
// It returns an error of the form "<Method>: <detail>: <err>".
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
