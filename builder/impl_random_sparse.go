// SPDX-License-Identifier: MIT
// Package: spmat/builder
//
// impl_random_sparse.go - implementation of RandomSparse / RandomSparsePair.
//
// Canonical model:
//   - Every row i stores exactly `degree` entries: the diagonal (i,i) plus
//     degree-1 distinct off-diagonal columns drawn uniformly from [0, cols).
//   - Diagonal values ~U[diag.lo, diag.hi), off-diagonal ~U[off.lo, off.hi).
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 (else ErrTooSmall).
//   - rows ≤ cols and degree ≤ cols (else ErrDegreeTooLarge).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(rows · degree log degree) in the sparse regime.
//   - Space: O(rows · degree).
//
// Determinism:
//   - Stable row order: i asc. Per row: pattern draw, then values in
//     ascending column order. Fixed seed ⇒ identical matrix.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/spmat/matrix"
)

// Method tags.
const (
	methodRandomSparse     = "RandomSparse"
	methodRandomSparsePair = "RandomSparsePair"
	minDimension           = 1
)

// RandomSparse samples a rows×cols matrix with `degree` entries per row.
//
// AI-Hints:
//   - Two independent patterns: call twice with different seeds (see SplitSeed).
//   - For a shared pattern with independent values use RandomSparsePair.
func RandomSparse(rows, cols int, opts ...Option) (*matrix.Sparse, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateShape(methodRandomSparse, rows, cols, cfg); err != nil {
		return nil, err
	}

	m, err := matrix.NewSparse(rows, cols)
	if err != nil {
		return nil, builderErrorf(methodRandomSparse, err, "NewSparse(%d,%d)", rows, cols)
	}
	for i := 0; i < rows; i++ { // stable i asc
		for _, j := range pickColumns(cfg.rng, i, cols, cfg.degree) {
			if err = m.Set(i, j, cfg.draw(i, j)); err != nil {
				return nil, builderErrorf(methodRandomSparse, err, "Set(%d,%d)", i, j)
			}
		}
	}

	return m, nil
}

// RandomSparsePair samples two rows×cols matrices sharing one sparsity pattern
// with independent values: per coordinate the A value is drawn, then the B value.
func RandomSparsePair(rows, cols int, opts ...Option) (a, b *matrix.Sparse, err error) {
	cfg := newBuilderConfig(opts...)
	if err = validateShape(methodRandomSparsePair, rows, cols, cfg); err != nil {
		return nil, nil, err
	}

	if a, err = matrix.NewSparse(rows, cols); err != nil {
		return nil, nil, builderErrorf(methodRandomSparsePair, err, "NewSparse(%d,%d)", rows, cols)
	}
	if b, err = matrix.NewSparse(rows, cols); err != nil {
		return nil, nil, builderErrorf(methodRandomSparsePair, err, "NewSparse(%d,%d)", rows, cols)
	}
	for i := 0; i < rows; i++ {
		for _, j := range pickColumns(cfg.rng, i, cols, cfg.degree) {
			va := cfg.draw(i, j)
			vb := cfg.draw(i, j)
			if err = a.Set(i, j, va); err != nil {
				return nil, nil, builderErrorf(methodRandomSparsePair, err, "A.Set(%d,%d)", i, j)
			}
			if err = b.Set(i, j, vb); err != nil {
				return nil, nil, builderErrorf(methodRandomSparsePair, err, "B.Set(%d,%d)", i, j)
			}
		}
	}

	return a, b, nil
}

// draw returns the value for (i, j) from the diagonal or off-diagonal range.
func (c builderConfig) draw(i, j int) float64 {
	r := c.off
	if i == j {
		r = c.diag
	}

	return uniformIn(c.rng, r.lo, r.hi)
}

// validateShape applies the contract in priority order.
func validateShape(method string, rows, cols int, cfg builderConfig) error {
	if rows < minDimension || cols < minDimension {
		return builderErrorf(method, ErrTooSmall, "rows=%d cols=%d < min=%d", rows, cols, minDimension)
	}
	if rows > cols {
		return builderErrorf(method, ErrDegreeTooLarge, "rows=%d > cols=%d (diagonal not addressable)", rows, cols)
	}
	if cfg.degree > cols {
		return builderErrorf(method, ErrDegreeTooLarge, "degree=%d > cols=%d", cfg.degree, cols)
	}
	if cfg.rng == nil {
		return builderErrorf(method, ErrNeedRandSource, "rng is required")
	}

	return nil
}

// NewRand is a convenience constructor mirroring WithSeed for callers that
// need to keep the *rand.Rand (e.g. to continue a stream across calls).
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
