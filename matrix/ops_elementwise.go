// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Approximate comparison of sparse containers (merged and ordered forms).
//   - Threshold filtering.
//
// Determinism & Performance:
//   - Equal walks a's insertion order with O(1) lookups into b: O(nnz).
//   - EqualOrdered is a single positional pass: O(len).
//
// AI-Hints:
//   - Use Equal for Multiply results (order-independent).
//   - Use EqualOrdered only for element-by-element pipelines over Triplets,
//     where the producing order is part of the contract.

package matrix

// Equal reports whether a and b hold the same coordinates with values within tol.
// Implementation:
//   - Stage 1: shapes must match; stored counts must match.
//   - Stage 2: every coordinate of a must be stored in b with |a−b| ≤ tol.
//
// Behavior highlights:
//   - Order-independent. Negative tol is treated as |tol|. NaN never compares equal.
//   - nil == nil; nil vs non-nil is unequal.
//
// Complexity:
//   - Time O(nnz), Space O(1).
func Equal(a, b *Sparse, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if ValidateSameShape(a, b) != nil || len(a.entries) != len(b.entries) {
		return false
	}
	tol = abs(tol)
	for _, e := range a.entries {
		p, ok := b.pos[e.Coord()]
		if !ok {
			return false
		}
		if !withinTol(e.Value, b.entries[p].Value, tol) {
			return false
		}
	}

	return true
}

// EqualOrdered reports positional equality of two triplet sequences.
// Lengths must match; at each position coordinates must be identical and
// values within tol. Two sequences holding the same multiset in different
// orders compare unequal.
// Complexity: O(len).
func EqualOrdered(a, b *Triplets, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.data) != len(b.data) {
		return false
	}
	tol = abs(tol)
	for p, ea := range a.data {
		eb := b.data[p]
		if ea.Row != eb.Row || ea.Col != eb.Col {
			return false
		}
		if !withinTol(ea.Value, eb.Value, tol) {
			return false
		}
	}

	return true
}

// Filter returns a copy of m without entries with |v| < t.
// The result's threshold is max(m.Threshold(), t), so Filter is idempotent:
// Filter(Filter(m, t), t) == Filter(m, t).
// Errors: ErrNilMatrix; panics never (t is clamped to >= 0, NaN treated as 0).
func Filter(m *Sparse, t float64) (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opFilter, err)
	}
	if !(t > 0) {
		t = 0
	}
	out := newSparseWithPolicy(m.r, m.c, max(m.threshold, t), m.validateNaNInf, len(m.entries))
	for _, e := range m.entries {
		if !isNegligible(e.Value, t) {
			out.insert(e)
		}
	}

	return out, nil
}
