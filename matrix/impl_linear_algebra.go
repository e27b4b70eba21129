// SPDX-License-Identifier: MIT

// Package matrix - scalar and diagonal operations over sparse containers.
//
// Purpose:
//   - Scale / ScaleTriplets: multiply every stored value by a scalar.
//   - Trace / TraceOf: sum of the leading diagonal via point lookups.
//
// Determinism:
//   - Scale keeps coordinates and order of the input; results are fresh values.
package matrix

// Scale returns k·M with exactly the coordinates of M.
// Implementation:
//   - Stage 1: validate m is non-nil.
//   - Stage 2: copy entries in insertion order, multiplying each value by k.
//
// Behavior highlights:
//   - Nothing is dropped, even for k == 0 or products below the threshold.
//   - NaN/Inf in k propagate; no validation is applied.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(nnz), Space O(nnz).
func Scale(m *Sparse, k float64) (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := m.Clone()
	for p := range out.entries {
		out.entries[p].Value *= k
	}

	return out, nil
}

// ScaleTriplets returns k·T element by element, preserving order and duplicates.
func ScaleTriplets(t *Triplets, k float64) (*Triplets, error) {
	if err := ValidateTripletsNotNil(t); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := t.Clone()
	for p := range out.data {
		out.data[p].Value *= k
	}

	return out, nil
}

// Trace returns Σ M(i,i) for i in [0, n); absent diagonal entries count as 0.
// n is not checked against the declared shape; n <= 0 yields 0.
// Complexity: O(n) point lookups.
func Trace(m Matrix, n int) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		sum += m.At(i, i)
	}

	return sum
}

// TraceOf returns Trace(m, min(rows, cols)).
func TraceOf(m Matrix) float64 {
	return Trace(m, min(m.Rows(), m.Cols()))
}
