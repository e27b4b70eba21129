// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Use NewIdentity/NewDiagonal to build neutral and scaled operands.
//   - FromEntries is the quickest way to build small fixtures.

package matrix

// NewIdentity returns I_n as a sparse n×n matrix (n stored ones).
// Complexity: O(n).
func NewIdentity(n int, opts ...Option) (*Sparse, error) {
	m, err := NewSparse(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.insert(Entry{Row: i, Col: i, Value: 1})
	}

	return m, nil
}

// NewDiagonal returns the len(d)×len(d) matrix with d on the diagonal.
// Values are written through Set, so negligible ones are not stored.
func NewDiagonal(d []float64, opts ...Option) (*Sparse, error) {
	m, err := NewSparse(len(d), len(d), opts...)
	if err != nil {
		return nil, err
	}
	for i, v := range d {
		if err = m.Set(i, i, v); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// FromEntries builds a rows×cols matrix by Set-ing entries in order (last write wins).
func FromEntries(rows, cols int, entries []Entry, opts ...Option) (*Sparse, error) {
	m, err := NewSparse(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err = m.Set(e.Row, e.Col, e.Value); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Product is an alias of Multiply for discoverability.
func Product(a, b *Sparse, opts ...Option) (*Sparse, error) { return Multiply(a, b, opts...) }

// ScaleBy is an alias of Scale.
func ScaleBy(m *Sparse, k float64) (*Sparse, error) { return Scale(m, k) }

// AllClose is an alias of Equal with DefaultTolerance.
func AllClose(a, b *Sparse) bool { return Equal(a, b, DefaultTolerance) }
