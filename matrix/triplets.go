// SPDX-License-Identifier: MIT

package matrix

import "slices"

// Triplets is an unmerged, ordered sequence of entries with a declared shape.
// Duplicate coordinates are allowed; order is significant. Triplets is what a
// MatrixMarket file literally contains and what MultiplyPairs produces.
type Triplets struct {
	r, c int
	data []Entry
}

// NewTriplets returns an empty rows×cols sequence; ErrBadShape on negative shape.
func NewTriplets(rows, cols int) (*Triplets, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewTriplets, ErrBadShape)
	}

	return &Triplets{r: rows, c: cols}, nil
}

// TripletsOf wraps entries (copied) with a declared shape.
// Negative coordinates are rejected with ErrOutOfRange.
func TripletsOf(rows, cols int, entries []Entry) (*Triplets, error) {
	t, err := NewTriplets(rows, cols)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err = t.Append(e.Row, e.Col, e.Value); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Rows returns the declared row count.
func (t *Triplets) Rows() int { return t.r }

// Cols returns the declared column count.
func (t *Triplets) Cols() int { return t.c }

// Len returns the number of entries, duplicates included.
func (t *Triplets) Len() int { return len(t.data) }

// Append adds one entry at the end. Values are stored as-is (no suppression).
func (t *Triplets) Append(i, j int, v float64) error {
	if i < 0 || j < 0 {
		return indexErrorf(opAppend, i, j, ErrOutOfRange)
	}
	t.data = append(t.data, Entry{Row: i, Col: j, Value: v})

	return nil
}

// Entries returns a copy of the sequence.
func (t *Triplets) Entries() []Entry { return slices.Clone(t.data) }

// Range calls fn for each entry in order until fn returns false.
func (t *Triplets) Range(fn func(e Entry) bool) {
	for _, e := range t.data {
		if !fn(e) {
			return
		}
	}
}

// Head returns a copy of the first n entries (all when n exceeds Len).
func (t *Triplets) Head(n int) []Entry {
	if n < 0 {
		n = 0
	}
	if n > len(t.data) {
		n = len(t.data)
	}

	return slices.Clone(t.data[:n])
}

// Clone returns a deep copy.
func (t *Triplets) Clone() *Triplets {
	return &Triplets{r: t.r, c: t.c, data: slices.Clone(t.data)}
}

// Merge folds the sequence into a *Sparse with set semantics.
// MAIN DESCRIPTION:
//   - Last write wins per coordinate; the numeric policy of opts applies
//     (negligible values are dropped, NaN/Inf rejected by default).
//
// Behavior highlights:
//   - A coordinate's iteration position is that of its first surviving write.
//
// Complexity:
//   - Time O(Len) amortized, Space O(distinct coordinates).
func (t *Triplets) Merge(opts ...Option) (*Sparse, error) {
	if t == nil {
		return nil, matrixErrorf(opMerge, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	m := newSparseWithPolicy(t.r, t.c, o.threshold, o.validateNaNInf, len(t.data))
	for _, e := range t.data {
		if err := m.Set(e.Row, e.Col, e.Value); err != nil {
			return nil, matrixErrorf(opMerge, err)
		}
	}

	return m, nil
}

// Accumulate folds the sequence into a *Sparse summing duplicate coordinates.
// Sums that end up negligible under the threshold of opts are dropped.
// Merged MultiplyPairs output equals Multiply up to summation order.
func (t *Triplets) Accumulate(opts ...Option) (*Sparse, error) {
	if t == nil {
		return nil, matrixErrorf(opAccumulate, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	m := newSparseWithPolicy(t.r, t.c, o.threshold, o.validateNaNInf, len(t.data))
	for _, e := range t.data {
		if o.validateNaNInf && isNonFinite(e.Value) {
			return nil, indexErrorf(opAccumulate, e.Row, e.Col, ErrNaNInf)
		}
		m.accumulate(e)
	}
	m.prune()

	return m, nil
}
