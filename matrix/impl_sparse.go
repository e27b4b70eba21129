// SPDX-License-Identifier: MIT

// Package matrix - Sparse coordinate storage & safe accessors.
//
// Purpose:
//   - Store only non-negligible values keyed by (row, col) with O(1) lookup.
//   - Keep a deterministic iteration order (insertion order) for every walk.
//   - Maintain a per-row structural index (roaring bitmaps) so kernels can walk
//     a row's columns in ascending order without scanning the whole matrix.
//   - Enforce a numeric policy (zero-suppression threshold, NaN/Inf rejection)
//     captured once at creation.
//
// AI-Hints:
//   - Declared rows/cols are metadata: Set accepts any non-negative coordinate.
//   - Use Range for allocation-free walks; Entries returns a copy.
//   - Setting a negligible value at a stored coordinate removes it.
//
// Complexity quicksheet:
//   - NewSparse: O(1); At/Has: O(1); Set (insert/overwrite): O(1) amortized;
//     Set (remove): O(nnz); Clone: O(nnz); Row(i): O(nnz(row i)).

package matrix

import (
	"fmt"
	"slices"
	"strings"
)

// ---------- Formatting literals  ----------
const (
	_fmtHeader = "Sparse(%d×%d, nnz=%d)\n"
	_fmtEntry  = "[%d, %d] = %g\n"
)

// Sparse is a coordinate-keyed sparse matrix.
//   - r,c hold declared dimensions (metadata, not enforced on Set).
//   - entries holds stored values in insertion order.
//   - pos maps a coordinate to its offset in entries.
//   - rows indexes stored columns per row (roaring bitmaps).
//   - threshold/validateNaNInf form the numeric policy (options.go).
type Sparse struct {
	r, c           int           // declared shape (>= 0)
	entries        []Entry       // insertion order; negligible only after Scale by a tiny k
	pos            map[Coord]int // coord -> offset into entries
	rows           rowIndex      // row -> ascending stored columns
	threshold      float64       // zero-suppression cutoff (>= 0)
	validateNaNInf bool          // reject NaN/Inf on Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Sparse)(nil)
	_ fmt.Stringer = (*Sparse)(nil)
)

// NewSparse creates an empty rows×cols sparse matrix.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation and numeric policy from options.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: resolve options (WithThreshold, WithNoValidateNaNInf).
//   - Stage 3: allocate empty map + row index.
//
// Behavior highlights:
//   - 0×N and N×0 are legal (an empty MatrixMarket header "0 0 0").
//
// Errors:
//   - ErrBadShape (negative dimension).
//
// Complexity:
//   - Time O(1), Space O(1).
func NewSparse(rows, cols int, opts ...Option) (*Sparse, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewSparse, ErrBadShape)
	}
	o := gatherOptions(opts...)

	return newSparseWithPolicy(rows, cols, o.threshold, o.validateNaNInf, 0), nil
}

// newSparseWithPolicy is the internal constructor used by kernels.
// capacity pre-sizes the entry slice and map.
func newSparseWithPolicy(rows, cols int, threshold float64, validate bool, capacity int) *Sparse {
	return &Sparse{
		r:              rows,
		c:              cols,
		entries:        make([]Entry, 0, capacity),
		pos:            make(map[Coord]int, capacity),
		rows:           make(rowIndex),
		threshold:      threshold,
		validateNaNInf: validate,
	}
}

// Rows returns the declared row count.
// Complexity: O(1).
func (m *Sparse) Rows() int { return m.r }

// Cols returns the declared column count.
// Complexity: O(1).
func (m *Sparse) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Sparse) Shape() (rows, cols int) { return m.r, m.c }

// NNZ returns the number of stored coordinates.
func (m *Sparse) NNZ() int { return len(m.entries) }

// Threshold returns the zero-suppression cutoff captured at creation.
func (m *Sparse) Threshold() float64 { return m.threshold }

// Density returns NNZ / (rows·cols) as a float; 0 for an empty shape.
func (m *Sparse) Density() float64 {
	if m.r == 0 || m.c == 0 {
		return 0
	}

	return float64(len(m.entries)) / (float64(m.r) * float64(m.c))
}

// At returns the stored value at (i, j), or 0 when absent.
// Negative coordinates are simply absent.
// Complexity: O(1).
func (m *Sparse) At(i, j int) float64 {
	p, ok := m.pos[Coord{Row: i, Col: j}]
	if !ok {
		return 0
	}

	return m.entries[p].Value
}

// Has reports whether (i, j) is stored.
func (m *Sparse) Has(i, j int) bool {
	_, ok := m.pos[Coord{Row: i, Col: j}]

	return ok
}

// Set stores v at (i, j) under the numeric policy.
// MAIN DESCRIPTION:
//   - Overwrite semantics (not accumulation); zero-suppression on write.
//
// Implementation:
//   - Stage 1: reject negative coordinates and column > MaxIndex (ErrOutOfRange).
//   - Stage 2: reject NaN/±Inf when validation is on (ErrNaNInf).
//   - Stage 3: negligible v removes a stored coordinate, otherwise no-op.
//   - Stage 4: overwrite in place, or append and index a new coordinate.
//
// Behavior highlights:
//   - Overwriting keeps the original insertion position.
//   - Coordinates beyond the declared shape are accepted.
//
// Errors:
//   - ErrOutOfRange, ErrNaNInf (wrapped with coordinates).
//
// Complexity:
//   - Time O(1) amortized; O(nnz) when removing.
func (m *Sparse) Set(i, j int, v float64) error {
	if i < 0 || j < 0 || j > MaxIndex {
		return indexErrorf(opSet, i, j, ErrOutOfRange)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return indexErrorf(opSet, i, j, ErrNaNInf)
	}
	key := Coord{Row: i, Col: j}
	p, exists := m.pos[key]
	if isNegligible(v, m.threshold) {
		if exists {
			m.removeAt(p)
		}

		return nil
	}
	if exists {
		m.entries[p].Value = v // overwrite keeps insertion position

		return nil
	}
	m.insert(Entry{Row: i, Col: j, Value: v})

	return nil
}

// insert appends a new coordinate; the caller guarantees it is absent.
func (m *Sparse) insert(e Entry) {
	m.pos[e.Coord()] = len(m.entries)
	m.entries = append(m.entries, e)
	m.rows.add(e.Row, e.Col)
}

// removeAt deletes the entry at offset p and re-labels the shifted tail.
func (m *Sparse) removeAt(p int) {
	e := m.entries[p]
	delete(m.pos, e.Coord())
	m.rows.remove(e.Row, e.Col)
	m.entries = slices.Delete(m.entries, p, p+1)
	for k := p; k < len(m.entries); k++ {
		m.pos[m.entries[k].Coord()] = k
	}
}

// Entries returns a copy of the stored entries in insertion order.
func (m *Sparse) Entries() []Entry {
	return slices.Clone(m.entries)
}

// Range calls fn for each stored entry in insertion order until fn returns false.
func (m *Sparse) Range(fn func(e Entry) bool) {
	for _, e := range m.entries {
		if !fn(e) {
			return
		}
	}
}

// Row returns the stored entries of row i ordered by ascending column.
// Complexity: O(nnz(row i)).
func (m *Sparse) Row(i int) []Entry {
	cols := m.rows.columns(i)
	if cols == nil {
		return nil
	}
	out := make([]Entry, len(cols))
	for k, j := range cols {
		out[k] = Entry{Row: i, Col: j, Value: m.entries[m.pos[Coord{Row: i, Col: j}]].Value}
	}

	return out
}

// RowNNZ returns the number of stored entries in row i.
func (m *Sparse) RowNNZ(i int) int { return m.rows.count(i) }

// Clone returns a deep copy with the same shape, order and numeric policy.
// Complexity: O(nnz).
func (m *Sparse) Clone() *Sparse {
	pos := make(map[Coord]int, len(m.pos))
	for k, v := range m.pos {
		pos[k] = v
	}

	return &Sparse{
		r:              m.r,
		c:              m.c,
		entries:        slices.Clone(m.entries),
		pos:            pos,
		rows:           m.rows.clone(),
		threshold:      m.threshold,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Triplets exports the stored entries (insertion order) as an unmerged sequence.
func (m *Sparse) Triplets() *Triplets {
	return &Triplets{r: m.r, c: m.c, data: slices.Clone(m.entries)}
}

// String gives a readable dump of entries for diagnostics.
func (m *Sparse) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, _fmtHeader, m.r, m.c, len(m.entries))
	for _, e := range m.entries { // insertion order
		fmt.Fprintf(&b, _fmtEntry, e.Row, e.Col, e.Value)
	}

	return b.String()
}

// Submatrix extracts the leading rows×cols block of m.
// MAIN DESCRIPTION:
//   - Copy-based extraction: keep entries with row < rows and col < cols.
//
// Implementation:
//   - Stage 1: validate m and the requested shape.
//   - Stage 2: walk entries in insertion order, appending the kept ones.
//
// Behavior highlights:
//   - The result is declared rows×cols even when larger than m.
//   - Order and numeric policy are preserved.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape.
//
// Complexity:
//   - Time O(nnz), Space O(kept).
func Submatrix(m *Sparse, rows, cols int) (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opSubmatrix, ErrBadShape)
	}
	out := newSparseWithPolicy(rows, cols, m.threshold, m.validateNaNInf, 0)
	for _, e := range m.entries {
		if e.Row < rows && e.Col < cols {
			out.insert(e)
		}
	}

	return out, nil
}

// accumulate adds v into (e.Row, e.Col) without suppression; prune finalizes.
func (m *Sparse) accumulate(e Entry) {
	if p, ok := m.pos[e.Coord()]; ok {
		m.entries[p].Value += e.Value

		return
	}
	m.insert(e)
}

// prune drops entries that became negligible under the matrix threshold,
// compacting in place and keeping the relative order of survivors.
// Complexity: O(nnz).
func (m *Sparse) prune() {
	kept := m.entries[:0]
	for _, e := range m.entries {
		if isNegligible(e.Value, m.threshold) {
			delete(m.pos, e.Coord())
			m.rows.remove(e.Row, e.Col)

			continue
		}
		m.pos[e.Coord()] = len(kept)
		kept = append(kept, e)
	}
	m.entries = kept
}
