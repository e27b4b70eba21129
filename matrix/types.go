// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the sparse kernels.
// This file contains ONLY domain-facing types (coordinates, entries) and the
// read-only Matrix interface. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

import "math"

// MaxIndex is the largest column index the row index can hold.
// Rows are unbounded (beyond int range); columns live in uint32 bitmaps.
const MaxIndex = math.MaxUint32

// Coord is a (row, column) position, 0-based. Used as the map key of Sparse.
type Coord struct {
	Row int // 0-based row
	Col int // 0-based column
}

// Entry is one stored coordinate with its value.
type Entry struct {
	Row   int     // 0-based row
	Col   int     // 0-based column
	Value float64 // stored value (never negligible inside a *Sparse)
}

// Coord returns the position of e.
func (e Entry) Coord() Coord { return Coord{Row: e.Row, Col: e.Col} }

// Matrix is the read-only view shared by sparse containers.
//
// Contract:
//   - Rows/Cols report declared metadata; entries are not required to lie
//     inside the declared shape.
//   - At returns 0 for absent coordinates (never an error).
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the declared number of rows.
	Rows() int

	// Cols returns the declared number of columns.
	Cols() int

	// At returns the stored value at (i, j), or 0 when absent.
	At(i, j int) float64

	// NNZ returns the number of stored coordinates.
	NNZ() int
}
