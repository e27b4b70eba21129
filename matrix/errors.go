// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. Panics are reserved
// for programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Kernels wrap with matrixErrorf(opTag, ErrX) at the detection site; callers
// still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape -> dimension mismatch -> index/NaN on ingestion.

var (
	// ErrNilMatrix indicates that a nil *Sparse or *Triplets was passed in.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadShape is returned when a requested shape is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Multiply where a.Cols != b.Rows, or Equal on different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates a negative coordinate, or a column beyond the
	// row index capacity (MaxIndex).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value on Set while the numeric policy
	// rejects non-finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// Operation tags used in wrapped errors.
const (
	opSet           = "Sparse.Set"
	opNewSparse     = "NewSparse"
	opMultiply      = "Multiply"
	opMultiplyScan  = "MultiplyScan"
	opMultiplyPairs = "MultiplyPairs"
	opScale         = "Scale"
	opFilter        = "Filter"
	opSubmatrix     = "Submatrix"
	opEqual         = "Equal"
	opMerge         = "Triplets.Merge"
	opAppend        = "Triplets.Append"
	opNewTriplets   = "NewTriplets"
	opAccumulate    = "Triplets.Accumulate"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf wraps err with an operation tag and the offending coordinate.
func indexErrorf(tag string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, row, col, err)
}
