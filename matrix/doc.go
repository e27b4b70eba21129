// Package matrix is a sparse coordinate-matrix engine.
//
// The matrix package provides:
//
//   - Sparse: map-keyed storage of non-zero entries with O(1) point lookup,
//     insertion-order iteration and a per-row roaring-bitmap column index.
//   - Triplets: the unmerged (row, col, value) sequence as read from a
//     MatrixMarket file, duplicates and order preserved.
//   - Multiply / MultiplyScan: accumulating products (non-zero driven and
//     index-range driven), optionally row-sharded across goroutines.
//   - MultiplyPairs: the unmerged product over Triplets.
//   - Scale, Trace, Equal / EqualOrdered, Filter, Submatrix.
//
// Inputs are never mutated by operations; every kernel returns a fresh value.
// A *Sparse is not safe for concurrent mutation; concurrent reads are fine.
//
// See the examples in this package and the verify package for usage patterns.
package matrix
