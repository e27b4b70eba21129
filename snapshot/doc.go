// SPDX-License-Identifier: MIT

// Package snapshot stores sparse matrices in a fixed-width binary layout that
// is read back through a memory map.
//
// Layout (little-endian):
//
//	offset 0   magic  "SPMATSN1"
//	offset 8   rows   int64
//	offset 16  cols   int64
//	offset 24  count  int64
//	offset 32  count × { row int64, col int64, value float64 bits }
//
// Records keep the source order, so a Sparse snapshot reloads with its
// insertion order and a Triplets snapshot keeps its duplicates. Reloading a
// snapshot of a large product skips MatrixMarket text parsing entirely.
package snapshot
