// SPDX-License-Identifier: MIT

// Package verify checks the algebraic identity P·S·P == k·P (k = 2 by
// default) within an absolute floating-point tolerance.
//
// PSP runs the accumulating pipeline: two matrix.Multiply calls, matrix.Scale
// and the merged matrix.Equal. PSPOrdered runs the element-by-element
// pipeline over unmerged Triplets (MultiplyPairs, ScaleTriplets,
// EqualOrdered), which is stricter: it requires matching entry order too.
package verify
