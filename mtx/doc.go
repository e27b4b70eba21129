// SPDX-License-Identifier: MIT

// Package mtx reads and writes sparse matrices in the MatrixMarket
// coordinate text format.
//
// Format:
//
//	%%MatrixMarket matrix coordinate real general
//	% any number of comment lines, anywhere
//	<rows> <cols> <nnz>
//	<row> <col> <value>        (1-based indices, one entry per line)
//
// Decode folds the entries into a *matrix.Sparse (last write wins);
// DecodeTriplets keeps them as an ordered, unmerged sequence. Encode writes
// the banner, a comment, the header and one line per stored entry using the
// shortest round-trip float formatting.
//
// ReadFile/WriteFile choose a compression layer from the file extension
// (.zst, .gz, .lz4); Load/Store do the same over any Opener/Creator such as
// the ones in package source.
package mtx
