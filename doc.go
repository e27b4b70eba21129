// Package spmat is a sparse coordinate-matrix engine: storage of non-zero
// entries, products that never touch the dense O(n³) space, trace, scalar
// scaling and approximate comparison, fed by MatrixMarket files or by a
// reproducible synthetic generator.
//
// 🚀 What is in the box?
//
//   - matrix/    Sparse (hash-indexed, insertion-ordered, per-row roaring index),
//     Triplets (unmerged sequence), Multiply / MultiplyScan / MultiplyPairs,
//     Trace, Scale, Equal, Filter, Submatrix
//   - builder/   RandomSparse / RandomSparsePair: diagonal + fixed fan-out rows
//   - mtx/       MatrixMarket coordinate codec, .zst/.gz/.lz4 transparently
//   - source/    local, s3:// and minio:// readers and writers
//   - snapshot/  mmap-backed binary cache of matrices
//   - verify/    the P·S·P == 2·P identity check
//   - cmd/spmat  psp2p, multrace, bench, gen, submatrix, head
//
// ✨ Numeric policy
//
//   - A value v is stored only when v != 0 and |v| >= threshold
//     (default 0, matrix.TightThreshold = 1e-10 for the threshold-aware mode).
//   - Comparisons use an absolute tolerance (default 1e-6).
//
// Quick start:
//
//	p, _, _ := mtx.ReadFile("P.mtx")
//	s, _, _ := mtx.ReadFile("S.mtx")
//	r, err := verify.PSP(p, s)
//	fmt.Println(r.Equal, err)
package spmat
