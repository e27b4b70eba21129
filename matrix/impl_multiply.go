// SPDX-License-Identifier: MIT

// Package matrix - sparse products.
//
// Three kernels share one contract (C = A × B, shape rowsA × colsB, inputs
// never mutated, inner dimensions always checked):
//   - Multiply      : driven by stored non-zeros through the row index,
//     optionally row-sharded across goroutines.
//   - MultiplyScan  : driven by the declared index ranges with point lookups;
//     the reference kernel, same output as Multiply.
//   - MultiplyPairs : unmerged product over Triplets; every matching pair
//     emits its own term.
//
// Determinism:
//   - Output rows ascend; inside a row, columns appear in first-touch order
//     (k ascending, then j ascending). Per (i,j) terms are summed in k order,
//     so Multiply and MultiplyScan agree bit for bit, for any worker count.
//
// Entries lying outside the declared shape of an operand do not take part.
package matrix

import (
	"golang.org/x/sync/errgroup"
)

// shardsPerWorker is the number of row shards queued per worker.
const shardsPerWorker = 4

// rowAccumulator collects the terms of one output row in first-touch order.
type rowAccumulator struct {
	slot map[int]int // column -> offset in buf
	buf  []Entry
}

func newRowAccumulator() *rowAccumulator {
	return &rowAccumulator{slot: make(map[int]int)}
}

// add accumulates v into column j of the current row.
func (acc *rowAccumulator) add(row, j int, v float64) {
	if p, ok := acc.slot[j]; ok {
		acc.buf[p].Value += v

		return
	}
	acc.slot[j] = len(acc.buf)
	acc.buf = append(acc.buf, Entry{Row: row, Col: j, Value: v})
}

// flush appends the non-negligible sums to dst and resets the accumulator.
func (acc *rowAccumulator) flush(dst []Entry, threshold float64) []Entry {
	for _, e := range acc.buf {
		if !isNegligible(e.Value, threshold) {
			dst = append(dst, e)
		}
	}
	acc.buf = acc.buf[:0]
	clear(acc.slot)

	return dst
}

// Multiply computes C = A × B driven by the stored non-zeros.
// MAIN DESCRIPTION:
//   - For each stored (i,k) of A and each stored (k,j) of B, C(i,j) += A(i,k)·B(k,j).
//
// Implementation:
//   - Stage 1: validate operands (not nil, a.Cols == b.Rows).
//   - Stage 2: list A's non-empty rows in ascending order.
//   - Stage 3: per row, walk A's columns k and B's row k through the roaring
//     index, accumulate, then flush non-negligible sums.
//   - Stage 4 (workers > 1): rows are sharded across an errgroup; shard
//     outputs are stitched back in row order.
//
// Behavior highlights:
//   - Operand values with |v| < threshold are skipped (WithThreshold).
//   - Sums that are exactly 0 or below threshold are not stored.
//   - Cancellation (WithContext) is observed between rows.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ctx.Err() on cancellation.
//
// Complexity:
//   - Time O(Σ_i Σ_{k∈row i} nnz(B row k)), Space O(nnz(C)).
//
// AI-Hints:
//   - WithWorkers(runtime.NumCPU()) for large operands; output is identical.
//   - WithLogger + WithProgressInterval to watch long products.
func Multiply(a, b *Sparse, opts ...Option) (*Sparse, error) {
	if err := validateProduct(a, b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	o := gatherOptions(opts...)

	var rows []int
	for _, i := range a.rows.sortedRows() {
		if i < a.r {
			rows = append(rows, i)
		}
	}
	prog := newProgress(opMultiply, o, len(rows))

	var (
		body []Entry
		err  error
	)
	if o.workers > 1 && len(rows) > 1 {
		body, err = multiplySharded(a, b, rows, o, prog)
	} else {
		body, err = multiplyRows(a, b, rows, o, prog)
	}
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	out := newSparseWithPolicy(a.r, b.c, o.threshold, o.validateNaNInf, len(body))
	for _, e := range body {
		out.insert(e) // unique by construction
	}
	prog.finish(out.NNZ())

	return out, nil
}

// multiplyRows computes the given output rows sequentially.
func multiplyRows(a, b *Sparse, rows []int, o Options, prog *progress) ([]Entry, error) {
	acc := newRowAccumulator()
	var out []Entry
	for _, i := range rows {
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}
		products := 0
		a.rows.forEach(i, func(k int) {
			if k >= a.c {
				return
			}
			av := a.At(i, k)
			if isNegligible(av, o.threshold) {
				return
			}
			b.rows.forEach(k, func(j int) {
				if j >= b.c {
					return
				}
				bv := b.At(k, j)
				if isNegligible(bv, o.threshold) {
					return
				}
				acc.add(i, j, av*bv)
				products++
			})
		})
		out = acc.flush(out, o.threshold)
		prog.rowDone(products)
	}

	return out, nil
}

// multiplySharded splits rows into contiguous shards computed concurrently.
// Each shard owns disjoint output rows; results are concatenated in shard order.
func multiplySharded(a, b *Sparse, rows []int, o Options, prog *progress) ([]Entry, error) {
	g, ctx := errgroup.WithContext(o.ctx)
	g.SetLimit(o.workers)

	shards := splitRows(rows, o.workers*shardsPerWorker)
	results := make([][]Entry, len(shards))
	so := o
	so.ctx = ctx
	for s, part := range shards {
		s, part := s, part
		g.Go(func() error {
			res, err := multiplyRows(a, b, part, so, prog)
			if err != nil {
				return err
			}
			results[s] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	out := make([]Entry, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}

	return out, nil
}

// splitRows cuts rows into at most n contiguous, near-equal shards.
func splitRows(rows []int, n int) [][]int {
	if n > len(rows) {
		n = len(rows)
	}
	if n <= 1 {
		return [][]int{rows}
	}
	shards := make([][]int, 0, n)
	size, rem := len(rows)/n, len(rows)%n
	start := 0
	for s := 0; s < n; s++ {
		end := start + size
		if s < rem {
			end++
		}
		shards = append(shards, rows[start:end])
		start = end
	}

	return shards
}

// MultiplyScan computes C = A × B by sweeping the declared index ranges.
// Implementation:
//   - Stage 1: validate operands.
//   - Stage 2: for i in [0,rowsA), k in [0,colsA) with A(i,k) kept, j in
//     [0,colsB) with B(k,j) kept: C(i,j) += A(i,k)·B(k,j).
//
// Behavior highlights:
//   - Same options, same output and order as Multiply; always sequential.
//
// Complexity:
//   - Time O(rowsA·colsA + nnz(A)·colsB) point lookups, Space O(nnz(C)).
//
// AI-Hints:
//   - Reference kernel for tests and benchmarks; prefer Multiply in production.
func MultiplyScan(a, b *Sparse, opts ...Option) (*Sparse, error) {
	if err := validateProduct(a, b); err != nil {
		return nil, matrixErrorf(opMultiplyScan, err)
	}
	o := gatherOptions(opts...)
	prog := newProgress(opMultiplyScan, o, a.r)

	out := newSparseWithPolicy(a.r, b.c, o.threshold, o.validateNaNInf, 0)
	acc := newRowAccumulator()
	var row []Entry
	for i := 0; i < a.r; i++ {
		if err := o.ctx.Err(); err != nil {
			return nil, matrixErrorf(opMultiplyScan, err)
		}
		products := 0
		for k := 0; k < a.c; k++ {
			av := a.At(i, k)
			if isNegligible(av, o.threshold) {
				continue
			}
			for j := 0; j < b.c; j++ {
				bv := b.At(k, j)
				if isNegligible(bv, o.threshold) {
					continue
				}
				acc.add(i, j, av*bv)
				products++
			}
		}
		row = acc.flush(row[:0], o.threshold)
		for _, e := range row {
			out.insert(e)
		}
		prog.rowDone(products)
	}
	prog.finish(out.NNZ())

	return out, nil
}

// MultiplyPairs computes the unmerged product of two triplet sequences.
// Every pair (a_p, b_q) with a_p.Col == b_q.Row emits
// (a_p.Row, b_q.Col, a_p.Value·b_q.Value); nothing is merged or dropped.
//
// Determinism: A-major order, then B order.
// Complexity: Time O(|A|·|B|), Space O(matches).
func MultiplyPairs(a, b *Triplets) (*Triplets, error) {
	if err := ValidateTripletsNotNil(a); err != nil {
		return nil, matrixErrorf(opMultiplyPairs, err)
	}
	if err := ValidateTripletsNotNil(b); err != nil {
		return nil, matrixErrorf(opMultiplyPairs, err)
	}
	if err := ValidateMulCompatible(a.c, b.r); err != nil {
		return nil, matrixErrorf(opMultiplyPairs, err)
	}

	out := &Triplets{r: a.r, c: b.c}
	for _, ea := range a.data {
		for _, eb := range b.data {
			if ea.Col == eb.Row {
				out.data = append(out.data, Entry{Row: ea.Row, Col: eb.Col, Value: ea.Value * eb.Value})
			}
		}
	}

	return out, nil
}

// validateProduct runs NotNil(a) → NotNil(b) → MulCompatible.
func validateProduct(a, b *Sparse) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateMulCompatible(a.c, b.r)
}
