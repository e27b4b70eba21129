// SPDX-License-Identifier: MIT

package verify

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/spmat/matrix"
)

// Timings records wall time per phase.
type Timings struct {
	PS      time.Duration // P·S
	PSP     time.Duration // (P·S)·P
	Scale   time.Duration // k·P
	Compare time.Duration
}

// Total sums every phase.
func (t Timings) Total() time.Duration { return t.PS + t.PSP + t.Scale + t.Compare }

// Report is the outcome of PSP.
type Report struct {
	Equal   bool
	PSP     *matrix.Sparse // left-hand side
	TwoP    *matrix.Sparse // right-hand side, factor·P
	NNZ     int            // stored entries of PSP
	Timings Timings
}

// OrderedReport is the outcome of PSPOrdered.
type OrderedReport struct {
	Equal   bool
	PSP     *matrix.Triplets
	TwoP    *matrix.Triplets
	Len     int // entries of PSP, duplicates included
	Timings Timings
}

// PSP checks P·S·P == factor·P (factor 2 by default) with accumulating
// products and an order-independent comparison.
//
// Errors: matrix sentinels from Multiply (ErrNilMatrix, ErrDimensionMismatch,
// cancellation). A failed identity is a Report with Equal == false, not an error.
func PSP(p, s *matrix.Sparse, opts ...Option) (Report, error) {
	o := gatherOptions(opts...)
	var (
		r   Report
		err error
	)

	start := time.Now()
	ps, err := matrix.Multiply(p, s, o.matrixOpts...)
	if err != nil {
		return r, fmt.Errorf("verify: P·S: %w", err)
	}
	r.Timings.PS = time.Since(start)
	o.phase("P·S", ps.NNZ(), r.Timings.PS)

	start = time.Now()
	if r.PSP, err = matrix.Multiply(ps, p, o.matrixOpts...); err != nil {
		return r, fmt.Errorf("verify: PS·P: %w", err)
	}
	r.Timings.PSP = time.Since(start)
	o.phase("PS·P", r.PSP.NNZ(), r.Timings.PSP)

	start = time.Now()
	if r.TwoP, err = matrix.Scale(p, o.factor); err != nil {
		return r, fmt.Errorf("verify: scale: %w", err)
	}
	r.Timings.Scale = time.Since(start)

	start = time.Now()
	r.Equal = matrix.Equal(r.PSP, r.TwoP, o.tol)
	r.Timings.Compare = time.Since(start)
	r.NNZ = r.PSP.NNZ()
	o.logger.Debug("identity compared",
		slog.Bool("equal", r.Equal),
		slog.Float64("tolerance", o.tol),
		slog.Duration("elapsed", r.Timings.Compare),
	)

	return r, nil
}

// PSPOrdered runs the same check element by element: unmerged products
// (MultiplyPairs), ScaleTriplets and an order-sensitive comparison. It only
// succeeds when the pair expansion reproduces factor·P entry for entry, as it
// does for diagonal operands.
func PSPOrdered(p, s *matrix.Triplets, opts ...Option) (OrderedReport, error) {
	o := gatherOptions(opts...)
	var (
		r   OrderedReport
		err error
	)

	start := time.Now()
	ps, err := matrix.MultiplyPairs(p, s)
	if err != nil {
		return r, fmt.Errorf("verify: P·S: %w", err)
	}
	r.Timings.PS = time.Since(start)
	o.phase("P·S", ps.Len(), r.Timings.PS)

	start = time.Now()
	if r.PSP, err = matrix.MultiplyPairs(ps, p); err != nil {
		return r, fmt.Errorf("verify: PS·P: %w", err)
	}
	r.Timings.PSP = time.Since(start)
	o.phase("PS·P", r.PSP.Len(), r.Timings.PSP)

	start = time.Now()
	if r.TwoP, err = matrix.ScaleTriplets(p, o.factor); err != nil {
		return r, fmt.Errorf("verify: scale: %w", err)
	}
	r.Timings.Scale = time.Since(start)

	start = time.Now()
	r.Equal = matrix.EqualOrdered(r.PSP, r.TwoP, o.tol)
	r.Timings.Compare = time.Since(start)
	r.Len = r.PSP.Len()

	return r, nil
}

func (o options) phase(name string, nnz int, d time.Duration) {
	o.logger.Debug("product done",
		slog.String("product", name),
		slog.Int("nnz", nnz),
		slog.Duration("elapsed", d),
	)
}
