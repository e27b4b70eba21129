// SPDX-License-Identifier: MIT

package matrix

import (
	"log/slog"
	"sync/atomic"

	"golang.org/x/time/rate"
)

// progress emits throttled "multiply progress" records while a kernel runs.
// Safe for concurrent use by shard workers.
type progress struct {
	op       string
	log      *slog.Logger
	every    rate.Sometimes
	total    int
	rows     atomic.Int64
	products atomic.Int64
}

// newProgress returns a tracker for an op over total output rows.
// The first record is emitted after the first completed row.
func newProgress(op string, o Options, total int) *progress {
	return &progress{
		op:    op,
		log:   o.logger,
		every: rate.Sometimes{Interval: o.interval},
		total: total,
	}
}

// rowDone accounts one finished row with its partial-product count.
func (p *progress) rowDone(products int) {
	rows := p.rows.Add(1)
	prods := p.products.Add(int64(products))
	p.every.Do(func() {
		p.log.Debug("multiply progress",
			slog.String("op", p.op),
			slog.Int64("rows_done", rows),
			slog.Int("rows_total", p.total),
			slog.Int64("products", prods),
		)
	})
}

// finish emits the closing record unconditionally.
func (p *progress) finish(nnz int) {
	p.log.Debug("multiply done",
		slog.String("op", p.op),
		slog.Int64("rows", p.rows.Load()),
		slog.Int64("products", p.products.Load()),
		slog.Int("nnz", nnz),
	)
}
