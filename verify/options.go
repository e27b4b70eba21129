// SPDX-License-Identifier: MIT

package verify

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/spmat/matrix"
)

// Defaults.
const (
	// DefaultTolerance is the absolute per-entry tolerance.
	DefaultTolerance = matrix.DefaultTolerance

	// DefaultFactor is k in P·S·P == k·P.
	DefaultFactor = 2.0
)

// Option configures PSP and PSPOrdered.
type Option func(*options)

type options struct {
	tol        float64
	factor     float64
	matrixOpts []matrix.Option
	logger     *slog.Logger
}

// WithTolerance sets the absolute tolerance; negative values are taken as
// |tol|. Panics on NaN.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) {
		panic("verify: WithTolerance: tolerance must not be NaN")
	}
	return func(o *options) { o.tol = math.Abs(tol) }
}

// WithFactor sets the scalar on the right-hand side. Panics on NaN/Inf.
func WithFactor(k float64) Option {
	if math.IsNaN(k) || math.IsInf(k, 0) {
		panic("verify: WithFactor: factor must be finite")
	}
	return func(o *options) { o.factor = k }
}

// WithMultiplyOptions forwards options to both products (workers, threshold,
// context, progress logging).
func WithMultiplyOptions(opts ...matrix.Option) Option {
	return func(o *options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

// WithLogger receives one debug record per phase. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("verify: WithLogger: logger must not be nil")
	}
	return func(o *options) { o.logger = l }
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func gatherOptions(user ...Option) options {
	o := options{
		tol:    DefaultTolerance,
		factor: DefaultFactor,
		logger: discardLogger,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
