// SPDX-License-Identifier: MIT

package mtx

import (
	"math"

	"github.com/katalvlaran/spmat/matrix"
)

// Defaults.
const (
	// DefaultComment is written on the line after the banner.
	DefaultComment = "generated by spmat"

	// Banner is the MatrixMarket banner written by Encode.
	Banner = "%%MatrixMarket matrix coordinate real general"
)

// Option configures Decode/Encode.
type Option func(*options)

type options struct {
	threshold   float64         // drop |v| < threshold on decode
	comment     string          // encode comment line; empty disables it
	strictCount bool            // header nnz must match the entry count
	matrixOpts  []matrix.Option // extra storage policy for decoded matrices
}

// WithThreshold drops entries with |v| < t while decoding (threshold-aware
// loading, e.g. matrix.TightThreshold). Panics on negative or non-finite t.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		panic("mtx: WithThreshold: threshold must be finite, non-negative")
	}
	return func(o *options) { o.threshold = t }
}

// WithComment replaces the comment line written by Encode; "" writes none.
func WithComment(c string) Option {
	return func(o *options) { o.comment = c }
}

// WithStrictCount makes decoding fail with ErrCountMismatch when the number
// of entry lines differs from the header's nnz (informational by default).
func WithStrictCount() Option {
	return func(o *options) { o.strictCount = true }
}

// WithMatrixOptions forwards storage options to matrices built by Decode.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

func gatherOptions(user ...Option) options {
	o := options{comment: DefaultComment}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
