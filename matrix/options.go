// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for sparse storage and kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Storage policy (threshold, validateNaNInf) is captured by a *Sparse at
//     creation; later options never change an existing matrix.
//   - Kernel policy (workers, ctx, logger, progress) applies per call.
//   - In Multiply the threshold plays two roles: operands below it are
//     skipped and it becomes the zero-suppression cutoff of the result.
package matrix

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultThreshold keeps every non-zero value (only exact 0 is dropped).
	DefaultThreshold = 0.0

	// TightThreshold is the cutoff used by the threshold-aware benchmark mode.
	TightThreshold = 1e-10

	// DefaultTolerance is the absolute tolerance of Equal / EqualOrdered callers.
	DefaultTolerance = 1e-6

	// DefaultValidateNaNInf rejects NaN/±Inf on Set.
	DefaultValidateNaNInf = true
)

// Kernel policy.
const (
	// DefaultWorkers runs Multiply on the calling goroutine.
	DefaultWorkers = 1

	// DefaultProgressInterval is the minimum spacing of progress records.
	DefaultProgressInterval = time.Second
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid = "matrix: WithThreshold: threshold must be finite, non-negative"
	panicWorkersInvalid   = "matrix: WithWorkers: workers must be >= 1"
	panicContextNil       = "matrix: WithContext: ctx must not be nil"
	panicLoggerNil        = "matrix: WithLogger: logger must not be nil"
	panicIntervalInvalid  = "matrix: WithProgressInterval: interval must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	// storage policy
	threshold      float64 // >= 0; DefaultThreshold
	validateNaNInf bool    // DefaultValidateNaNInf

	// kernel policy
	workers  int             // >= 1; DefaultWorkers
	ctx      context.Context // context.Background()
	logger   *slog.Logger    // discard handler
	interval time.Duration   // DefaultProgressInterval
}

// ---------- Constructors (WithX) ----------

// WithThreshold sets the zero-suppression cutoff t.
// Implementation:
//   - Stage 1: validate t is finite and ≥ 0.
//   - Stage 2: return a setter that writes t into Options.
//
// Behavior highlights:
//   - Storage: Set drops v when v == 0 or |v| < t.
//   - Multiply: operand values with |v| < t are skipped and the product is
//     stored under the same cutoff.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Use TightThreshold (1e-10) to mirror the threshold-aware benchmark tools.
func WithThreshold(t float64) Option {
	if isNonFinite(t) || t < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

// WithValidateNaNInf enables strict finite-value validation on Set (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
// Existing matrices keep their policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithWorkers sets the number of goroutines used by Multiply.
// n == 1 keeps the sequential path. Output order does not depend on n.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithContext attaches a cancellation context to Multiply / MultiplyScan.
// Cancellation is observed between output rows.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicContextNil)
	}

	return func(o *Options) { o.ctx = ctx }
}

// WithLogger routes progress records of the multiply kernels to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithProgressInterval sets the minimum interval between progress records.
func WithProgressInterval(d time.Duration) Option {
	if d <= 0 {
		panic(panicIntervalInvalid)
	}

	return func(o *Options) { o.interval = d }
}

// ---------- Options resolution ----------

// discardLogger is shared by every call without WithLogger.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// gatherOptions applies user options over defaults in order (last writer wins).
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		threshold:      DefaultThreshold,
		validateNaNInf: DefaultValidateNaNInf,
		workers:        DefaultWorkers,
		ctx:            context.Background(),
		logger:         discardLogger,
		interval:       DefaultProgressInterval,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
