// SPDX-License-Identifier: MIT
// Package: spmat/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng     = nil            (generators require WithSeed/WithRand)
//   • degree  = 10             (diagonal + 9 off-diagonal columns)
//   • diag    = [0, 1)
//   • off     = [-0.02, 0.02)

package builder

import "math/rand" // RNG for stochastic generators

// Deterministic defaults (named, no magic numbers).
const (
	DefaultDegree = 10    // entries per row, diagonal included
	DefaultDiagLo = 0.0   // diagonal lower bound (inclusive)
	DefaultDiagHi = 1.0   // diagonal upper bound (exclusive)
	DefaultOffLo  = -0.02 // off-diagonal lower bound (inclusive)
	DefaultOffHi  = 0.02  // off-diagonal upper bound (exclusive)
)

// valueRange is a half-open interval [lo, hi).
type valueRange struct {
	lo, hi float64
}

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	rng    *rand.Rand // nil means “not configured”
	degree int        // >= 1
	diag   valueRange // diagonal values
	off    valueRange // off-diagonal values
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		degree: DefaultDegree,
		diag:   valueRange{lo: DefaultDiagLo, hi: DefaultDiagHi},
		off:    valueRange{lo: DefaultOffLo, hi: DefaultOffHi},
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
