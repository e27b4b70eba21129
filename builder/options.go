// SPDX-License-Identifier: MIT
// Package: spmat/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible fixtures.
//   • WithDegree sets the per-row entry count including the diagonal.
//   • Value ranges are half-open [lo, hi); exact zero draws are redrawn.

package builder

import (
	"math"
	"math/rand" // RNG source for stochastic generators
)

// Option customizes a generator by mutating a builderConfig instance before
// generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithRand provides an explicit RNG for the generators.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDegree sets the number of stored entries per row, diagonal included.
// Panics if d < 1.
func WithDegree(d int) Option {
	if d < 1 {
		panic("builder: WithDegree(d<1)")
	}
	return func(c *builderConfig) {
		c.degree = d
	}
}

// WithDiagonalRange sets the half-open range [lo, hi) of diagonal values.
// Panics on non-finite bounds or lo >= hi.
func WithDiagonalRange(lo, hi float64) Option {
	mustRange("WithDiagonalRange", lo, hi)
	return func(c *builderConfig) {
		c.diag = valueRange{lo: lo, hi: hi}
	}
}

// WithOffDiagonalRange sets the half-open range [lo, hi) of off-diagonal values.
// Panics on non-finite bounds or lo >= hi.
func WithOffDiagonalRange(lo, hi float64) Option {
	mustRange("WithOffDiagonalRange", lo, hi)
	return func(c *builderConfig) {
		c.off = valueRange{lo: lo, hi: hi}
	}
}

// mustRange panics with a stable message on an unusable [lo, hi).
func mustRange(name string, lo, hi float64) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		panic("builder: " + name + "(lo>=hi or non-finite)")
	}
}
