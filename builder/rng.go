// SPDX-License-Identifier: MIT
// Package: spmat/builder
//
// rng.go - RNG utilities shared by the generators.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrices for the same options.
//   - Encapsulation: generators draw only through these helpers, in a fixed order.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use SplitSeed to derive independent streams (one per matrix or worker).

package builder

import (
	"math/rand"
	"slices"

	"golang.org/x/exp/constraints"
)

// SplitSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// (SplitMix64 finalizer). Distinct streams of one parent are decorrelated.
//
// Complexity: O(1).
func SplitSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// uniformIn draws from [lo, hi) and redraws exact zeros, so every drawn
// value survives zero-suppression.
func uniformIn[F constraints.Float](rng *rand.Rand, lo, hi F) F {
	for {
		v := lo + (hi-lo)*F(rng.Float64())
		if v != 0 && v < hi {
			return v
		}
	}
}

// pickColumns returns {row} ∪ (degree-1) distinct random columns of [0, cols),
// sorted ascending. Caller guarantees row < cols and degree <= cols.
//
// Sparse regime (2·degree <= cols): rejection sampling of uniform columns.
// Dense regime: a permutation prefix, avoiding long rejection tails.
//
// Complexity: O(degree log degree) expected (sparse), O(cols) (dense).
func pickColumns(rng *rand.Rand, row, cols, degree int) []int {
	out := make([]int, 0, degree)
	out = append(out, row)
	if 2*degree <= cols {
		seen := make(map[int]struct{}, degree)
		seen[row] = struct{}{}
		for len(out) < degree {
			j := rng.Intn(cols)
			if _, dup := seen[j]; dup {
				continue
			}
			seen[j] = struct{}{}
			out = append(out, j)
		}
	} else {
		for _, j := range rng.Perm(cols) {
			if len(out) == degree {
				break
			}
			if j != row {
				out = append(out, j)
			}
		}
	}
	slices.Sort(out)

	return out
}
