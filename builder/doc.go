// Package builder provides seeded synthetic sparse-matrix generators in the
// “functional-options” style.
//
// The package offers the following key components:
//
//   - Generators:
//     – RandomSparse:      rows×cols matrix, exactly `degree` entries per row,
//     diagonal always present.
//     – RandomSparsePair:  two matrices sharing one pattern, independent values.
//   - Configuration primitives:
//     – Option:            a function that mutates builderConfig before use.
//     – WithSeed/WithRand: explicit, reproducible randomness.
//     – WithDegree, WithDiagonalRange, WithOffDiagonalRange.
//   - RNG helpers:
//     – SplitSeed:         derive decorrelated seeds for independent streams.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Structured runtime errors (builderErrorf) wrapping sentinel errors.
//   - Fixed draw order: identical output for an identical seed and options.
//
// See individual function documentation for contracts and complexity.
package builder
