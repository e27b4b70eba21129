// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/shape checks here.
//   - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return matrixErrorf(tag, err)
}

// ValidateNotNil – Ensures the sparse matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m *Sparse) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateTripletsNotNil – Ensures the triplet sequence reference is non-nil.
func ValidateTripletsNotNil(t *Triplets) error {
	if t == nil {
		return validatorErrorf("ValidateTripletsNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures a and b declare equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible – Ensures aCols == bRows for a product A·B.
//
// Takes raw dimensions so it serves *Sparse and *Triplets alike.
// Complexity: O(1).
// AI-Hints: Every multiply variant calls this; there is no unchecked path.
func ValidateMulCompatible(aCols, bRows int) error {
	if aCols != bRows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
