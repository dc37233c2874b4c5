// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep filters minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the grid reference is non-nil.
// A typed nil *Dense stored in the interface is rejected too.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m is nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures grids a and b are non-nil with equal dimensions.
//
// Return: nil, ErrNilMatrix or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateWithin – Ensures a rows×cols rectangle anchored at the origin fits
// inside m and is non-empty.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions (rows<=0 or cols<=0),
// ErrBadShape (rectangle exceeds the grid).
// Complexity: O(1).
func ValidateWithin(m Matrix, rows, cols int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateWithin", ErrInvalidDimensions)
	}
	if rows > m.Rows() || cols > m.Cols() {
		return validatorErrorf(
			fmt.Sprintf("ValidateWithin: %dx%d exceeds %dx%d", rows, cols, m.Rows(), m.Cols()),
			ErrBadShape,
		)
	}

	return nil
}
