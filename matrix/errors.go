// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and accessors MUST return these sentinels and tests
// MUST check them via errors.Is. No accessor should panic on user-triggered
// error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Sentinels are wrapped once at the detection site
// with fmt.Errorf("Ctx(...): %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> numeric policy.

var (
	// ErrInvalidDimensions indicates that requested grid dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNonRectangular indicates that row slices passed to a constructor differ in length.
	ErrNonRectangular = errors.New("matrix: all rows must have the same length")

	// ErrBadShape is returned when a requested window does not fit the grid.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a ±Inf value was written where the numeric policy
	// requires finite labels or the no-data marker (NaN).
	ErrNaNInf = errors.New("matrix: Inf encountered")

	// ErrNilMatrix indicates that a nil grid (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
