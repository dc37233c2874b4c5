// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the label grids.
// This file intentionally contains ONLY domain-facing types and the no-data
// convention. Errors and options live in dedicated files (errors.go,
// options.go) per the global conventions.
package matrix

import "math"

// NoData is the marker stored in a Dense label grid for cells that were
// never observed or classified. It is NaN, so it must be tested with
// IsNoData, never with ==.
var NoData = math.NaN()

// Shadow is the label reserved for observed but unreliable cells
// (shadow/invalid). It is distinct from NoData.
const Shadow = 0.0

// IsNoData reports whether v is the no-data marker.
// Complexity: O(1).
func IsNoData(v float64) bool { return math.IsNaN(v) }

// Matrix represents a two-dimensional mutable array of float64 labels.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the grid.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the grid.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the grid.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
