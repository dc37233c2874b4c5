// Package matrix provides the in-memory grids the mode filter reads and writes.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 label grid in which NaN marks no-data and
//     0 marks shadow, with bounds-checked accessors and read-only windows
//     (View) for confining consumers to a sub-rectangle.
//   - Labels: a row-major uint8 grid holding filtered class labels.
//   - FromGonum / ToGonum adapters for callers that hold rasters as gonum
//     matrices.
//   - Validators shared by the filter for nil and shape checks.
//
// All public accessors return sentinel errors (see errors.go) instead of
// panicking; match them with errors.Is.
package matrix
