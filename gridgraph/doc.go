// Package gridgraph treats a 2D grid of class labels as a graph, enabling
// region analysis of classification maps before and after smoothing.
//
// What:
//
//   - GridGraph wraps a matrix.Labels grid with a tunable Background label.
//   - Identifies connected regions of equal, non-background labels.
//   - Counts speckles: regions no larger than a given cell count.
//
// Why:
//
//   - Denoising checks: a majority filter should dissolve isolated pixels,
//     so the speckle count of its output drops against its input.
//   - Patch statistics: number and size of contiguous land-cover patches.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Speckles:            O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Background: label treated as "no region" (default 0, shadow).
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
