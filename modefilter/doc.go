// Package modefilter removes salt-and-pepper noise from classified label
// grids with a windowed majority (mode) filter.
//
// 🚀 What does it do?
//
//	Every eligible pixel receives the most common label of its
//	(2h+1)×(2h+1) neighbourhood. Shadow cells (label 0) are dropped from
//	the neighbourhood before counting, ties go to the smallest label, and
//	pixels whose centre is no-data (NaN) are left at 0.
//
// ✨ Key features:
//   - trusted region: only the top-left trustedRows×trustedCols rectangle is
//     ever read, so warp artifacts beyond it never leak into the output
//   - eligible interior: pixels at least h+1 away from the trusted edges;
//     everything else stays 0
//   - deterministic: identical output for any worker count
//   - bounded worker pool over row bands (WithWorkers)
//   - structured debug logging through zap (WithLogger)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/landmode/modefilter"
//
//	out, err := modefilter.Filter(grid, 1, trustedRows, trustedCols)
//	if err != nil {
//	  // ErrHalfWindow, ErrTrustedBounds or ErrLabelRange
//	}
//
// Complexity:
//
//	Time   = O(R·C) allocation + O(I·(2h+1)²) for I interior pixels
//	Memory = O(R·C) output + O((2h+1)²) per worker
package modefilter
