// Package landcover names the class codes produced by the upstream
// WorldView-2 decision-tree classifier and the smoothing settings it
// accepts.
//
// 🚀 What is it?
//
//	Class is a uint8 label as stored in a matrix.Labels grid. Codes are
//	grouped by decade: 1x built surfaces, 2x bare ground, 3x vegetation,
//	5x water and benthic cover. 0 is shadow or unfiltered.
//
//	FilterSetting is the classifier's 0/1/3/5 knob selecting no smoothing
//	or a 3×3, 7×7 or 11×11 majority window. HalfWindow feeds straight into
//	modefilter.Filter.
//
// ✨ Usage:
//
//	fs, err := landcover.ParseFilterSetting(3)
//	if err != nil { ... }
//	if fs.Enabled() {
//	    out, err := modefilter.Filter(grid, fs.HalfWindow(), rows, cols)
//	    ...
//	}
package landcover
