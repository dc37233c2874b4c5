// Package landmode smooths land-cover classification maps with a windowed
// majority (mode) filter, and provides the grid types and region tools
// around it.
//
// 🚀 What is landmode?
//
//	A small, pure-Go toolkit for post-processing per-pixel class maps:
//		• Grids: float label grids with NaN no-data, uint8 output labels
//		• Mode filter: square-window majority vote over a trusted region
//		• Regions: connected patches and speckle counts over label grids
//		• Catalogue: class codes and the 0/1/3/5 smoothing settings
//
// ✨ Why choose landmode?
//
//   - Deterministic – ties resolve to the smallest label, any worker count
//   - Atomic – a bad winning label fails the whole call, no partial output
//   - Parallel – row bands run on a bounded errgroup pool
//   - Observable – optional zap logger and per-outcome pixel counts
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/     Dense label grids, read-only views, Labels output, gonum adapters
//	modefilter/ Filter/Run, Mode, Interior geometry, Stats, options
//	gridgraph/  connected regions and speckles over Labels
//	landcover/  Class codes, FilterSetting, Tally
//
// Quick ASCII example (half window 1, trusted 5×5, centre pixel only):
//
//	31 31 31 31 31        0  0  0  0  0
//	31 31 31 31 31        0  0  0  0  0
//	31 31 54 31 31   →    0  0 31  0  0
//	31 31 31 31 31        0  0  0  0  0
//	31 31 31 31 31        0  0  0  0  0
//
//	go get github.com/katalvlaran/landmode
package landmode
