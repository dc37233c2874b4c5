package gridgraph

import (
	"errors"

	"github.com/katalvlaran/landmode/matrix"
)

// NewGridGraph constructs a GridGraph from a label grid.
// It copies the labels so later writes to the grid are not observed.
// Returns ErrEmptyGrid if labels is nil.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(labels *matrix.Labels, opts GridOptions) (*GridGraph, error) {
	if labels == nil {
		return nil, ErrEmptyGrid
	}
	h, w := labels.Shape()
	cells := make([]uint8, 0, w*h)
	for y := 0; y < h; y++ {
		cells = append(cells, labels.RowSlice(y)...)
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		Conn:            opts.Conn,
		Background:      opts.Background,
		cells:           cells,
		neighborOffsets: offsets,
	}, nil
}

// From2D builds a GridGraph from literal rows with the default background (0).
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
func From2D(values [][]uint8, conn Connectivity) (*GridGraph, error) {
	labels, err := matrix.NewLabelsFromRows(values)
	switch {
	case errors.Is(err, matrix.ErrInvalidDimensions):
		return nil, ErrEmptyGrid
	case errors.Is(err, matrix.ErrNonRectangular):
		return nil, ErrNonRectangular
	case err != nil:
		return nil, err
	}
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(labels, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Label returns the label at (x,y). The caller must check InBounds.
func (gg *GridGraph) Label(x, y int) uint8 {
	return gg.cells[gg.index(x, y)]
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
