package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for region analysis.
type GridOptions struct {
	// Background is the label that never forms a region.
	Background uint8
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// Background=0 (shadow / unfiltered), Conn=Conn8 (the mode filter's
// square window touches diagonals too).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Background: 0,
		Conn:       Conn8,
	}
}

// Component is one connected region of cells sharing Label.
// Cells holds row-major indices (y*Width + x) in discovery order.
type Component struct {
	Label uint8
	Cells []int
}

// Size returns the number of cells in the region.
func (c Component) Size() int { return len(c.Cells) }

// GridGraph treats a label grid as a graph. It is immutable once built.
// Width and Height define dimensions; cells holds a row-major copy of the labels.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	Background      uint8
	cells           []uint8
	neighborOffsets [][2]int
}
