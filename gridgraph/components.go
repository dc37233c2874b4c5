package gridgraph

// ConnectedComponents finds all contiguous regions of equal, non-background
// labels according to gg.Conn connectivity.
// Regions are returned in row-major order of their first cell; each region's
// cells are listed in BFS discovery order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() []Component {
	seen := make([]bool, gg.Width*gg.Height)
	var comps []Component

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			label := gg.cells[i0]
			if label == gg.Background || seen[i0] {
				continue
			}
			// BFS to collect the region
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.InBounds(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if seen[vi] || gg.cells[vi] != label {
						continue
					}
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
			comps = append(comps, Component{Label: label, Cells: queue})
		}
	}

	return comps
}

// Speckles counts regions with at most maxSize cells. A non-positive
// maxSize counts nothing.
// Time: O(W·H·d).
func (gg *GridGraph) Speckles(maxSize int) int {
	n := 0
	for _, c := range gg.ConnectedComponents() {
		if c.Size() <= maxSize {
			n++
		}
	}

	return n
}
