package modefilter

import (
	"math"

	"github.com/katalvlaran/landmode/matrix"
)

// Mode returns the most frequent value in values.
//
// Ties between numbers go to the smallest one. No-data (NaN) occurrences
// are pooled into a single bucket that ranks after every number, so NaN wins
// only with a strictly higher count than every number: a tie between
// no-data and a label goes to the label. ok is false when values is empty.
//
// Complexity: O(n) time, O(k) space for k distinct values.
func Mode(values []float64) (mode float64, ok bool) {
	var t tally
	t.reset()

	return t.mode(values)
}

// tally is a reusable frequency table. One tally belongs to one worker.
type tally struct {
	counts map[float64]int
}

func (t *tally) reset() {
	if t.counts == nil {
		t.counts = make(map[float64]int)
		return
	}
	clear(t.counts)
}

// mode counts values, then makes a single selection pass ordered by
// (count desc, value asc). Map iteration order does not affect the result
// because the selection key is a total order over distinct keys.
func (t *tally) mode(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	t.reset()

	nan := 0
	for _, v := range values {
		if math.IsNaN(v) {
			nan++ // NaN != NaN, so it cannot be a map key
			continue
		}
		t.counts[v]++
	}

	best, bestCount := 0.0, 0
	for v, n := range t.counts {
		if n > bestCount || (n == bestCount && v < best) {
			best, bestCount = v, n
		}
	}
	if nan > bestCount {
		return matrix.NoData, true
	}

	return best, true
}

// dropShadow removes every shadow (0) cell from window in place and returns
// the shortened slice. Order of the survivors is preserved.
func dropShadow(window []float64) []float64 {
	kept := window[:0]
	for _, v := range window {
		if v == matrix.Shadow {
			continue
		}
		kept = append(kept, v)
	}

	return kept
}

// toLabel narrows a winning value to uint8, refusing anything that does not
// fit losslessly.
func toLabel(v float64) (uint8, bool) {
	if v < 0 || v > math.MaxUint8 || v != math.Trunc(v) {
		return 0, false
	}

	return uint8(v), true
}
