package modefilter_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/landmode/matrix"
)

var nan = math.NaN()

// hide wraps any Matrix to hide its concrete type, forcing the non-*Dense path.
type hide struct{ matrix.Matrix }

// mustGrid builds a Dense from literal rows or fails the test.
func mustGrid(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	g, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return g
}

// filled returns an r×c grid with every cell set to v.
func filled(t testing.TB, r, c int, v float64) *matrix.Dense {
	t.Helper()
	g, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, g.Set(i, j, v))
		}
	}

	return g
}

// withWindow returns a 5×5 grid of background labels whose centred 3×3
// block (rows/cols 1..3) holds window in row-major order. With halfWindow 1
// and trusted bounds 5×5 the only eligible pixel is (2,2).
func withWindow(t testing.TB, background float64, window [9]float64) *matrix.Dense {
	t.Helper()
	g := filled(t, 5, 5, background)
	for k, v := range window {
		require.NoError(t, g.Set(1+k/3, 1+k%3, v))
	}

	return g
}

// randomGrid draws labels from palette; each cell is no-data with
// probability pNaN.
func randomGrid(t testing.TB, rng *rand.Rand, r, c int, palette []float64, pNaN float64) *matrix.Dense {
	t.Helper()
	g, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := palette[rng.Intn(len(palette))]
			if rng.Float64() < pNaN {
				v = nan
			}
			require.NoError(t, g.Set(i, j, v))
		}
	}

	return g
}

// rows copies a Dense out as [][]float64.
func rows(t testing.TB, g *matrix.Dense) [][]float64 {
	t.Helper()
	out := make([][]float64, g.Rows())
	for i := range out {
		r, err := g.Row(i)
		require.NoError(t, err)
		out[i] = r
	}

	return out
}

// referenceFilter is a deliberately naive rendition used as an oracle: it
// sorts each window (NaN last, as a sort-based unique would) and takes the
// first value of the longest run.
func referenceFilter(t testing.TB, g *matrix.Dense, h, tr, tc int) [][]uint8 {
	t.Helper()
	out := make([][]uint8, g.Rows())
	for i := range out {
		out[i] = make([]uint8, g.Cols())
	}
	at := func(i, j int) float64 {
		v, err := g.At(i, j)
		require.NoError(t, err)
		return v
	}
	for a := h + 1; a < tr-(h+1); a++ {
		for b := h + 1; b < tc-(h+1); b++ {
			if math.IsNaN(at(a, b)) {
				continue
			}
			var c []float64
			for d := -h; d <= h; d++ {
				for e := -h; e <= h; e++ {
					if v := at(a+d, b+e); v != 0 {
						c = append(c, v)
					}
				}
			}
			if len(c) == 0 {
				continue
			}
			sort.Slice(c, func(x, y int) bool {
				if math.IsNaN(c[x]) {
					return false
				}
				if math.IsNaN(c[y]) {
					return true
				}
				return c[x] < c[y]
			})
			same := func(x, y float64) bool { return x == y || (math.IsNaN(x) && math.IsNaN(y)) }
			best, bestN := c[0], 0
			for k := 0; k < len(c); {
				n := 1
				for k+n < len(c) && same(c[k+n], c[k]) {
					n++
				}
				if n > bestN {
					best, bestN = c[k], n
				}
				k += n
			}
			if !math.IsNaN(best) {
				out[a][b] = uint8(best)
			}
		}
	}

	return out
}
