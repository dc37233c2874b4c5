package modefilter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDropShadowKeepsOrder(t *testing.T) {
	nan := math.NaN()
	got := dropShadow([]float64{0, 4, 0, nan, 6, 0, 4})
	require.Len(t, got, 4)
	require.Equal(t, 4.0, got[0])
	require.True(t, math.IsNaN(got[1]))
	require.Equal(t, []float64{6, 4}, got[2:])

	require.Empty(t, dropShadow([]float64{0, 0, 0}))
	require.Len(t, dropShadow([]float64{math.Copysign(0, -1), 1}), 1, "negative zero is shadow too")
}

func TestToLabel(t *testing.T) {
	for _, v := range []float64{0, 1, 51, 255} {
		l, ok := toLabel(v)
		require.True(t, ok, "%g", v)
		require.Equal(t, uint8(v), l)
	}
	for _, v := range []float64{-1, 256, 1.5, math.Inf(1)} {
		_, ok := toLabel(v)
		require.False(t, ok, "%g", v)
	}
}

func TestSplitRows(t *testing.T) {
	require.Equal(t, []band{{2, 5}, {5, 8}}, splitRows(2, 8, 2))
	require.Equal(t, []band{{0, 3}, {3, 5}, {5, 7}}, splitRows(0, 7, 3))
	require.Equal(t, []band{{4, 5}, {5, 6}}, splitRows(4, 6, 16), "never more bands than rows")
	require.Equal(t, []band{{1, 9}}, splitRows(1, 9, 1))

	// Bands tile the range exactly once.
	bands := splitRows(3, 103, 7)
	next := 3
	for _, b := range bands {
		require.Equal(t, next, b.lo)
		require.Greater(t, b.hi, b.lo)
		next = b.hi
	}
	require.Equal(t, 103, next)
}

func TestTallyReuse(t *testing.T) {
	var tl tally
	m, ok := tl.mode([]float64{9, 9, 1})
	require.True(t, ok)
	require.Equal(t, 9.0, m)

	// Counts from the previous window must not leak into the next one.
	m, ok = tl.mode([]float64{1, 2, 2})
	require.True(t, ok)
	require.Equal(t, 2.0, m)
}
