// Package matrix_test contains unit tests for the Dense label grid.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/landmode/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // attempt to create with negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsColsShape verifies that Rows(), Cols() and Shape() agree.
func TestRowsColsShape(t *testing.T) {
	m := MustDense(t, 3, 4)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)                         // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1)                          // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange
	require.Contains(t, err.Error(), "Dense.Set(2,0)")
}

// TestSetNoDataAndInfPolicy: NaN is always storable; ±Inf only when the policy is relaxed.
func TestSetNoDataAndInfPolicy(t *testing.T) {
	m := MustDense(t, 2, 2)

	require.NoError(t, m.Set(0, 0, matrix.NoData))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.True(t, matrix.IsNoData(v))

	require.ErrorIs(t, m.Set(1, 1, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(1, 1, math.Inf(-1)), matrix.ErrNaNInf)

	relaxed, err := matrix.NewDense(2, 2, matrix.WithNoValidateInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(1, 1, math.Inf(1)))
}

// TestNewNoData fills every cell with the no-data marker.
func TestNewNoData(t *testing.T) {
	m, err := matrix.NewNoData(3, 2)
	require.NoError(t, err)
	m.Do(func(i, j int, v float64) bool {
		require.True(t, matrix.IsNoData(v), "(%d,%d)", i, j)
		return true
	})
	require.True(t, m.HasNoData())
}

// TestNewDenseFromRows copies input rows and rejects empty or ragged input.
func TestNewDenseFromRows(t *testing.T) {
	src := [][]float64{{1, 2, 3}, {4, math.NaN(), 6}}
	m, err := matrix.NewDenseFromRows(src)
	require.NoError(t, err)
	require.Equal(t, "[1, 2, 3]\n[4, NaN, 6]\n", m.String())

	src[0][0] = 99 // caller keeps ownership of its slices
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrNonRectangular)
	_, err = matrix.NewDenseFromRows([][]float64{{1, math.Inf(1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestRowReturnsCopy ensures Row() does not alias storage.
func TestRowReturnsCopy(t *testing.T) {
	m := MustDenseFromRows(t, [][]float64{{1, 2}, {3, 4}})
	r, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, r)
	r[0] = 42
	v, _ := m.At(1, 0)
	require.Equal(t, 3.0, v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, m.Set(0, 0, 1))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3))

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestHasNoData reports NaN presence only.
func TestHasNoData(t *testing.T) {
	m := MustDenseFromRows(t, [][]float64{{0, 1}, {2, 3}})
	require.False(t, m.HasNoData())
	require.NoError(t, m.Set(1, 0, matrix.NoData))
	require.True(t, m.HasNoData())
}

// TestViewWindow checks bounds, shared storage and row slices of a View.
func TestViewWindow(t *testing.T) {
	m := MustDenseFromRows(t, [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	})

	v, err := m.View(1, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, v.Rows())
	require.Equal(t, 2, v.Cols())

	x, err := v.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 11.0, x)

	_, err = v.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.Equal(t, []float64{6, 7}, v.RowSlice(0))
	require.Equal(t, []float64{10, 11}, v.RowSlice(1))
	require.Nil(t, v.RowSlice(2))
	require.Nil(t, v.RowSlice(-1))
	require.Equal(t, 2, cap(v.RowSlice(0)), "row slice must not reach past the window")

	// Writes to the base are visible through the view.
	require.NoError(t, m.Set(1, 2, 70))
	require.Equal(t, 70.0, v.RowSlice(0)[1])

	_, err = m.View(2, 0, 2, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = m.View(0, -1, 1, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	empty, err := m.View(3, 4, 0, 0)
	require.NoError(t, err, "zero-area window at the far corner is legal")
	require.Equal(t, 0, empty.Rows())
}

// TestDoEarlyStop verifies row-major visiting and early termination.
func TestDoEarlyStop(t *testing.T) {
	m := MustDenseFromRows(t, [][]float64{{1, 2}, {3, 4}})
	var seen []float64
	m.Do(func(i, j int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)
}

// TestStringOutput checks that String() formats the grid as expected.
func TestStringOutput(t *testing.T) {
	m := MustDenseFromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
