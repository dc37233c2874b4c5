// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for grid tests.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/landmode/matrix"
)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustDenseFromRows builds a *Dense from literal rows or fails the test.
func MustDenseFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustLabels builds a *Labels from literal rows or fails the test.
func MustLabels(t testing.TB, rows [][]uint8) *matrix.Labels {
	t.Helper()
	l, err := matrix.NewLabelsFromRows(rows)
	require.NoError(t, err)

	return l
}
