// SPDX-License-Identifier: MIT

// Package matrix - gonum interop.
//
// Purpose:
//   - Accept label rasters that upstream code already holds as gonum
//     matrices, and hand Dense grids back to gonum-based tooling.
//   - NaN (no-data) survives the round trip unchanged.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FromGonum copies any gonum mat.Matrix into a new Dense.
// Implementation:
//   - Stage 1: read dims; reject empty shapes.
//   - Stage 2: copy element-wise through mat.Matrix.At, enforcing the numeric policy.
//
// Errors:
//   - ErrNilMatrix for a nil source, ErrInvalidDimensions for empty shapes,
//     ErrNaNInf for infinities while the policy is on.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	if d, ok := src.(*mat.Dense); ok && d == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := src.Dims()
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = src.At(i, j)
			if m.validateInf && math.IsInf(v, 0) {
				return nil, denseErrorf("FromGonum", i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// ToGonum returns a gonum *mat.Dense holding a copy of m.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp)
}
