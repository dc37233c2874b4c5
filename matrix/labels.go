// SPDX-License-Identifier: MIT

// Package matrix - Labels: row-major uint8 class grid.
//
// Purpose:
//   - Hold filtered classification output (0..255) with the same shape and
//     row-major layout as the Dense input it was derived from.
//   - Zero value of every cell is 0 (shadow / "no label").
//
// Complexity quicksheet:
//   - NewLabels: O(r*c); At/Set: O(1); Histogram/Count/Equal: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Labels is a row-major grid of uint8 class labels.
type Labels struct {
	r, c int     // row and column counts (>0)
	data []uint8 // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Labels)(nil)

// NewLabels allocates an r×c label grid with every cell set to 0.
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewLabels(rows, cols int) (*Labels, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Labels{r: rows, c: cols, data: make([]uint8, rows*cols)}, nil
}

// NewLabelsFromRows copies a rectangular [][]uint8 into a new Labels grid.
// Errors:
//   - ErrInvalidDimensions for empty input, ErrNonRectangular for ragged rows.
func NewLabelsFromRows(rows [][]uint8) (*Labels, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	w := len(rows[0])
	for i := range rows {
		if len(rows[i]) != w {
			return nil, fmt.Errorf("Labels.FromRows: row %d: %w", i, ErrNonRectangular)
		}
	}
	l, err := NewLabels(len(rows), w)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		copy(l.data[i*w:(i+1)*w], rows[i])
	}

	return l, nil
}

// Rows returns the row count.
func (l *Labels) Rows() int { return l.r }

// Cols returns the column count.
func (l *Labels) Cols() int { return l.c }

// Shape packs Rows() and Cols() into a single call.
func (l *Labels) Shape() (rows, cols int) { return l.r, l.c }

// At returns the label at (row, col) or ErrOutOfRange.
func (l *Labels) At(row, col int) (uint8, error) {
	if row < 0 || row >= l.r || col < 0 || col >= l.c {
		return 0, fmt.Errorf("Labels.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return l.data[row*l.c+col], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (l *Labels) Set(row, col int, v uint8) error {
	if row < 0 || row >= l.r || col < 0 || col >= l.c {
		return fmt.Errorf("Labels.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	l.data[row*l.c+col] = v

	return nil
}

// RowSlice returns row i as a writable slice into the grid storage, or nil
// when i is out of range. Writers that own disjoint rows may fill the grid
// concurrently through it without synchronization.
// Complexity: O(1), no allocation.
func (l *Labels) RowSlice(i int) []uint8 {
	if i < 0 || i >= l.r {
		return nil
	}
	off := i * l.c

	return l.data[off : off+l.c : off+l.c]
}

// Clone returns an independent deep copy.
func (l *Labels) Clone() *Labels {
	cp := make([]uint8, len(l.data))
	copy(cp, l.data)

	return &Labels{r: l.r, c: l.c, data: cp}
}

// Count returns the number of cells whose label satisfies keep.
// Complexity: O(r*c).
func (l *Labels) Count(keep func(v uint8) bool) int {
	n := 0
	for _, v := range l.data {
		if keep(v) {
			n++
		}
	}

	return n
}

// Histogram maps every label present in the grid to its cell count.
// Complexity: O(r*c) time, O(k) space for k distinct labels.
func (l *Labels) Histogram() map[uint8]int {
	h := make(map[uint8]int)
	for _, v := range l.data {
		h[v]++
	}

	return h
}

// Equal reports whether o has the same shape and cell values.
func (l *Labels) Equal(o *Labels) bool {
	if l == nil || o == nil {
		return l == o
	}
	if l.r != o.r || l.c != o.c {
		return false
	}
	for i := range l.data {
		if l.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// ToRows copies the grid out as [][]uint8 (one fresh slice per row).
func (l *Labels) ToRows() [][]uint8 {
	out := make([][]uint8, l.r)
	for i := 0; i < l.r; i++ {
		out[i] = make([]uint8, l.c)
		copy(out[i], l.data[i*l.c:(i+1)*l.c])
	}

	return out
}

// String renders one bracketed line per row, matching Dense.String.
func (l *Labels) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < l.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < l.c; j++ {
			b.WriteString(strconv.Itoa(int(l.data[i*l.c+j])))
			if j+1 < l.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
