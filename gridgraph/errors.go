package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input grid is nil or has no cells.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)
