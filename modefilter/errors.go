package modefilter

import "errors"

var (
	// ErrHalfWindow indicates a non-positive half-window radius.
	ErrHalfWindow = errors.New("modefilter: half window must be >= 1")

	// ErrTrustedBounds indicates trusted-region extents that are
	// non-positive or exceed the grid.
	ErrTrustedBounds = errors.New("modefilter: trusted region does not fit the grid")

	// ErrLabelRange indicates a winning label that cannot be stored losslessly
	// as uint8 (negative, above 255, or not integral). Upstream labelling is
	// expected to prevent this; the whole call fails when it happens.
	ErrLabelRange = errors.New("modefilter: label outside 0..255")
)
