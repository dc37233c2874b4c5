// SPDX-License-Identifier: MIT

package landcover

import (
	"errors"
	"fmt"
)

// ErrFilterSetting indicates a smoothing setting other than 0, 1, 3 or 5.
var ErrFilterSetting = errors.New("landcover: unsupported filter setting")

// FilterSetting selects the majority-filter window applied to a class map.
// The value equals the half window: the window side is 2*value+1.
type FilterSetting int

const (
	FilterNone  FilterSetting = 0 // no smoothing
	Filter3x3   FilterSetting = 1
	Filter7x7   FilterSetting = 3
	Filter11x11 FilterSetting = 5
)

// ParseFilterSetting validates a raw setting.
func ParseFilterSetting(v int) (FilterSetting, error) {
	switch fs := FilterSetting(v); fs {
	case FilterNone, Filter3x3, Filter7x7, Filter11x11:
		return fs, nil
	default:
		return FilterNone, fmt.Errorf("ParseFilterSetting(%d): %w", v, ErrFilterSetting)
	}
}

// Enabled reports whether any smoothing is requested.
func (fs FilterSetting) Enabled() bool { return fs > FilterNone }

// HalfWindow returns the window half-width passed to the mode filter.
func (fs FilterSetting) HalfWindow() int { return int(fs) }

// WindowSide returns the window edge length, or 0 when disabled.
func (fs FilterSetting) WindowSide() int {
	if !fs.Enabled() {
		return 0
	}

	return 2*int(fs) + 1
}

// String renders the setting as "none" or "NxN".
func (fs FilterSetting) String() string {
	if !fs.Enabled() {
		return "none"
	}
	s := fs.WindowSide()

	return fmt.Sprintf("%dx%d", s, s)
}
