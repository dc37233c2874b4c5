package modefilter

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/landmode/matrix"
)

// Filter applies the windowed majority filter to grid and returns a label
// grid of the same shape.
//
// Algorithm Outline:
//  1. Validate: grid non-nil, halfWindow >= 1, 0 < trustedRows <= R and
//     0 < trustedCols <= C. Violations fail before any work.
//  2. Allocate an all-zero R×C output.
//  3. For every pixel (a,b) of the eligible interior
//     [h+1, trustedRows-h-1) × [h+1, trustedCols-h-1):
//     - centre is no-data            → 0
//     - gather the (2h+1)² window, row-major, no-data members kept
//     - drop shadow (0) members
//     - nothing left                 → 0
//     - mode is no-data              → 0
//     - otherwise                    → mode as uint8
//  4. All other pixels stay 0.
//
// The input is never written. Reads are confined to the trusted rectangle.
//
// Errors:
//   - matrix.ErrNilMatrix: grid is nil.
//   - ErrHalfWindow: halfWindow < 1.
//   - ErrTrustedBounds: trusted extents non-positive or larger than grid.
//   - ErrLabelRange: a winning label does not fit uint8; no output is returned.
func Filter(grid matrix.Matrix, halfWindow, trustedRows, trustedCols int, opts ...Option) (*matrix.Labels, error) {
	out, _, err := Run(grid, halfWindow, trustedRows, trustedCols, opts...)

	return out, err
}

// Run is Filter that also reports how the eligible pixels were resolved.
func Run(grid matrix.Matrix, halfWindow, trustedRows, trustedCols int, opts ...Option) (*matrix.Labels, Stats, error) {
	if err := matrix.ValidateNotNil(grid); err != nil {
		return nil, Stats{}, fmt.Errorf("modefilter: %w", err)
	}
	if halfWindow < 1 {
		return nil, Stats{}, fmt.Errorf("%w: got %d", ErrHalfWindow, halfWindow)
	}
	if err := matrix.ValidateWithin(grid, trustedRows, trustedCols); err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %w", ErrTrustedBounds, err)
	}
	o := gatherOptions(opts...)

	src, err := asDense(grid, trustedRows, trustedCols)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("modefilter: %w", err)
	}
	out, err := matrix.NewLabels(grid.Rows(), grid.Cols())
	if err != nil {
		return nil, Stats{}, fmt.Errorf("modefilter: %w", err)
	}
	in := InteriorOf(halfWindow, trustedRows, trustedCols)

	log := o.logger.With(
		zap.Int("rows", grid.Rows()),
		zap.Int("cols", grid.Cols()),
		zap.Int("half_window", halfWindow),
		zap.Int("trusted_rows", trustedRows),
		zap.Int("trusted_cols", trustedCols),
	)
	if in.Empty() {
		log.Debug("mode filter skipped: empty interior")
		return out, Stats{}, nil
	}
	log.Debug("mode filter start", zap.Int("eligible", in.Size()), zap.Int("workers", o.workers))
	start := time.Now()

	// The view is the only read path: nothing past the trusted edges is reachable.
	view, err := src.View(0, 0, trustedRows, trustedCols)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("modefilter: %w", err)
	}

	bands := splitRows(in.Row0, in.Row1, o.workers)
	perBand := make([]Stats, len(bands))
	var g errgroup.Group
	g.SetLimit(o.workers)
	for i, bd := range bands {
		g.Go(func() error {
			return filterBand(view, out, in, halfWindow, bd, &perBand[i])
		})
	}
	if err := g.Wait(); err != nil {
		log.Debug("mode filter failed", zap.Error(err))
		return nil, Stats{}, err
	}

	var st Stats
	for _, s := range perBand {
		st.add(s)
	}
	log.Debug("mode filter done",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("eligible", st.Eligible),
		zap.Int("labelled", st.Labelled),
		zap.Int("nodata", st.NoData),
		zap.Int("empty", st.Empty),
		zap.Int("nodata_mode", st.NoDataMode),
	)

	return out, st, nil
}

// band is a half-open row range [lo, hi) owned by exactly one worker.
type band struct{ lo, hi int }

// splitRows cuts [lo, hi) into at most n contiguous, non-empty bands.
func splitRows(lo, hi, n int) []band {
	rows := hi - lo
	if n > rows {
		n = rows
	}
	if n < 1 {
		n = 1
	}
	out := make([]band, 0, n)
	step, extra := rows/n, rows%n
	for i := 0; i < n; i++ {
		size := step
		if i < extra {
			size++
		}
		out = append(out, band{lo: lo, hi: lo + size})
		lo += size
	}

	return out
}

// filterBand resolves every interior pixel of rows [bd.lo, bd.hi). It writes
// only those output rows and only its own Stats, so bands never share
// mutable state.
func filterBand(view *matrix.MatrixView, out *matrix.Labels, in Interior, h int, bd band, st *Stats) error {
	window := make([]float64, 0, WindowLen(h))
	var t tally
	t.reset()

	for a := bd.lo; a < bd.hi; a++ {
		dst := out.RowSlice(a)
		centre := view.RowSlice(a)
		for b := in.Col0; b < in.Col1; b++ {
			st.Eligible++
			if matrix.IsNoData(centre[b]) {
				st.NoData++
				continue
			}

			window = window[:0]
			for d := -h; d <= h; d++ {
				window = append(window, view.RowSlice(a + d)[b-h:b+h+1]...)
			}

			mode, ok := t.mode(dropShadow(window))
			switch {
			case !ok:
				st.Empty++
			case matrix.IsNoData(mode):
				st.NoDataMode++
			default:
				lbl, fits := toLabel(mode)
				if !fits {
					return fmt.Errorf("modefilter: pixel (%d,%d): mode %g: %w", a, b, mode, ErrLabelRange)
				}
				dst[b] = lbl
				st.Labelled++
			}
		}
	}

	return nil
}

// asDense returns grid itself when it is a *matrix.Dense. Otherwise it
// copies only the top-left rows×cols trusted rectangle through the Matrix
// interface, so cells past the trusted edges are never read.
func asDense(grid matrix.Matrix, rows, cols int) (*matrix.Dense, error) {
	if d, ok := grid.(*matrix.Dense); ok {
		return d, nil
	}
	d, err := matrix.NewDense(rows, cols, matrix.WithNoValidateInf())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = grid.At(i, j); err != nil {
				return nil, err
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
