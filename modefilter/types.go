package modefilter

// Interior is the half-open rectangle [Row0,Row1)×[Col0,Col1) of pixels
// eligible for filtering. It starts h+1 cells inside the trusted region's
// top-left corner and stops h+1 cells before its far edges.
type Interior struct {
	Row0, Row1 int
	Col0, Col1 int
}

// InteriorOf computes the eligible interior for a half-window radius and a
// trusted region of trustedRows×trustedCols anchored at the origin.
// The result is Empty when trustedRows <= 2(h+1) or trustedCols <= 2(h+1).
func InteriorOf(halfWindow, trustedRows, trustedCols int) Interior {
	// Any such radius leaves no interior; checking first keeps h+1 from overflowing.
	if halfWindow >= trustedRows/2 || halfWindow >= trustedCols/2 {
		return Interior{}
	}
	m := halfWindow + 1

	return Interior{
		Row0: m,
		Row1: trustedRows - m,
		Col0: m,
		Col1: trustedCols - m,
	}
}

// Empty reports whether no pixel is eligible.
func (in Interior) Empty() bool {
	return in.Row1 <= in.Row0 || in.Col1 <= in.Col0
}

// Contains reports whether pixel (a,b) is eligible.
func (in Interior) Contains(a, b int) bool {
	return a >= in.Row0 && a < in.Row1 && b >= in.Col0 && b < in.Col1
}

// Size returns the number of eligible pixels.
func (in Interior) Size() int {
	if in.Empty() {
		return 0
	}

	return (in.Row1 - in.Row0) * (in.Col1 - in.Col0)
}

// WindowSide returns the edge length 2h+1 of the square neighbourhood.
func WindowSide(halfWindow int) int { return 2*halfWindow + 1 }

// WindowLen returns the number of cells (2h+1)² in the neighbourhood.
func WindowLen(halfWindow int) int {
	s := WindowSide(halfWindow)

	return s * s
}

// Stats counts how each eligible pixel was resolved during a run.
// Eligible == NoData + Empty + NoDataMode + Labelled always holds.
type Stats struct {
	Eligible   int // pixels inside the interior
	NoData     int // centre was no-data; output 0
	Empty      int // window held only shadow cells; output 0
	NoDataMode int // the winning value was no-data; output 0
	Labelled   int // output set to the (non-zero) window mode
}

func (s *Stats) add(o Stats) {
	s.Eligible += o.Eligible
	s.NoData += o.NoData
	s.Empty += o.Empty
	s.NoDataMode += o.NoDataMode
	s.Labelled += o.Labelled
}
