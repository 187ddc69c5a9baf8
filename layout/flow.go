package layout

// Extents is the maximum scroll offset along each axis.
type Extents struct {
	X, Y int
}

// Flow is the placement strategy that distinguishes a single-row control
// from a wrapping one.
type Flow interface {
	// Place positions a candidate pill whose top-left is the running origin.
	Place(candidate Rect, content Rect, m Metrics) Rect
	// Extents derives scroll ranges from a finished layout.
	Extents(res Result, viewport Size) Extents
	// Slot returns the index at which a new tag is inserted for a press at p
	// in empty space. rects are in the same coordinates as p.
	Slot(rects []Rect, p Point) int
}

// LineFlow keeps every pill on one row and scrolls horizontally.
type LineFlow struct{}

func (LineFlow) Place(candidate Rect, _ Rect, _ Metrics) Rect { return candidate }

func (LineFlow) Extents(res Result, viewport Size) Extents {
	return Extents{X: maxInt(res.PillsWidth-viewport.W, 0)}
}

func (LineFlow) Slot(rects []Rect, p Point) int {
	for i, r := range rects {
		if p.X <= r.X {
			return i
		}
	}
	return len(rects)
}

// WrapFlow breaks rows at the content's right edge and scrolls vertically.
type WrapFlow struct{}

// Place wraps candidate onto a new row when it overflows the content's right
// edge, unless it already starts the row: an over-wide pill stays alone on
// its row and is clipped.
func (WrapFlow) Place(candidate Rect, content Rect, m Metrics) Rect {
	if candidate.Right() > content.Right() && candidate.X != content.X {
		return candidate.MoveTo(Point{X: content.X, Y: candidate.Bottom() + m.VSpacing})
	}
	return candidate
}

func (WrapFlow) Extents(res Result, viewport Size) Extents {
	return Extents{
		X: maxInt(res.MaxPillWidth-viewport.W, 0),
		Y: maxInt(res.Height-viewport.H, 0),
	}
}

// Slot picks the first row whose bottom is at or below p, then the first
// pill of that row whose left edge is right of p.
func (WrapFlow) Slot(rects []Rect, p Point) int {
	for i := 0; i < len(rects); i++ {
		if rects[i].Bottom() <= p.Y {
			continue
		}
		row := rects[i].Y
		for i < len(rects) && rects[i].Y == row && p.X > rects[i].X {
			i++
		}
		return i
	}
	return len(rects)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
