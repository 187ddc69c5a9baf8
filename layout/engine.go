package layout

// Input is everything a layout pass depends on.
type Input struct {
	Texts   []string
	Editing int
	// EditorShown is false when the editing tag has no caret and no text.
	// Such a tag collapses to a one unit wide phantom slot.
	EditorShown bool
	// NoCross lays out pills without the delete glyph slot.
	NoCross bool
	Content Rect
}

// Result is the output of a layout pass.
type Result struct {
	Rects []Rect
	// Height spans from the content top to the bottom of the last row.
	Height int
	// PillsWidth spans the first to the last visible pill. Phantom slots at
	// either end do not count.
	PillsWidth int
	// MaxPillWidth is the widest single pill.
	MaxPillWidth int
}

// Engine lays out pills with a Flow strategy.
type Engine struct {
	Metrics Metrics
	Shaper  TextShaper
	Flow    Flow
}

// Layout computes one rectangle per text.
func (e Engine) Layout(in Input) Result {
	res := Result{Rects: make([]Rect, len(in.Texts))}
	ph := e.Metrics.PillHeight(e.Shaper.LineHeight())
	lt := in.Content.Min()

	for i, text := range in.Texts {
		if i == in.Editing && !in.EditorShown {
			slot := Rect{X: in.Content.X, Y: lt.Y, W: 1, H: ph}
			if i > 0 {
				prev := res.Rects[i-1]
				slot.X, slot.Y = prev.Right(), prev.Y
			}
			res.Rects[i] = slot
			continue
		}

		r := Rect{X: lt.X, Y: lt.Y, W: e.Metrics.PillWidth(e.Shaper.Width(text), !in.NoCross), H: ph}
		r = e.Flow.Place(r, in.Content, e.Metrics)
		res.Rects[i] = r
		res.MaxPillWidth = maxInt(res.MaxPillWidth, r.W)
		lt = Point{X: r.Right() + e.Metrics.HSpacing, Y: r.Y}
	}

	res.Height = lt.Y - in.Content.Y + ph
	res.PillsWidth = pillsWidth(res.Rects, in)
	return res
}

func pillsWidth(rects []Rect, in Input) int {
	n := len(rects)
	if n == 0 || (n == 1 && in.Texts[0] == "") {
		return 0
	}
	first, last := 0, n-1
	if !in.EditorShown {
		if in.Editing == 0 {
			first = 1
		} else if in.Editing == n-1 {
			last = n - 2
		}
	}
	if first > last {
		return 0
	}
	return rects[last].Right() - rects[first].X
}

// Extents returns the scroll ranges of res for a viewport.
func (e Engine) Extents(res Result, viewport Size) Extents {
	return e.Flow.Extents(res, viewport)
}

// CaretRect returns the caret of the editing pill: one unit wide, one line
// tall, at cursor within text.
func (e Engine) CaretRect(pill Rect, text string, cursor int) Rect {
	o := e.Metrics.TextOrigin(pill)
	return Rect{
		X: o.X + e.Shaper.CursorToX(text, cursor),
		Y: o.Y,
		W: 1,
		H: e.Shaper.LineHeight(),
	}
}

// CursorAt maps a point inside pill to the nearest cursor position in text.
func (e Engine) CursorAt(pill Rect, text string, p Point) int {
	return e.Shaper.XToCursor(text, p.X-e.Metrics.TextOrigin(pill).X)
}

// FollowCaret returns the smallest scroll change that brings caret into the
// viewport, keeping one spacing unit of margin. view is the viewport in
// content coordinates before scrolling.
func (e Engine) FollowCaret(scroll Point, caret Rect, view Rect, ext Extents) Point {
	left := view.X + scroll.X
	if caret.Right() > left+view.W {
		scroll.X = caret.Right() - view.X - view.W + e.Metrics.HSpacing
	} else if caret.X < left {
		scroll.X = caret.X - view.X - e.Metrics.HSpacing
	}

	top := view.Y + scroll.Y
	if caret.Bottom() > top+view.H {
		scroll.Y = caret.Bottom() - view.Y - view.H + e.Metrics.VSpacing
	} else if caret.Y < top {
		scroll.Y = caret.Y - view.Y - e.Metrics.VSpacing
	}

	return Clamp(scroll, ext)
}

// Clamp limits scroll to [0, ext] on both axes.
func Clamp(scroll Point, ext Extents) Point {
	return Point{X: clampInt(scroll.X, 0, ext.X), Y: clampInt(scroll.Y, 0, ext.Y)}
}

// MinSize is the smallest useful control: one pill holding the widest
// character.
func (e Engine) MinSize() Size {
	return Size{
		W: e.Metrics.PillWidth(e.Shaper.MaxCharWidth(), true),
		H: e.Metrics.PillHeight(e.Shaper.LineHeight()),
	}
}

// SizeForChars is one pill wide enough for n average characters.
func (e Engine) SizeForChars(n int) Size {
	return Size{
		W: e.Metrics.PillWidth(e.Shaper.Width("x")*n, true),
		H: e.Metrics.PillHeight(e.Shaper.LineHeight()),
	}
}

// HeightForWidth lays out in with a content width of w and returns the
// resulting height.
func (e Engine) HeightForWidth(in Input, w int) int {
	in.Content = Rect{W: w, H: 1}
	return e.Layout(in).Height
}
