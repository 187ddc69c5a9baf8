package editor

import "github.com/iw2rmb/tagpill/layout"

type hitKind int

const (
	hitNone hitKind = iota
	hitPill
	hitCross
)

// hitTest finds the pill under p, in content coordinates. A hidden editing
// tag is skipped because its phantom slot overlaps the next pill. The delete
// glyph of the editing tag does not react while the caret is shown.
func (m Model) hitTest(p layout.Point) (int, hitKind) {
	editing := m.col.EditingIndex()
	for i, r := range m.res.Rects {
		if i == editing && !m.editorShown() {
			continue
		}
		if !r.Contains(p) {
			continue
		}
		if !m.noCross() && (i != editing || !m.focused) && m.eng.Metrics.CrossHitRect(r).Contains(p) {
			return i, hitCross
		}
		return i, hitPill
	}
	return -1, hitNone
}

// screenToContent maps viewport-local cells to content coordinates.
func (m Model) screenToContent(x, y int) layout.Point {
	return layout.Point{X: x + m.scroll.X, Y: y + m.scroll.Y}
}

// contentToScreen maps content coordinates to viewport-local cells. ok is
// false outside the viewport.
func (m Model) contentToScreen(p layout.Point) (x, y int, ok bool) {
	x, y = p.X-m.scroll.X, p.Y-m.scroll.Y
	return x, y, x >= 0 && y >= 0 && x < m.width && y < m.height
}
