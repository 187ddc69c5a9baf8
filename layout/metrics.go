package layout

// Metrics is the geometry half of the pill style.
type Metrics struct {
	// Padding between the text and the pill border.
	PadTop, PadRight, PadBottom, PadLeft int

	// HSpacing separates neighbouring pills in a row.
	HSpacing int
	// VSpacing separates rows of pills (wrapping layouts only).
	VSpacing int

	// CrossSize is the side of the square delete glyph.
	CrossSize int
	// CrossSpacing separates the text from the delete glyph.
	CrossSpacing int
}

// CellMetrics returns metrics for terminal cell layouts.
func CellMetrics() Metrics {
	return Metrics{
		PadLeft:      1,
		PadRight:     1,
		HSpacing:     1,
		CrossSize:    1,
		CrossSpacing: 1,
	}
}

// PixelMetrics returns metrics for pixel layouts.
func PixelMetrics() Metrics {
	return Metrics{
		PadTop:       7,
		PadRight:     8,
		PadBottom:    7,
		PadLeft:      7,
		HSpacing:     7,
		VSpacing:     2,
		CrossSize:    8,
		CrossSpacing: 3,
	}
}

// PillWidth returns the width of a pill whose text is textWidth wide.
func (m Metrics) PillWidth(textWidth int, hasCross bool) int {
	w := m.PadLeft + textWidth + m.PadRight
	if hasCross {
		w += m.CrossSpacing + m.CrossSize
	}
	return w
}

// PillHeight returns the height of a pill whose text is textHeight tall.
func (m Metrics) PillHeight(textHeight int) int {
	return m.PadTop + textHeight + m.PadBottom
}

// TextOrigin returns the top-left corner of the text inside pill.
func (m Metrics) TextOrigin(pill Rect) Point {
	return Point{X: pill.X + m.PadLeft, Y: pill.Y + m.PadTop}
}

// CrossRect returns the delete glyph square of pill. It sits in the slot
// reserved by PillWidth, vertically centred.
func (m Metrics) CrossRect(pill Rect) Rect {
	return Rect{
		X: pill.Right() - m.PadRight - m.CrossSize,
		Y: pill.Y + (pill.H-m.CrossSize)/2,
		W: m.CrossSize,
		H: m.CrossSize,
	}
}

// CrossHitRect is CrossRect grown by one unit on each side.
func (m Metrics) CrossHitRect(pill Rect) Rect {
	return m.CrossRect(pill).Grow(1)
}
