package editor

import "github.com/iw2rmb/tagpill/layout"

// ScrollState is a host-facing snapshot of the scroll position.
type ScrollState struct {
	// X and Y are the current offsets in cells.
	X, Y int
	// MaxX and MaxY are the scroll extents; zero means no scrolling is
	// needed along that axis.
	MaxX, MaxY int
	// ContentHeight is the height of all pill rows.
	ContentHeight int
	Mode          Mode
}

func (m Model) ScrollState() ScrollState {
	ext := m.extents()
	return ScrollState{
		X:             m.scroll.X,
		Y:             m.scroll.Y,
		MaxX:          ext.X,
		MaxY:          ext.Y,
		ContentHeight: m.res.Height,
		Mode:          m.cfg.Mode,
	}
}

// TagRects returns the pill of every tag, editing tag included, in content
// coordinates. A hidden empty editing tag has a one cell wide rect.
func (m Model) TagRects() []layout.Rect {
	return append([]layout.Rect(nil), m.res.Rects...)
}

// MinSize is one pill holding the widest character.
func (m Model) MinSize() layout.Size { return m.eng.MinSize() }

// PreferredSize is room for 17 characters in ModeLine and MinSize in
// ModeArea.
func (m Model) PreferredSize() layout.Size {
	if m.cfg.Mode == ModeArea {
		return m.eng.MinSize()
	}
	return m.eng.SizeForChars(17)
}

// HeightForWidth returns the content height of the current tags laid out
// width cells wide. ModeLine always returns one pill height.
func (m Model) HeightForWidth(width int) int {
	if m.cfg.Mode != ModeArea {
		return m.eng.Metrics.PillHeight(m.eng.Shaper.LineHeight())
	}
	return m.eng.HeightForWidth(m.layoutInput(layout.Rect{}), width)
}
