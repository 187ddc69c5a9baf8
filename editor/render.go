package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/tagpill/internal/grapheme"
	"github.com/iw2rmb/tagpill/layout"
)

const (
	crossGlyph    = "×"
	leftCapGlyph  = "◖"
	rightCapGlyph = "◗"
)

func (m *Model) rebuildContent() {
	rows := m.renderRows()
	for i, row := range rows {
		rows[i] = ansi.Cut(row, m.scroll.X, m.scroll.X+m.width)
	}
	m.viewport.SetContent(strings.Join(rows, "\n"))
	m.viewport.SetYOffset(m.scroll.Y)
}

type rowSpan struct {
	x    int
	w    int
	text string
}

// renderRows draws every pill into content rows. Pills of one row never
// overlap and come in increasing x, so each row is built left to right.
func (m *Model) renderRows() []string {
	height := max(m.res.Height, 0)
	spans := make([][]rowSpan, height)
	editing := m.col.EditingIndex()
	for i, r := range m.res.Rects {
		if i == editing && !m.editorShown() {
			continue
		}
		for dy, line := range m.renderPill(i, r) {
			y := r.Y + dy
			if y < 0 || y >= height {
				continue
			}
			spans[y] = append(spans[y], rowSpan{x: r.X, w: r.W, text: line})
		}
	}

	rows := make([]string, height)
	for y, row := range spans {
		var sb strings.Builder
		col := 0
		for _, s := range row {
			if s.x > col {
				sb.WriteString(strings.Repeat(" ", s.x-col))
				col = s.x
			}
			sb.WriteString(s.text)
			col += s.w
		}
		rows[y] = sb.String()
	}
	return rows
}

// renderPill returns the lines of pill i, each r.W cells wide.
//
// The text line is, left to right: left padding (cap when rounded), text,
// cross spacing, cross glyph, right padding (cap when rounded). The caret at
// the end of the text sits on the first cell after it.
func (m *Model) renderPill(i int, r layout.Rect) []string {
	sc := m.cfg.Style
	mt := sc.Metrics
	text := m.col.At(i).Text
	active := i == m.col.EditingIndex() && m.focused

	fill := lipgloss.NewStyle().Background(sc.Color)
	textStyle := sc.Style.Text.Inherit(fill)
	if active {
		textStyle = sc.Style.Editing.Inherit(fill)
	}
	blank := fill.Render(strings.Repeat(" ", r.W))

	var sb strings.Builder
	if sc.Rounded && mt.PadLeft > 0 {
		sb.WriteString(lipgloss.NewStyle().Foreground(sc.Color).Render(leftCapGlyph))
		sb.WriteString(fill.Render(strings.Repeat(" ", mt.PadLeft-1)))
	} else {
		sb.WriteString(fill.Render(strings.Repeat(" ", mt.PadLeft)))
	}

	tail := mt.PadRight
	if !m.noCross() {
		tail += mt.CrossSpacing + mt.CrossSize
	}
	if active {
		sb.WriteString(m.renderEditingText(text, textStyle))
		if m.col.Cursor() == grapheme.Count(text) && tail > 0 {
			sb.WriteString(m.renderCaret(" ", fill))
			tail--
		}
	} else {
		sb.WriteString(textStyle.Render(text))
	}

	sb.WriteString(m.renderTail(tail, active, fill))

	lines := make([]string, r.H)
	for dy := range lines {
		lines[dy] = blank
	}
	if y := mt.PadTop; y >= 0 && y < r.H {
		lines[y] = sb.String()
	}
	return lines
}

// renderTail draws the last n cells of the text line. Cells that belong to
// the cross slot show the glyph, the rest are fill; the outermost cell is
// the right cap when rounded.
func (m *Model) renderTail(n int, active bool, fill lipgloss.Style) string {
	sc := m.cfg.Style
	mt := sc.Metrics
	if n <= 0 {
		return ""
	}
	cells := make([]string, n)
	for k := range cells {
		cells[k] = " "
	}
	// Positions are counted from the right edge.
	if !m.noCross() && !active {
		for k := 0; k < mt.CrossSize; k++ {
			if j := n - 1 - mt.PadRight - k; j >= 0 {
				cells[j] = crossGlyph
			}
		}
	}

	var sb strings.Builder
	cross := sc.Style.Cross.Inherit(fill)
	for k, cell := range cells {
		switch {
		case k == n-1 && sc.Rounded && mt.PadRight > 0:
			sb.WriteString(lipgloss.NewStyle().Foreground(sc.Color).Render(rightCapGlyph))
		case cell == crossGlyph:
			sb.WriteString(cross.Render(cell))
		default:
			sb.WriteString(fill.Render(cell))
		}
	}
	return sb.String()
}

// renderEditingText draws the editing text with the selection and the caret
// inside it.
func (m *Model) renderEditingText(text string, base lipgloss.Style) string {
	sel := m.col.Selection()
	cur := m.col.Cursor()
	selStyle := m.cfg.Style.Style.Selection

	var sb strings.Builder
	for i, g := range grapheme.Split(text) {
		st := base
		if !sel.IsEmpty() && i >= sel.Start && i < sel.End() {
			st = selStyle
		}
		if i == cur {
			sb.WriteString(m.renderCaret(g, st))
			continue
		}
		sb.WriteString(st.Render(g))
	}
	return sb.String()
}

func (m *Model) renderCaret(char string, hidden lipgloss.Style) string {
	c := m.caret
	c.SetChar(char)
	c.TextStyle = hidden
	return c.View()
}
