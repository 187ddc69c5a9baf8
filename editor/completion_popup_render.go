package editor

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/tagpill/internal/grapheme"
	"github.com/iw2rmb/tagpill/layout"
)

type completionPopupRender struct {
	View string
	X, Y int
}

// completionPopupRender places the popup under the editing pill, or above
// it when there is more room there, clipped to the viewport.
func (m Model) completionPopupRender(base string) (completionPopupRender, bool) {
	state := m.completion
	if !state.Visible || m.width <= 0 || m.height <= 0 {
		return completionPopupRender{}, false
	}

	pill := m.res.Rects[m.col.EditingIndex()]
	anchorX, anchorY, ok := m.contentToScreen(layout.Point{X: pill.X, Y: pill.Bottom() - 1})
	if !ok {
		// The pill may start left of the viewport; anchor at its visible part.
		anchorX, anchorY, ok = m.contentToScreen(layout.Point{X: max(pill.X, m.scroll.X), Y: pill.Bottom() - 1})
		if !ok {
			return completionPopupRender{}, false
		}
	}

	visible := sanitizeCompletionVisibleIndices(state.VisibleIndices, len(state.Items))
	if len(visible) == 0 {
		return completionPopupRender{}, false
	}
	targetRows := min(m.cfg.CompletionMaxVisibleRows, len(visible))

	belowAvail := max(m.height-(anchorY+1), 0)
	aboveAvail := max(anchorY-(pill.H-1), 0)
	showBelow := true
	rowCount := targetRows
	if rowCount > belowAvail {
		if aboveAvail >= rowCount {
			showBelow = false
		} else if aboveAvail > belowAvail {
			showBelow = false
			rowCount = aboveAvail
		} else {
			rowCount = belowAvail
		}
	}
	if rowCount <= 0 {
		return completionPopupRender{}, false
	}

	// Keep the selected row inside the window.
	selected := clampCompletionSelected(state.Selected, len(visible))
	first := 0
	if selected >= rowCount {
		first = selected - rowCount + 1
	}
	itemIndices := visible[first:min(first+rowCount, len(visible))]

	widthCap := min(m.cfg.CompletionMaxWidth, m.width)
	popupWidth := 0
	for _, idx := range itemIndices {
		popupWidth = max(popupWidth, m.eng.Shaper.Width(state.Items[idx])+2)
	}
	popupWidth = min(popupWidth, widthCap)
	if popupWidth <= 0 {
		return completionPopupRender{}, false
	}

	rendered := make([]string, 0, len(itemIndices))
	for row, idx := range itemIndices {
		rendered = append(rendered, m.renderCompletionPopupRow(state.Items[idx], first+row == selected, popupWidth))
	}

	y := anchorY + 1
	if !showBelow {
		y = anchorY - (pill.H - 1) - len(rendered)
	}
	y = clampInt(y, 0, max(m.height-len(rendered), 0))
	x := clampInt(anchorX, 0, max(m.width-popupWidth, 0))

	return completionPopupRender{
		View: overlay.Composite(
			strings.Join(rendered, "\n"),
			base,
			overlay.Left,
			overlay.Top,
			x,
			y,
		),
		X: x,
		Y: y,
	}, true
}

// renderCompletionPopupRow pads item by one cell on each side and truncates
// it to width cells.
func (m Model) renderCompletionPopupRow(item string, selected bool, width int) string {
	st := m.cfg.Style.Style.CompletionItem
	if selected {
		st = m.cfg.Style.Style.CompletionSelected
	}
	text := " " + truncateCells(item, width-1)
	if pad := width - ansi.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return st.Render(text)
}

// truncateCells cuts s at a grapheme boundary so it fits in width cells.
func truncateCells(s string, width int) string {
	var sb strings.Builder
	used := 0
	for _, g := range grapheme.Split(s) {
		w := ansi.StringWidth(g)
		if used+w > width {
			break
		}
		sb.WriteString(g)
		used += w
	}
	return sb.String()
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
