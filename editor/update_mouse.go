package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tagpill/layout"
)

const lineWheelStep = 2

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if isWheel(msg) {
		return m.scrollWheel(msg), nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.mouseInBounds(msg.X, msg.Y) {
		return m, nil
	}

	var cmds []tea.Cmd
	if !m.focused {
		var cmd tea.Cmd
		m, cmd = m.Focus()
		cmds = append(cmds, cmd)
	}
	focusClick := m.cfg.Now().Sub(m.focusedAt) < m.cfg.FocusDebounce
	if focusClick && m.cfg.Behavior.RestoreCursorPositionOnFocusClick {
		return m, tea.Batch(cmds...)
	}

	before := m.col.Version()
	follow := m.press(m.screenToContent(msg.X, msg.Y), focusClick)
	cmds = append(cmds, m.restartBlink())
	m.recomputeCompletion()
	m.refresh(follow)
	if m.col.Version() != before {
		m.notify()
	}
	return m, tea.Batch(cmds...)
}

// press applies a left press at p and reports whether the caret should be
// scrolled into view. A focusing click switches, removes, or inserts tags
// but leaves the caret of the editing tag alone.
func (m *Model) press(p layout.Point, focusClick bool) bool {
	c := m.col
	i, hit := m.hitTest(p)
	switch hit {
	case hitCross:
		text := c.At(i).Text
		c.RemoveTag(i)
		m.cfg.Logger.Debug("tag removed", "text", text, "index", i, "editing", c.EditingIndex())
		return false
	case hitPill:
		if i != c.EditingIndex() {
			c.EditTag(i)
		} else if !focusClick {
			c.MoveCursor(m.eng.CursorAt(m.res.Rects[i], c.EditingText(), p), false)
		}
		return true
	}

	if m.cfg.ReadOnly {
		return true
	}
	c.InsertAndEdit(m.cfg.Mode.flow().Slot(m.res.Rects, p))
	return true
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

// scrollWheel scrolls without moving the caret. ModeArea delegates to the
// viewport; ModeLine turns every wheel direction into horizontal steps.
func (m Model) scrollWheel(msg tea.MouseMsg) Model {
	if m.cfg.Mode == ModeArea && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown) {
		m.viewport, _ = m.viewport.Update(msg)
		m.scroll.Y = m.viewport.YOffset
	} else {
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			m.scroll.X -= lineWheelStep
		default:
			m.scroll.X += lineWheelStep
		}
	}
	m.scroll = layout.Clamp(m.scroll, m.extents())
	m.rebuildContent()
	return m
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}
