package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tagpill/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.keyConsumed = false
	if !m.focused {
		return m, nil
	}

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if m.cfg.ReadOnly {
			return m, nil
		}
		m.pasteText(string(msg.Runes))
		return m.afterKey()
	}

	if m.completion.Visible && m.updateCompletionKey(msg) {
		m.keyConsumed = true
		cmd := m.restartBlink()
		m.refresh(true)
		m.notify()
		return m, cmd
	}

	if !m.applyKey(msg) {
		return m, nil
	}
	return m.afterKey()
}

// afterKey runs the post-edit cycle of every consumed key.
func (m Model) afterKey() (Model, tea.Cmd) {
	m.keyConsumed = true
	cmd := m.restartBlink()
	m.recomputeCompletion()
	m.refresh(true)
	m.notify()
	return m, cmd
}

func (m *Model) updateCompletionKey(msg tea.KeyMsg) bool {
	km := m.cfg.CompletionKeyMap
	switch {
	case key.Matches(msg, km.Next):
		m.moveCompletionSelection(1)
	case key.Matches(msg, km.Prev):
		m.moveCompletionSelection(-1)
	case key.Matches(msg, km.Accept):
		m.acceptCompletion()
		m.completion.Visible = false
	case key.Matches(msg, km.Dismiss):
		m.dismissCompletion()
	default:
		return false
	}
	return true
}

// applyKey performs the edit bound to msg and reports whether msg was
// consumed.
func (m *Model) applyKey(msg tea.KeyMsg) bool {
	km := m.cfg.KeyMap
	c := m.col
	sh := m.eng.Shaper
	text := c.EditingText()
	cur := c.Cursor()
	n := grapheme.Count(text)

	switch {
	case key.Matches(msg, km.SelectAll):
		c.SelectAll()
	case key.Matches(msg, km.SelectLeft):
		c.MoveCursor(sh.PrevBoundary(text, cur), true)
	case key.Matches(msg, km.SelectRight):
		c.MoveCursor(sh.NextBoundary(text, cur), true)

	case key.Matches(msg, km.Left):
		if cur == 0 {
			c.EditPrevious()
		} else {
			c.MoveCursor(sh.PrevBoundary(text, cur), false)
		}
	case key.Matches(msg, km.Right):
		if cur == n {
			c.EditNext()
		} else {
			c.MoveCursor(sh.NextBoundary(text, cur), false)
		}
	case key.Matches(msg, km.Home):
		if cur == 0 && c.EditingIndex() > 0 {
			c.EditTag(0)
		} else {
			c.MoveCursor(0, false)
		}
	case key.Matches(msg, km.End):
		if cur == n && c.EditingIndex() < c.Len()-1 {
			c.EditTag(c.Len() - 1)
		} else {
			c.MoveCursor(n, false)
		}

	case key.Matches(msg, km.Copy):
		return m.copySelection()

	default:
		if m.cfg.ReadOnly {
			return false
		}
		return m.applyEditKey(msg)
	}
	return true
}

func (m *Model) applyEditKey(msg tea.KeyMsg) bool {
	km := m.cfg.KeyMap
	c := m.col

	switch {
	case key.Matches(msg, km.Backspace):
		if c.EditingText() != "" {
			c.RemoveBackwardOne()
		} else if c.EditingIndex() > 0 {
			c.EditPrevious()
		}
	case key.Matches(msg, km.Delete):
		c.RemoveForwardOne()
	case key.Matches(msg, km.Commit):
		if c.EditingText() != "" {
			m.commit()
		}
	case key.Matches(msg, km.Cut):
		return m.cutSelection()
	case key.Matches(msg, km.Paste):
		return m.pasteClipboard()

	default:
		if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		s := sanitizeText(string(msg.Runes))
		switch {
		case strings.TrimSpace(s) == "":
			return false
		case strings.ContainsRune(s, ' '):
			m.pasteText(s)
		default:
			c.InsertText(s)
		}
	}
	return true
}

// commit closes the editing tag and opens an empty one after it.
func (m *Model) commit() {
	c := m.col
	text := c.EditingText()
	dup := c.Unique() && c.IsCurrentTagADuplicate()
	c.InsertAndEdit(c.EditingIndex() + 1)
	if dup {
		m.cfg.Logger.Debug("duplicate tag dropped", "text", text)
		return
	}
	m.cfg.Logger.Debug("tag committed", "text", text, "index", c.EditingIndex()-1, "tags", c.Len())
}
