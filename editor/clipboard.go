package editor

import "strings"

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; failures are ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// copySelection reports false when there is nothing to copy, so the key
// falls through to the host.
func (m *Model) copySelection() bool {
	if m.cfg.Clipboard == nil || !m.col.HasSelection() {
		return false
	}
	_ = m.cfg.Clipboard.WriteText(m.col.SelectedText())
	return true
}

func (m *Model) cutSelection() bool {
	if !m.copySelection() {
		return false
	}
	m.col.RemoveSelection()
	return true
}

func (m *Model) pasteClipboard() bool {
	if m.cfg.Clipboard == nil {
		return false
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.cfg.Logger.Debug("clipboard read failed", "err", err)
		return true
	}
	m.pasteText(s)
	return true
}

// pasteText inserts the first whitespace separated word at the cursor and
// commits every further word as its own tag.
func (m *Model) pasteText(s string) {
	words := strings.Fields(s)
	for i, w := range words {
		w = sanitizeText(w)
		if w == "" {
			continue
		}
		if i > 0 && m.col.EditingText() != "" {
			m.commit()
		}
		m.col.InsertText(w)
	}
}

// sanitizeText makes s fit a single line tag: line breaks and tabs become
// spaces and other control characters are dropped.
func sanitizeText(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case r < 0x20 || r == 0x7f:
			return -1
		}
		return r
	}, s)
}

func sanitizeTexts(texts []string) []string {
	if len(texts) == 0 {
		return nil
	}
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = sanitizeText(t)
	}
	return out
}
