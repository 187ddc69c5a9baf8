package editor

func (m Model) CompletionState() CompletionState {
	return cloneCompletionState(m.completion)
}

// SetCompletions replaces the candidates. They apply from the next key.
func (m Model) SetCompletions(items []string) Model {
	m.completions = sanitizeTexts(items)
	return m
}

func (m Model) ClearCompletion() Model {
	m.completion = CompletionState{}
	return m
}

// acceptCompletion puts the selected candidate into the editing tag, cursor
// at its end.
func (m *Model) acceptCompletion() bool {
	item, ok := m.completion.SelectedItem()
	if !ok {
		return false
	}
	m.col.SetEditingText(item)
	m.cfg.Logger.Debug("completion accepted", "text", item, "editing", m.col.EditingIndex())
	return true
}

func (m *Model) moveCompletionSelection(delta int) {
	n := len(m.completion.VisibleIndices)
	if n == 0 {
		return
	}
	m.completion.Selected = (m.completion.Selected + delta + n) % n
}

func (m *Model) dismissCompletion() {
	m.dismissedQuery = m.completion.Query
	m.completion.Visible = false
}
