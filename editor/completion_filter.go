package editor

import "strings"

// recomputeCompletion matches the candidates against the editing text. The
// popup shows while focused, with a non-empty query, at least one match, and
// not only the query itself. A dismissed query stays hidden until it changes.
func (m *Model) recomputeCompletion() {
	query := m.col.EditingText()
	state := CompletionState{Query: query, Items: m.completions}
	if !m.focused || m.cfg.ReadOnly || query == "" || len(m.completions) == 0 || query == m.dismissedQuery {
		m.completion = state
		return
	}
	m.dismissedQuery = ""

	ctx := CompletionFilterContext{
		Query:  query,
		Items:  cloneStrings(m.completions),
		Tags:   m.committedTags(),
		Unique: m.col.Unique(),
	}
	var result CompletionFilterResult
	if m.cfg.CompletionFilter != nil {
		result = m.cfg.CompletionFilter(ctx)
	} else {
		result = defaultCompletionFilter(ctx)
	}

	state.VisibleIndices = sanitizeCompletionVisibleIndices(result.VisibleIndices, len(state.Items))
	state.Selected = clampCompletionSelected(result.SelectedIndex, len(state.VisibleIndices))
	exact := len(state.VisibleIndices) == 1 && state.Items[state.VisibleIndices[0]] == query
	state.Visible = len(state.VisibleIndices) > 0 && !exact
	m.completion = state
}

func (m *Model) committedTags() []string {
	texts := m.col.Texts()
	out := make([]string, 0, len(texts))
	for i, t := range texts {
		if i != m.col.EditingIndex() {
			out = append(out, t)
		}
	}
	return out
}

// defaultCompletionFilter keeps case-insensitive prefix matches in candidate
// order. With Unique it skips candidates that are already tags.
func defaultCompletionFilter(ctx CompletionFilterContext) CompletionFilterResult {
	query := strings.ToLower(ctx.Query)
	existing := make(map[string]struct{}, len(ctx.Tags))
	if ctx.Unique {
		for _, t := range ctx.Tags {
			existing[t] = struct{}{}
		}
	}
	visible := make([]int, 0, len(ctx.Items))
	for i, item := range ctx.Items {
		if _, dup := existing[item]; dup {
			continue
		}
		if strings.HasPrefix(strings.ToLower(item), query) {
			visible = append(visible, i)
		}
	}
	return CompletionFilterResult{VisibleIndices: visible}
}
