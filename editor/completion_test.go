package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func completionModel(t *testing.T) Model {
	t.Helper()
	m, _ := focusedModel(t, Config{
		Mode:        ModeArea,
		Completions: []string{"golang", "Gopher", "rust", "go"},
	}, 30, 6)
	return m
}

func TestCompletion_PrefixMatchIgnoresCase(t *testing.T) {
	m := completionModel(t)
	m = typeKeys(m, "gO")

	st := m.CompletionState()
	require.True(t, st.Visible, "popup should be visible")
	require.Equal(t, []int{0, 1, 3}, st.VisibleIndices)
}

func TestCompletion_HiddenOnExactSoleMatch(t *testing.T) {
	m := completionModel(t)
	m = typeKeys(m, "rust")
	require.False(t, m.CompletionState().Visible, "popup should hide when the only match is the text itself")
}

func TestCompletion_NavigateAndAccept(t *testing.T) {
	m := completionModel(t)
	m = typeKeys(m, "go")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, m.CompletionState().Selected, "selected")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "Gopher", m.col.EditingText(), "text after accept")
	require.Equal(t, 6, m.col.Cursor(), "cursor after accept")
	require.False(t, m.CompletionState().Visible, "popup should close after accept")
	require.True(t, m.KeyConsumed(), "accept should be consumed")
}

func TestCompletion_PrevWraps(t *testing.T) {
	m := completionModel(t)
	m = typeKeys(m, "go")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 2, m.CompletionState().Selected, "selected")
}

func TestCompletion_DismissStaysUntilQueryChanges(t *testing.T) {
	m := completionModel(t)
	m = typeKeys(m, "g")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.CompletionState().Visible, "popup should hide on dismiss")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	require.False(t, m.CompletionState().Visible, "popup should stay dismissed for the same query")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m = typeKeys(m, "o")
	require.True(t, m.CompletionState().Visible, "popup should reopen for a new query")
}

func TestCompletion_UniqueSkipsExistingTags(t *testing.T) {
	m, _ := focusedModel(t, Config{
		Mode:        ModeArea,
		Tags:        []string{"golang"},
		Behavior:    BehaviorConfig{Unique: true},
		Completions: []string{"golang", "gopher"},
	}, 30, 6)
	m = typeKeys(m, "go")

	st := m.CompletionState()
	require.Equal(t, []int{1}, st.VisibleIndices)
}

func TestCompletion_CustomFilter(t *testing.T) {
	m, _ := focusedModel(t, Config{
		Mode:        ModeArea,
		Completions: []string{"a", "b", "c"},
		CompletionFilter: func(ctx CompletionFilterContext) CompletionFilterResult {
			return CompletionFilterResult{VisibleIndices: []int{2, 2, 9, 0}, SelectedIndex: 5}
		},
	}, 30, 6)
	m = typeKeys(m, "z")

	st := m.CompletionState()
	require.Equal(t, []int{2, 0}, st.VisibleIndices)
	require.Equal(t, 1, st.Selected)
}

func TestCompletion_SetCompletionsAppliesOnNextKey(t *testing.T) {
	m, _ := focusedModel(t, Config{Mode: ModeArea}, 30, 6)
	m = typeKeys(m, "r")
	require.False(t, m.CompletionState().Visible, "no candidates yet")
	m = m.SetCompletions([]string{"rust"})
	m = typeKeys(m, "u")
	require.True(t, m.CompletionState().Visible, "popup should show new candidates")
}

func TestCompletion_HiddenOnBlur(t *testing.T) {
	m := completionModel(t)
	m = typeKeys(m, "go")
	m = m.Blur()
	require.False(t, m.CompletionState().Visible, "popup should hide on blur")
}
