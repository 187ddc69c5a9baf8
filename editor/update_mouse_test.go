package editor

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// Cell layout of tags "a", "b" and a focused empty editing tag:
//
//	0    5 6   11 12  16
//	[a ×] [b ×] [  ]
//
// The cross of tag 0 is at x=3.

func TestMouse_CrossRemovesTag(t *testing.T) {
	var events int
	m, _ := focusedModel(t, Config{
		Tags:         []string{"a", "b"},
		OnTagsEdited: func(TagsEvent) { events++ },
	}, 40, 1)

	m = press(m, 3, 0)
	assertStrings(t, "internal tags", m.col.Texts(), []string{"b", ""})
	require.Equal(t, 1, m.col.EditingIndex(), "editing index")
	require.Equal(t, 1, events, "events")
}

func TestMouse_CrossOfEditingTagIgnoredWhileFocused(t *testing.T) {
	m, _ := focusedModel(t, Config{Tags: []string{"a", "b"}}, 40, 1)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})

	// Tag 1 is now editing; its cross is at x=9.
	m = press(m, 9, 0)
	assertStrings(t, "tags", m.Tags(), []string{"a", "b"})
	require.Equal(t, 1, m.col.EditingIndex(), "editing index")
}

func TestMouse_NoCrossDisablesRemoval(t *testing.T) {
	m, _ := focusedModel(t, Config{Tags: []string{"a", "b"}, NoCross: true}, 40, 1)
	m = press(m, 2, 0)
	assertStrings(t, "tags", m.Tags(), []string{"a", "b"})
	require.Equal(t, 0, m.col.EditingIndex(), "editing index")
}

func TestMouse_PillClickEditsThenPlacesCursor(t *testing.T) {
	m, _ := focusedModel(t, Config{Tags: []string{"abc"}}, 40, 1)

	m = press(m, 2, 0)
	assertStrings(t, "internal tags", m.col.Texts(), []string{"abc"})
	require.Equal(t, 3, m.col.Cursor(), "cursor after switching")

	m = press(m, 2, 0)
	require.Equal(t, 1, m.col.Cursor(), "cursor after click in text")
}

func TestMouse_EmptySpaceInsertsAtSlot(t *testing.T) {
	m, _ := focusedModel(t, Config{Mode: ModeArea, Tags: []string{"aaa", "bbb"}}, 12, 4)
	// aaa on row 0, bbb and the editing tag on row 1.
	m = press(m, 10, 0)
	assertStrings(t, "internal tags", m.col.Texts(), []string{"aaa", "", "bbb"})
	require.Equal(t, 1, m.col.EditingIndex(), "editing index")
}

func TestMouse_BelowContentAppends(t *testing.T) {
	m, _ := focusedModel(t, Config{Mode: ModeArea, Tags: []string{"aaa", "bbb"}}, 12, 4)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m = press(m, 1, 3)
	assertStrings(t, "internal tags", m.col.Texts(), []string{"aaa", "bbb", ""})
	require.Equal(t, 2, m.col.EditingIndex(), "editing index")
}

func TestMouse_FocusClickKeepsCaret(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	m := New(Config{Tags: []string{"abc"}, Now: clock.Now})
	m = m.SetSize(40, 1)

	// The focusing click still switches tags.
	m = press(m, 2, 0)
	require.True(t, m.Focused(), "press should focus")
	require.Equal(t, 0, m.col.EditingIndex(), "editing after focusing click")
	require.Equal(t, 3, m.col.Cursor(), "cursor after focusing click")

	m = m.Blur()
	m = press(m, 2, 0)
	require.Equal(t, 3, m.col.Cursor(), "focusing click moved caret")

	clock.Advance(time.Second)
	m = press(m, 2, 0)
	require.Equal(t, 1, m.col.Cursor(), "later click")
}

func TestMouse_FocusClickIgnoredWithRestore(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	m := New(Config{
		Tags:     []string{"abc"},
		Behavior: BehaviorConfig{RestoreCursorPositionOnFocusClick: true},
		Now:      clock.Now,
	})
	m = m.SetSize(40, 1)

	m = press(m, 2, 0)
	require.True(t, m.Focused(), "press should focus")
	require.Equal(t, 1, m.col.EditingIndex(), "editing index")
}

func TestMouse_OutOfBoundsIgnored(t *testing.T) {
	m, _ := focusedModel(t, Config{Tags: []string{"a"}}, 10, 1)
	m = press(m, 3, 5)
	assertStrings(t, "internal tags", m.col.Texts(), []string{"a", ""})
}

func TestMouse_WheelScrollsArea(t *testing.T) {
	m := New(Config{Mode: ModeArea, Tags: []string{"aaa", "bbb", "ccc", "ddd", "eee", "fff"}})
	m = m.SetSize(8, 2)
	require.Equal(t, 4, m.ScrollState().MaxY, "max y")

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	st := m.ScrollState()
	require.Positive(t, st.Y, "scroll y after wheel")
	require.LessOrEqual(t, st.Y, st.MaxY)
	lines := viewLines(m)
	require.Len(t, lines, 2)
	require.NotEmpty(t, lines[0])
}

func TestMouse_WheelScrollsLine(t *testing.T) {
	m := New(Config{Tags: []string{"aaaa", "bbbb", "cccc"}})
	m = m.SetSize(10, 1)

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	require.Equal(t, lineWheelStep, m.ScrollState().X, "scroll x")
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	require.Equal(t, 0, m.ScrollState().X, "scroll x clamps at 0")
}
