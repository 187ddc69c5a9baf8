package editor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestView_SquarePills(t *testing.T) {
	m := New(Config{Tags: []string{"a", "b"}}).SetSize(20, 1)
	assertLines(t, viewLines(m), []string{" a ×   b ×"})
}

func TestView_RoundedPills(t *testing.T) {
	m := New(Config{Tags: []string{"a", "b"}, Style: DefaultStyleConfig()}).SetSize(20, 1)
	assertLines(t, viewLines(m), []string{"◖a ×◗ ◖b ×◗"})
}

func TestView_ReadOnlyHidesCross(t *testing.T) {
	m := New(Config{
		Tags:     []string{"a", "b"},
		Style:    DefaultStyleConfig(),
		ReadOnly: true,
	}).SetSize(20, 1)
	assertLines(t, viewLines(m), []string{"◖a◗ ◖b◗"})
}

func TestView_FocusedEditingPillHasNoCross(t *testing.T) {
	m, _ := focusedModel(t, Config{Tags: []string{"a"}, Style: DefaultStyleConfig()}, 20, 1)
	assertLines(t, viewLines(m), []string{"◖a ×◗ ◖  ◗"})

	m = typeKeys(m, "xy")
	assertLines(t, viewLines(m), []string{"◖a ×◗ ◖xy  ◗"})
}

func TestView_AreaRows(t *testing.T) {
	m := New(Config{Tags: []string{"aaa", "bbb"}, Mode: ModeArea}).SetSize(8, 3)
	assertLines(t, viewLines(m), []string{" aaa ×", " bbb ×", ""})
}

func TestView_LineScrollCutsColumns(t *testing.T) {
	m, _ := focusedModel(t, Config{Tags: []string{"aaaa", "bbbb"}}, 10, 1)
	st := m.ScrollState()
	require.NotZero(t, st.X, "scroll x should follow the caret")
	lines := viewLines(m)
	require.LessOrEqual(t, lipgloss.Width(lines[0]), 10, "line width")
}

func TestView_CompletionPopupUnderPill(t *testing.T) {
	m := completionModel(t)
	m = typeKeys(m, "go")

	lines := viewLines(m)
	require.Len(t, lines, 6)
	assertLines(t, lines[1:4], []string{" golang", " Gopher", " go"})
}

func TestView_PopupFlipsAbove(t *testing.T) {
	m, _ := focusedModel(t, Config{
		Mode:        ModeArea,
		Tags:        []string{"aaaaaa", "bbbbbb"},
		Completions: []string{"x1", "x2"},
	}, 10, 4)
	m = typeKeys(m, "x")

	// aaaaaa and bbbbbb fill rows 0 and 1, the editing pill wraps to row 2
	// with one row below it.
	lines := viewLines(m)
	require.True(t, strings.HasPrefix(lines[0], " x1 "), "popup row: %q", lines[0])
	require.True(t, strings.HasPrefix(lines[1], " x2 "), "popup row: %q", lines[1])
	require.True(t, strings.HasPrefix(lines[2], " x"), "editing row: %q", lines[2])
}

func TestView_ColorProfileEmitsStyles(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(prev)

	m := New(Config{Tags: []string{"a"}}).SetSize(10, 1)
	view := m.View()
	require.Contains(t, view, "\x1b[")
	require.True(t, strings.HasPrefix(stripANSI(view), " a ×"), "stripped view: %q", stripANSI(view))
}
