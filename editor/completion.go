package editor

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

const (
	defaultCompletionMaxVisibleRows = 8
	defaultCompletionMaxWidth       = 40
)

// CompletionState is the completion popup as last computed.
type CompletionState struct {
	Visible bool
	// Query is the editing text the candidates were matched against.
	Query string
	Items []string
	// VisibleIndices index Items in popup order.
	VisibleIndices []int
	// Selected indexes VisibleIndices.
	Selected int
}

// SelectedItem returns the highlighted candidate.
func (s CompletionState) SelectedItem() (string, bool) {
	if !s.Visible || s.Selected < 0 || s.Selected >= len(s.VisibleIndices) {
		return "", false
	}
	return s.Items[s.VisibleIndices[s.Selected]], true
}

type CompletionFilterContext struct {
	Query string
	Items []string
	// Tags are the committed tags, for filters that skip existing ones.
	Tags   []string
	Unique bool
}

type CompletionFilterResult struct {
	VisibleIndices []int
	SelectedIndex  int
}

type CompletionFilter func(CompletionFilterContext) CompletionFilterResult

type CompletionKeyMap struct {
	Accept  key.Binding
	Dismiss key.Binding
	Next    key.Binding
	Prev    key.Binding
}

func DefaultCompletionKeyMap() CompletionKeyMap {
	return CompletionKeyMap{
		Accept:  key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter/tab", "accept completion")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss completion")),
		Next:    key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("down", "next completion")),
		Prev:    key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("up", "prev completion")),
	}
}

func normalizeCompletionKeyMap(km CompletionKeyMap) CompletionKeyMap {
	if reflect.DeepEqual(km, CompletionKeyMap{}) {
		return DefaultCompletionKeyMap()
	}
	return km
}

func normalizeCompletionMaxVisibleRows(rows int) int {
	if rows <= 0 {
		return defaultCompletionMaxVisibleRows
	}
	return rows
}

func normalizeCompletionMaxWidth(width int) int {
	if width <= 0 {
		return defaultCompletionMaxWidth
	}
	return width
}

func cloneCompletionState(state CompletionState) CompletionState {
	state.Items = cloneStrings(state.Items)
	if len(state.VisibleIndices) == 0 {
		state.VisibleIndices = nil
	} else {
		state.VisibleIndices = append([]int(nil), state.VisibleIndices...)
	}
	return state
}

func cloneStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return append([]string(nil), s...)
}

func sanitizeCompletionVisibleIndices(indices []int, itemCount int) []int {
	if len(indices) == 0 || itemCount <= 0 {
		return nil
	}
	out := make([]int, 0, len(indices))
	seen := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= itemCount {
			continue
		}
		if _, exists := seen[idx]; exists {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func clampCompletionSelected(selected, visibleCount int) int {
	if visibleCount <= 0 {
		return 0
	}
	return clampInt(selected, 0, visibleCount-1)
}
