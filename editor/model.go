package editor

import (
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tagpill/layout"
	"github.com/iw2rmb/tagpill/shaper"
	"github.com/iw2rmb/tagpill/tags"
)

// Model is a Bubble Tea component that edits a list of tags.
type Model struct {
	cfg Config
	col *tags.Collection
	eng layout.Engine
	res layout.Result

	focused   bool
	focusedAt time.Time

	width, height int
	scroll        layout.Point
	viewport      viewport.Model
	caret         cursor.Model

	completions    []string
	completion     CompletionState
	dismissedQuery string

	keyConsumed bool
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:         cfg,
		col:         tags.New(tags.Options{Unique: cfg.Behavior.Unique}),
		viewport:    viewport.New(0, 0),
		caret:       cursor.New(),
		completions: sanitizeTexts(cfg.Completions),
	}
	m.caret.Style = cfg.Style.Style.Caret
	m.eng = layout.Engine{Metrics: cfg.Style.Metrics, Shaper: shaper.Cells{}, Flow: cfg.Mode.flow()}
	if len(cfg.Tags) > 0 {
		m.col.ReplaceAll(sanitizeTexts(cfg.Tags))
	}
	m.refresh(false)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Tags returns the committed tags. The editing tag is included unless it is
// empty or, with Unique, a duplicate.
func (m Model) Tags() []string { return m.col.ExportAll() }

// SetTags replaces every tag and opens an empty editing tag after them.
// Empty strings are dropped and, with Unique, so are repeats. OnTagsEdited is
// not called.
func (m Model) SetTags(texts []string) Model {
	m.col.ReplaceAll(sanitizeTexts(texts))
	m.cfg.Logger.Debug("tags replaced", "tags", len(texts))
	m.recomputeCompletion()
	m.refresh(false)
	return m
}

// Config returns the style and behavior in effect.
func (m Model) Config() (StyleConfig, BehaviorConfig) {
	return m.cfg.Style, m.cfg.Behavior
}

// SetConfig replaces style and behavior and relays out. Turning Unique on
// removes repeated tags.
func (m Model) SetConfig(style StyleConfig, behavior BehaviorConfig) Model {
	m.cfg.Style = normalizeStyleConfig(style)
	m.eng.Metrics = m.cfg.Style.Metrics
	m.caret.Style = m.cfg.Style.Style.Caret

	if behavior.Unique != m.col.Unique() {
		before := m.col.Len()
		m.col.SetUnique(behavior.Unique)
		if removed := before - m.col.Len(); removed > 0 {
			m.cfg.Logger.Debug("duplicate tags removed", "tags", removed, "editing", m.col.EditingIndex())
		}
	}
	m.cfg.Behavior = behavior
	m.refresh(false)
	return m
}

func (m Model) Mode() Mode { return m.cfg.Mode }

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.viewport.Width = m.width
	m.viewport.Height = m.height
	m.refresh(true)
	return m
}

// Focus starts the caret blink cycle.
func (m Model) Focus() (Model, tea.Cmd) {
	if m.focused {
		return m, nil
	}
	m.focused = true
	m.focusedAt = m.cfg.Now()
	cmd := m.caret.Focus()
	m.refresh(true)
	return m, cmd
}

// Blur stops the caret blink cycle and hides an empty editing tag.
func (m Model) Blur() Model {
	if !m.focused {
		return m
	}
	m.focused = false
	m.caret.Blur()
	m.completion.Visible = false
	m.refresh(false)
	return m
}

func (m Model) Focused() bool { return m.focused }

// KeyConsumed reports whether the last key message was handled. Hosts use
// it to apply their own bindings to keys the editor ignores.
func (m Model) KeyConsumed() bool { return m.keyConsumed }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.FocusMsg:
		return m.Focus()
	case tea.BlurMsg:
		return m.Blur(), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	var cmd tea.Cmd
	m.caret, cmd = m.caret.Update(msg)
	m.rebuildContent()
	return m, cmd
}

func (m Model) View() string {
	base := m.viewport.View()
	if popup, ok := m.completionPopupRender(base); ok {
		return popup.View
	}
	return base
}

// refresh relays out, clamps or follows the scroll position, and rebuilds
// the rendered content. Every handler ends with one call.
func (m *Model) refresh(follow bool) {
	m.res = m.eng.Layout(m.layoutInput(m.contentRect()))
	for i, r := range m.res.Rects {
		m.col.SetRect(i, r)
	}

	ext := m.extents()
	if follow && m.focused {
		m.scroll = m.eng.FollowCaret(m.scroll, m.caretRect(), m.viewRect(), ext)
	} else {
		m.scroll = layout.Clamp(m.scroll, ext)
	}
	m.rebuildContent()
}

func (m *Model) layoutInput(content layout.Rect) layout.Input {
	return layout.Input{
		Texts:       m.col.Texts(),
		Editing:     m.col.EditingIndex(),
		EditorShown: m.editorShown(),
		NoCross:     m.noCross(),
		Content:     content,
	}
}

// editorShown is false for an empty editing tag without a caret; it lays out
// as a phantom slot and is not drawn.
func (m Model) editorShown() bool {
	return m.focused || m.col.EditingText() != ""
}

func (m Model) noCross() bool { return m.cfg.NoCross || m.cfg.ReadOnly }

func (m Model) contentRect() layout.Rect {
	return layout.Rect{W: m.width, H: m.height}
}

func (m Model) viewRect() layout.Rect {
	return layout.Rect{W: m.width, H: m.height}
}

func (m Model) extents() layout.Extents {
	return m.eng.Extents(m.res, layout.Size{W: m.width, H: m.height})
}

func (m Model) caretRect() layout.Rect {
	i := m.col.EditingIndex()
	return m.eng.CaretRect(m.res.Rects[i], m.col.EditingText(), m.col.Cursor())
}

// restartBlink shows the caret and reschedules the blink, invalidating any
// pending blink message.
func (m *Model) restartBlink() tea.Cmd {
	if !m.focused || m.caret.Mode() != cursor.CursorBlink {
		return nil
	}
	m.caret.Blink = false
	return m.caret.BlinkCmd()
}

func (m *Model) notify() {
	if m.cfg.OnTagsEdited != nil {
		m.cfg.OnTagsEdited(buildTagsEvent(m.col))
	}
}
