package main

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tagpill/editor"
)

const (
	focusLine = iota
	focusArea
)

// Rows of the screen: label, line editor, gap, label, area editor, status.
const (
	lineTop = 1
	areaTop = 4
	chrome  = areaTop + 1
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

type app struct {
	line    editor.Model
	area    editor.Model
	focus   int
	width   int
	height  int
	initCmd tea.Cmd
}

func newApp(cfg demoConfig, logger *slog.Logger) app {
	style := cfg.Style.styleConfig()
	onEdit := func(name string) func(editor.TagsEvent) {
		return func(ev editor.TagsEvent) {
			logger.Debug("tags edited", "editor", name, "version", ev.Version, "tags", ev.Tags, "editing", ev.Editing)
		}
	}

	lineCfg := cfg.Line.editorConfig(editor.ModeLine, style)
	lineCfg.Clipboard = systemClipboard{}
	lineCfg.Logger = logger.With("editor", "line")
	lineCfg.OnTagsEdited = onEdit("line")

	areaCfg := cfg.Area.editorConfig(editor.ModeArea, style)
	areaCfg.Clipboard = systemClipboard{}
	areaCfg.Logger = logger.With("editor", "area")
	areaCfg.OnTagsEdited = onEdit("area")

	a := app{
		line: editor.New(lineCfg),
		area: editor.New(areaCfg),
	}
	a.line, a.initCmd = a.line.Focus()
	return a
}

func (a app) Init() tea.Cmd { return a.initCmd }

func (a *app) editor(i int) *editor.Model {
	if i == focusArea {
		return &a.area
	}
	return &a.line
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.line = a.line.SetSize(msg.Width, 1)
		a.area = a.area.SetSize(msg.Width, a.areaHeight())
		return a, nil
	case tea.KeyMsg:
		return a.updateKey(msg)
	case tea.MouseMsg:
		return a.updateMouse(msg)
	}

	var lineCmd, areaCmd tea.Cmd
	a.line, lineCmd = a.line.Update(msg)
	a.area, areaCmd = a.area.Update(msg)
	return a, tea.Batch(lineCmd, areaCmd)
}

// updateKey offers the key to the focused editor first; host bindings only
// see keys it leaves unconsumed.
func (a app) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := a.editor(a.focus)
	var cmd tea.Cmd
	*ed, cmd = ed.Update(msg)
	if ed.KeyConsumed() {
		return a, cmd
	}

	switch msg.String() {
	case "tab", "shift+tab":
		return a.switchFocus(1 - a.focus)
	case "esc", "ctrl+q", "ctrl+c":
		return a, tea.Quit
	}
	return a, cmd
}

func (a app) switchFocus(to int) (app, tea.Cmd) {
	if to == a.focus {
		return a, nil
	}
	cur := a.editor(a.focus)
	*cur = cur.Blur()
	a.focus = to
	next := a.editor(to)
	var cmd tea.Cmd
	*next, cmd = next.Focus()
	return a, cmd
}

func (a app) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	target, top := a.editorAt(msg.Y)
	if target < 0 {
		return a, nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && target != a.focus {
		cur := a.editor(a.focus)
		*cur = cur.Blur()
		a.focus = target
	}

	msg.Y -= top
	ed := a.editor(target)
	var cmd tea.Cmd
	*ed, cmd = ed.Update(msg)
	return a, cmd
}

// editorAt returns the editor on screen row y and the row it starts at, or
// -1 when y is outside both.
func (a app) editorAt(y int) (int, int) {
	switch {
	case y == lineTop:
		return focusLine, lineTop
	case y >= areaTop && y < areaTop+a.areaHeight():
		return focusArea, areaTop
	}
	return -1, 0
}

func (a app) areaHeight() int { return max(a.height-chrome, 1) }

func (a app) View() string {
	var sb strings.Builder
	sb.WriteString(labelStyle.Render(a.label("line", focusLine)))
	sb.WriteString("\n")
	sb.WriteString(a.line.View())
	sb.WriteString("\n\n")
	sb.WriteString(labelStyle.Render(a.label("area", focusArea)))
	sb.WriteString("\n")
	sb.WriteString(a.area.View())
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(fmt.Sprintf("%d + %d tags · tab switch · esc quit", len(a.line.Tags()), len(a.area.Tags()))))
	return sb.String()
}

func (a app) label(name string, i int) string {
	if a.focus == i {
		return "> " + name
	}
	return "  " + name
}

// export returns cfg with the tags of both editors.
func (a app) export(cfg demoConfig) demoConfig {
	cfg.Line.Tags = a.line.Tags()
	cfg.Area.Tags = a.area.Tags()
	return cfg
}
