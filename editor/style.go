package editor

import "github.com/charmbracelet/lipgloss"

// Style controls text rendering inside pills and the completion popup.
// Pill fill comes from StyleConfig.Color.
type Style struct {
	Text      lipgloss.Style
	Editing   lipgloss.Style
	Selection lipgloss.Style
	Cross     lipgloss.Style
	Caret     lipgloss.Style

	CompletionItem     lipgloss.Style
	CompletionSelected lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:               lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Editing:            lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Underline(true),
		Selection:          lipgloss.NewStyle().Background(lipgloss.Color("31")).Foreground(lipgloss.Color("255")),
		Cross:              lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Caret:              lipgloss.NewStyle(),
		CompletionItem:     lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")),
		CompletionSelected: lipgloss.NewStyle().Background(lipgloss.Color("24")).Foreground(lipgloss.Color("255")).Bold(true),
	}
}
