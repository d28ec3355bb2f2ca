package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	CompletionItem     lipgloss.Style
	CompletionSelected lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabModified lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),

		CompletionItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
		CompletionSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("233")).Background(lipgloss.Color("110")),

		TabActive:   lipgloss.NewStyle().Bold(true).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		TabModified: lipgloss.NewStyle().Foreground(lipgloss.Color("173")),
	}
}
