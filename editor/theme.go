package editor

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme is a scoped styling configuration resolved once at startup, instead
// of ambient process-wide look-and-feel mutation. Hosts build one, derive a
// Style from it, and pass that Style through Config.
type Theme struct {
	dark bool
}

// NewTheme resolves the terminal background once.
func NewTheme() Theme {
	return Theme{dark: termenv.HasDarkBackground()}
}

// NewThemeDark builds a theme with an explicit background, for hosts and
// tests that must not probe the terminal.
func NewThemeDark(dark bool) Theme {
	return Theme{dark: dark}
}

func (t Theme) Dark() bool { return t.dark }

// Style derives the editor styles for this theme.
func (t Theme) Style() Style {
	s := DefaultStyle()
	if t.dark {
		return s
	}

	s.Gutter = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	s.LineNum = s.Gutter
	s.LineNumActive = lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Bold(true)
	s.Selection = lipgloss.NewStyle().Background(lipgloss.Color("253"))
	s.CompletionItem = lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("254"))
	s.CompletionSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25"))
	s.TabInactive = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	return s
}
