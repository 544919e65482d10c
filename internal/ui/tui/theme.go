package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Word     lipgloss.Style
	Phonemes lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Word:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Phonemes: lipgloss.NewStyle(),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("161")),
		Help:     lipgloss.NewStyle().Faint(true),
	}
}
