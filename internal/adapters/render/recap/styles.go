package recap

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	summary lipgloss.Style
	meta    lipgloss.Style
	footer  lipgloss.Style
	help    lipgloss.Style
	err     lipgloss.Style
	box     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		summary: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		footer:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		help:    lipgloss.NewStyle().Faint(true),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		box:     lipgloss.NewStyle().PaddingLeft(1),
	}
}
