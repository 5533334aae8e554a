package messages

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	localID lipgloss.Style
	stamp   lipgloss.Style
	sender  lipgloss.Style
	vip     lipgloss.Style
	channel lipgloss.Style
	text    lipgloss.Style
	meta    lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		localID: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		stamp:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		sender:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		vip:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		channel: lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		text:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
