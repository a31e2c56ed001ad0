package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	index     lipgloss.Style
	pile      lipgloss.Style
	count     lipgloss.Style
	mode      lipgloss.Style
	warning   lipgloss.Style
	rejection lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	final     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		index:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		pile:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		count:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		mode:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		rejection: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		final:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
	}
}
