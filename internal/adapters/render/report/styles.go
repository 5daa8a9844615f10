package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	section    lipgloss.Style
	stepKey    lipgloss.Style
	uninfected lipgloss.Style
	infected   lipgloss.Style
	protected  lipgloss.Style
	detail     lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section:    lipgloss.NewStyle().MarginTop(1),
		stepKey:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		uninfected: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		infected:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		protected:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
