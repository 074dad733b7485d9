package terminal

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

type styles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	path     lipgloss.Style
	muted    lipgloss.Style
	errLabel lipgloss.Style
	swatch   lipgloss.Style
	success  *pterm.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label:    r.NewStyle().Foreground(lipgloss.Color("8")).Width(16),
		value:    r.NewStyle().Bold(true),
		path:     r.NewStyle().Foreground(lipgloss.Color("6")),
		muted:    r.NewStyle().Foreground(lipgloss.Color("8")),
		errLabel: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		swatch:   r.NewStyle().Width(4),
		success:  pterm.NewStyle(pterm.FgGreen, pterm.Bold),
	}
}
