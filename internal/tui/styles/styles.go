package styles

import (
	"reseq/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles defines the core UI styles
type Styles struct {
	App       lipgloss.Style
	Title     lipgloss.Style
	Header    lipgloss.Style
	Cursor    lipgloss.Style
	Selected  lipgloss.Style
	Changed   lipgloss.Style
	Unchanged lipgloss.Style
	Muted     lipgloss.Style
	Help      lipgloss.Style
	Info      lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
}

// New builds the styles for a theme name
func New(theme string) Styles {
	p := config.GetPalette(theme)

	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Primary)),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Emphasis)).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color(p.Border)),
		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Primary)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)).
			Bold(true),
		Changed: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Emphasis)),
		Unchanged: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Primary)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Error)).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Warning)),
	}
}
