package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/algodrill/internal/render"
)

// Palette
var (
	colorAccent  = lipgloss.Color("#20B9B4")
	colorBright  = lipgloss.Color("#2CD7C7")
	colorBorder  = lipgloss.Color("#16858E")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("241")
)

// Styles holds the lipgloss styles used by the view
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Heading  lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Hint     lipgloss.Style
	Box      lipgloss.Style
	CodeBox  lipgloss.Style
	Footer   lipgloss.Style

	Instance render.Theme
}

// DefaultStyles returns the standard palette
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorBright),
		Subtitle: lipgloss.NewStyle().Foreground(colorAccent),
		Heading:  lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		Success:  lipgloss.NewStyle().Bold(true).Foreground(colorSuccess),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(colorError),
		Hint:     lipgloss.NewStyle().Foreground(colorWarning),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		CodeBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1),
		Footer:   lipgloss.NewStyle().Foreground(colorMuted),
		Instance: render.ColorTheme(),
	}
}
