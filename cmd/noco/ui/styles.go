package ui

import "github.com/charmbracelet/lipgloss"

// Palette used by the CLI output.
var (
	Primary = lipgloss.Color("#4f46e5")
	Fg      = lipgloss.Color("#1f2328")
	MutedFg = lipgloss.Color("#6b7280")
	Green   = lipgloss.Color("#16a34a")
	Red     = lipgloss.Color("#dc2626")
)

// Styles holds the styled components used by the CLI output.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Foreground(Primary).Bold(true),
		Header:  lipgloss.NewStyle().Foreground(Fg).Bold(true),
		Body:    lipgloss.NewStyle().Foreground(Fg),
		Muted:   lipgloss.NewStyle().Foreground(MutedFg),
		Success: lipgloss.NewStyle().Foreground(Green).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(Red).Bold(true),
	}
}
