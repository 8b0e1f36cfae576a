package analysis

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pinereel/pinereel/internal/cli"
)

// Styles contains all styling definitions for summary formatting.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Subtle   lipgloss.Style
	Normal   lipgloss.Style

	Box     lipgloss.Style
	Score   lipgloss.Style
	Section lipgloss.Style
	Label   lipgloss.Style
}

// NewStyles creates a new Styles instance with default styling.
func NewStyles() *Styles {
	s := &Styles{
		Title:    cli.TitleStyle,
		Subtitle: cli.SubtitleStyle,
		Success:  cli.SuccessStyle,
		Warning:  cli.WarningStyle,
		Error:    cli.ErrorStyle,
		Info:     cli.InfoStyle,
		Subtle:   cli.SubtleStyle,
		Normal:   lipgloss.NewStyle(),
	}

	s.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cli.SubtleColor).
		Padding(0, 1)

	s.Score = lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.PrimaryColor)

	s.Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.InfoColor).
		MarginTop(1)

	s.Label = lipgloss.NewStyle().
		Foreground(cli.SubtleColor)

	return s
}
