package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Header     lipgloss.Style
	Subtitle   lipgloss.Style
	Textarea   lipgloss.Style
	Help       lipgloss.Style
	Footer     lipgloss.Style
	Accent     lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Thinking   lipgloss.Style
	Subtle     lipgloss.Style
	GridBox    lipgloss.Style
	GridHeader lipgloss.Style
	GridLabel  lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555")).
			Faint(true).
			Padding(0, 1),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")).
			Padding(0, 1),

		Textarea: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#AD8CFF")),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777777")),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777777")).
			Faint(true),

		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AD8CFF")),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5C5C")).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3DDC97")).
			Bold(true),

		Thinking: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3DDC97")),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")),

		GridBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#AD8CFF")).
			Padding(0, 1),

		GridHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AD8CFF")).
			Bold(true),

		GridLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00E6B8")),
	}
}
