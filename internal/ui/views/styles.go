package views

import (
	"github.com/Cyclone1070/weatheragent/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds every lipgloss style the terminal uses.
type Styles struct {
	Welcome lipgloss.Style
	Prompt  lipgloss.Style
	Answer  lipgloss.Style
	Title   lipgloss.Style
	Error   lipgloss.Style

	StatusThinking  lipgloss.Style
	StatusExecuting lipgloss.Style
	StatusDone      lipgloss.Style
	StatusError     lipgloss.Style
	StatusDefault   lipgloss.Style
}

// NewStyles builds the styles from the configured colors.
func NewStyles(cfg config.UIConfig) Styles {
	return Styles{
		Welcome: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.ColorPrimary)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cfg.ColorPrimary)).
			Padding(0, 1),
		Prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cfg.ColorUser)),
		Answer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cfg.ColorAnswer)).
			Padding(0, 1),
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cfg.ColorTitle)),
		Error: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cfg.ColorError)),

		StatusThinking:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cfg.ColorStatus)),
		StatusExecuting: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ColorStatus)),
		StatusDone:      lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ColorUser)),
		StatusError:     lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ColorError)),
		StatusDefault:   lipgloss.NewStyle().Faint(true),
	}
}
