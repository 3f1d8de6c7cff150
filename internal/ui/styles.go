package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/VarunSharma3520/floatinput/internal/config"
)

// Global style definitions for the form chrome.
var (
	// titleStyle defines the styling for the form title.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(config.MainColorBackground)).
			Background(lipgloss.Color(config.MainColorForeground)).
			PaddingRight(4).
			PaddingLeft(4)

	// helpStyle is used for the key binding help line.
	helpStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(config.MainColorBackgroundMute))

	// summaryStyle renders submitted values.
	summaryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginLeft(2)

	// statusStyle defines the styling for status messages
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Italic(true)
)

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
