package ui

import (
	"fmt"
	"strings"

	"github.com/VarunSharma3520/floatinput/internal/types"
)

// renderSummary lists submitted values, masking secure fields.
func (m *Model) renderSummary() string {
	var sb strings.Builder
	for i, name := range m.Names {
		value := m.Submitted[name]
		if s, ok := m.Fields[i].Settings(); ok && s.Secure {
			value = strings.Repeat("•", len([]rune(value)))
		}
		if value == "" {
			value = "(empty)"
		}
		sb.WriteString(summaryStyle.Render(fmt.Sprintf("%s: %s", name, value)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// View renders the current state of the UI based on the current form mode
func (m *Model) View() string {
	var content string

	switch m.Mode {
	case types.ModeEditing:
		views := make([]string, len(m.Fields))
		for i, f := range m.Fields {
			views[i] = f.View()
		}
		content = strings.Join(views, "\n")

	case types.ModeSubmitted:
		content = m.renderSummary()

	default:
		content = "[Unknown Mode]"
	}

	instructions := helpStyle.Render(m.Help.View(m.Keys))

	// Show status message if available
	statusBar := ""
	if m.StatusMsg != "" {
		statusBar = fmt.Sprintf("\n\n%s", statusStyle.Render(m.StatusMsg))
	}

	title := m.Title
	if title == "" {
		title = "floatinput"
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s%s\n",
		titleStyle.Render(title),
		content,
		instructions,
		statusBar,
	)
}
