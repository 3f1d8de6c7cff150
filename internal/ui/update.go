// Package ui provides the terminal user interface components for the floatinput application.
// This file handles the update loop and message handling for the Bubble Tea TUI.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/VarunSharma3520/floatinput/internal/types"
)

// Init starts the cursor blinking in the focused field.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update is the main update function that handles all messages and updates the model state.
//
// The function handles:
//   - form key bindings (focus movement, submit, quit)
//   - status and submit messages
//   - everything else, forwarded to the focused field
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.ClearStatusIfExpired()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Next):
			return m, m.moveFocus(1)
		case key.Matches(msg, m.Keys.Prev):
			return m, m.moveFocus(-1)
		case key.Matches(msg, m.Keys.Submit):
			return m, m.submit()
		}

	case types.StatusMsg:
		m.setStatus(msg.Message, msg.Duration)
		return m, nil

	case types.SubmitMsg:
		m.Mode = types.ModeSubmitted
		m.Submitted = msg.Values
		m.setStatus("✅ Form submitted", 3*time.Second)
		return m, nil
	}

	if m.Mode == types.ModeSubmitted {
		return m, nil
	}

	_, cmd := m.Fields[m.Focused].Update(msg)
	return m, cmd
}

// moveFocus releases the focused field and focuses its neighbour.
func (m *Model) moveFocus(delta int) tea.Cmd {
	if m.Mode == types.ModeSubmitted {
		return nil
	}
	n := len(m.Fields)
	m.Fields[m.Focused].ReleaseFocus()
	m.Focused = ((m.Focused+delta)%n + n) % n
	return m.Fields[m.Focused].Focus()
}

// submit focuses the first invalid field and surfaces its warning, or emits a
// SubmitMsg with every value when all fields are valid.
func (m *Model) submit() tea.Cmd {
	if m.Mode == types.ModeSubmitted {
		return nil
	}

	for i, f := range m.Fields {
		if f.Status().IsValid() {
			continue
		}
		if i != m.Focused {
			m.Fields[m.Focused].ReleaseFocus()
			m.Focused = i
		}
		m.logger.Warn("submit blocked", map[string]interface{}{
			"field":  m.Names[i],
			"status": f.Status().String(),
		})
		m.setStatus(fmt.Sprintf("❌ Fix %s before submitting", m.Names[i]), 3*time.Second)
		return f.ForceShowError()
	}

	values := m.Values()
	m.logger.Info("form submitted", map[string]interface{}{
		"fields": m.Names,
	})
	return func() tea.Msg {
		return types.SubmitMsg{Values: values}
	}
}
