// Package ui provides the terminal user interface components for the floatinput application.
// It uses the Bubble Tea framework for building interactive terminal applications.
package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/VarunSharma3520/floatinput/internal/config"
	"github.com/VarunSharma3520/floatinput/internal/validation"
)

const defaultInputWidth = 32

// clipboardKeys are the actions gated by Settings.EnableActions.
var clipboardKeys = key.NewBinding(key.WithKeys("ctrl+v", "ctrl+y"))

// NewTextInput creates the raw text input backing a floating input, before
// any settings are applied.
//
// Returns:
//   - textinput.Model: A configured text input model ready for use in the UI
func NewTextInput() textinput.Model {
	ti := textinput.New()

	ti.Prompt = ""
	ti.CharLimit = 0 // Length limits are validation warnings, not hard caps
	ti.Width = defaultInputWidth
	ti.PromptStyle = fg(config.MainColorForeground)

	return ti
}

// applySettings copies the view-only part of s onto ti.
func applySettings(ti *textinput.Model, s validation.Settings) {
	theme := s.Theme

	ti.Placeholder = s.Placeholder
	ti.PlaceholderStyle = fg(theme.Placeholder)
	ti.TextStyle = fg(theme.Text)
	ti.Cursor.Style = fg(theme.Cursor)
	ti.PromptStyle = fg(theme.Accent)

	ti.Prompt = ""
	if s.Icon != "" {
		ti.Prompt = s.Icon + " "
	}

	if s.Secure {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	} else {
		ti.EchoMode = textinput.EchoNormal
	}

	ti.KeyMap.Paste.SetEnabled(s.EnableActions)
}
