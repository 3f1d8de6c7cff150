// Package ui provides the terminal user interface components for the floatinput application.
// This file defines the form model hosting several floating inputs.
package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"

	"github.com/VarunSharma3520/floatinput/internal/config"
	"github.com/VarunSharma3520/floatinput/internal/types"
	"github.com/VarunSharma3520/floatinput/internal/validation"
)

// Logger is what the form needs from the application logger.
// *logger.Logger satisfies it.
type Logger interface {
	validation.Reporter
	Info(message string, data interface{})
	Warn(message string, data interface{})
}

// Model is the form: an ordered list of floating inputs with one of them
// focused, plus the status line.
type Model struct {
	Title   string
	Fields  []*FloatingInput
	Names   []string
	Focused int
	Mode    types.FormMode

	Keys keyMap
	Help help.Model

	Submitted   map[string]string
	StatusMsg   string
	StatusTimer *time.Timer

	logger Logger
}

// NewModel builds one floating input per field of form, themed with theme
// unless the form picks its own, and focuses the first one.
//
// Example:
//
//	m, err := ui.NewModel(config.DefaultForm(), validation.StandardTheme, appLogger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer m.Close()
func NewModel(form *config.FormFile, theme validation.Theme, log Logger) (*Model, error) {
	if form == nil || len(form.Fields) == 0 {
		return nil, errors.New("form has no fields")
	}
	if form.Theme != "" {
		t, ok := validation.LookupTheme(form.Theme)
		if !ok {
			return nil, fmt.Errorf("unknown theme %q", form.Theme)
		}
		theme = t
	}

	m := &Model{
		Title:       form.Title,
		Mode:        types.ModeEditing,
		Keys:        defaultKeyMap(),
		Help:        help.New(),
		StatusTimer: time.NewTimer(0),
		logger:      log,
	}

	for _, field := range form.Fields {
		fi := NewFloatingInput(log)
		notify := func(name string, status validation.Status) {
			log.Warn("field violation", map[string]interface{}{
				"field":    name,
				"field_id": fi.ID().String(),
				"status":   status.String(),
			})
		}

		settings, err := field.Settings(theme, notify)
		if err != nil {
			m.Close()
			return nil, err
		}
		if err := fi.Configure(settings); err != nil {
			m.Close()
			return nil, fmt.Errorf("field %q: %w", field.Name, err)
		}

		m.Fields = append(m.Fields, fi)
		m.Names = append(m.Names, field.Name)
	}

	m.Fields[0].Focus()
	return m, nil
}

// Values returns the current content of every field keyed by field name.
func (m *Model) Values() map[string]string {
	values := make(map[string]string, len(m.Fields))
	for i, f := range m.Fields {
		values[m.Names[i]] = f.Text()
	}
	return values
}

// Field returns the field registered under name.
func (m *Model) Field(name string) (*FloatingInput, bool) {
	for i, n := range m.Names {
		if n == name {
			return m.Fields[i], true
		}
	}
	return nil, false
}

// Close tears down every field.
func (m *Model) Close() {
	for _, f := range m.Fields {
		f.Close()
	}
}

// setStatus sets a status message that will be shown temporarily
func (m *Model) setStatus(msg string, duration time.Duration) {
	m.StatusMsg = msg
	if !m.StatusTimer.Stop() {
		select {
		case <-m.StatusTimer.C:
		default:
		}
	}
	m.StatusTimer.Reset(duration)
}

// ClearStatusIfExpired clears the status message if the timer has fired
func (m *Model) ClearStatusIfExpired() {
	select {
	case <-m.StatusTimer.C:
		m.StatusMsg = ""
	default:
		// Timer hasn't fired yet
	}
}
