package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/VarunSharma3520/floatinput/internal/rx"
	"github.com/VarunSharma3520/floatinput/internal/validation"
)

// FloatingInput is a text field whose placeholder floats into a hint label
// above it, and which shows the first violated rule as a warning below it.
//
// Content edits are pushed into a replaying source; a validation pipeline
// derives the status and hint streams from it. The field only reads those
// streams on lifecycle transitions (see state.go): the hint follows every
// edit, the warning first shows when editing ends and then follows edits.
type FloatingInput struct {
	id       uuid.UUID
	input    textinput.Model
	settings *validation.Settings
	reporter validation.Reporter

	content  *rx.Value[string]
	pipeline *validation.Pipeline
	bag      *rx.Bag

	state   editState
	enabled bool
	// statusLive is set once a status has been drawn for the current settings.
	statusLive bool

	// Latest values pushed by the pipeline.
	latestStatus validation.Status
	latestHint   validation.HintVisibility
	hintPending  bool

	// What the view currently shows.
	hint         validation.HintVisibility
	warning      string
	hintColor    string
	dividerColor string
}

// NewFloatingInput creates an unconfigured field. Pattern compilation errors
// of later settings go to reporter.
func NewFloatingInput(reporter validation.Reporter) *FloatingInput {
	return &FloatingInput{
		id:       uuid.New(),
		input:    NewTextInput(),
		reporter: reporter,
		content:  rx.NewValue(""),
		bag:      rx.NewBag(),
		state:    stateIdle,
		enabled:  true,
	}
}

// Configure attaches settings and rebuilds the validation pipeline. It may be
// called again to swap settings; the previous subscriptions are released and
// the drawn warning is cleared until editing next ends.
func (f *FloatingInput) Configure(s validation.Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("configure floating input: %w", err)
	}
	p, err := validation.NewPipeline(f.content, s.Rules(), f.reporter)
	if err != nil {
		return fmt.Errorf("configure floating input: %w", err)
	}

	f.bag.Dispose()
	f.bag = rx.NewBag()
	f.settings = &s
	f.pipeline = p

	applySettings(&f.input, s)
	if f.state == stateEditing {
		f.hintColor, f.dividerColor = s.Theme.Accent, s.Theme.Accent
	} else {
		f.hintColor, f.dividerColor = s.Theme.Divider, s.Theme.Divider
	}

	f.hintPending = false
	f.statusLive = false
	f.warning = ""
	f.bag.Add(p.Status().Subscribe(func(st validation.Status) {
		f.latestStatus = st
	}))
	f.bag.Add(p.Hint().Subscribe(func(h validation.HintVisibility) {
		f.latestHint = h
		f.hintPending = true
	}))
	f.applyHint()
	return nil
}

// Close releases every subscription held by the field. The field stops
// reacting to content until it is configured again.
func (f *FloatingInput) Close() {
	f.bag.Dispose()
}

// ID identifies the field instance.
func (f *FloatingInput) ID() uuid.UUID {
	return f.id
}

// Settings returns the attached settings, if any.
func (f *FloatingInput) Settings() (validation.Settings, bool) {
	if f.settings == nil {
		return validation.Settings{}, false
	}
	return *f.settings, true
}

// Text returns the current content.
func (f *FloatingInput) Text() string {
	return f.input.Value()
}

// SetText replaces the content.
func (f *FloatingInput) SetText(s string) {
	f.input.SetValue(s)
	f.contentChanged()
}

// SetEnabled toggles whether the field accepts key input.
func (f *FloatingInput) SetEnabled(enabled bool) {
	f.enabled = enabled
}

// Enabled reports whether the field accepts key input.
func (f *FloatingInput) Enabled() bool {
	return f.enabled
}

// Focus starts editing. Disabled fields cannot take focus.
func (f *FloatingInput) Focus() tea.Cmd {
	if !f.enabled {
		return nil
	}
	return f.focus()
}

func (f *FloatingInput) focus() tea.Cmd {
	if f.input.Focused() {
		return nil
	}
	cmd := f.input.Focus()
	f.fire(eventEditingBegan)
	return cmd
}

// ReleaseFocus ends editing. It reports false when the field wasn't focused.
func (f *FloatingInput) ReleaseFocus() bool {
	if !f.input.Focused() {
		return false
	}
	f.input.Blur()
	f.fire(eventEditingEnded)
	return true
}

// ForceShowError cycles focus off and on so the current violation is drawn.
// It works on disabled fields too; they still ignore key input.
func (f *FloatingInput) ForceShowError() tea.Cmd {
	first := f.focus()
	f.ReleaseFocus()
	return tea.Batch(first, f.focus())
}

// TextInput exposes the underlying text input.
func (f *FloatingInput) TextInput() *textinput.Model {
	return &f.input
}

// Editing reports whether the field is in the editing state.
func (f *FloatingInput) Editing() bool {
	return f.state == stateEditing
}

// Status is the latest evaluation of the current content. It may be ahead of
// what the view shows, see Warning.
func (f *FloatingInput) Status() validation.Status {
	return f.latestStatus
}

// Hint is the hint visibility currently drawn.
func (f *FloatingInput) Hint() validation.HintVisibility {
	return f.hint
}

// Warning is the violation message currently drawn, empty when none.
func (f *FloatingInput) Warning() string {
	return f.warning
}

// HintColor is the color the hint label is drawn with.
func (f *FloatingInput) HintColor() string {
	return f.hintColor
}

// DividerColor is the color the divider is drawn with.
func (f *FloatingInput) DividerColor() string {
	return f.dividerColor
}

// Update routes a Bubble Tea message to the text input and tracks content
// changes.
func (f *FloatingInput) Update(msg tea.Msg) (*FloatingInput, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		if !f.enabled || !f.input.Focused() {
			return f, nil
		}
		if f.blocksAction(km) {
			f.ReleaseFocus()
			return f, nil
		}
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() != before {
		f.contentChanged()
	}
	return f, cmd
}

func (f *FloatingInput) blocksAction(km tea.KeyMsg) bool {
	if f.settings == nil || f.settings.EnableActions {
		return false
	}
	return km.Paste || key.Matches(km, clipboardKeys)
}

func (f *FloatingInput) contentChanged() {
	f.content.Set(f.input.Value())
	f.fire(eventContentChanged)
}

// fire runs one state machine step and applies whatever it consults.
func (f *FloatingInput) fire(event editEvent) {
	t, ok := nextState(f.state, event)
	if !ok {
		return
	}
	f.state = t.to
	if f.settings == nil || f.bag.Disposed() {
		return
	}

	theme := f.settings.Theme
	switch event {
	case eventEditingBegan:
		f.hintColor, f.dividerColor = theme.Accent, theme.Accent
		if f.warning != "" {
			f.hintColor, f.dividerColor = theme.Warning, theme.Warning
		}
	case eventEditingEnded:
		f.hintColor, f.dividerColor = theme.Divider, theme.Divider
	}

	if t.consult.has(consultStatus) || (t.consult.has(consultLiveStatus) && f.statusLive) {
		f.applyStatus(f.latestStatus)
	}
	if t.consult.has(consultHint) {
		f.applyHint()
	}
}

func (f *FloatingInput) applyStatus(status validation.Status) {
	theme := f.settings.Theme
	violation := f.settings.ViolationFor(status)
	f.statusLive = true

	if violation == nil {
		f.warning = ""
		f.hintColor = theme.Accent
		if f.state == stateEditing {
			f.dividerColor = theme.Accent
		}
		return
	}

	f.warning = violation.Message
	f.hintColor = theme.Warning
	if f.state == stateEditing {
		f.dividerColor = theme.Warning
	}
	if violation.Callback != nil {
		violation.Callback()
	}
}

// applyHint draws the latest hint. The hint stream is duplicate free, so a
// pending value is always a real change.
func (f *FloatingInput) applyHint() {
	if !f.hintPending {
		return
	}
	f.hint = f.latestHint
	f.hintPending = false
}

// View renders the hint label, the input, the divider and the warning.
func (f *FloatingInput) View() string {
	theme := validation.StandardTheme
	dividerHeight := 1
	if f.settings != nil {
		theme = f.settings.Theme
		dividerHeight = f.settings.DividerHeight
	}

	hintLine := " "
	if f.hint == validation.HintVisible && f.input.Placeholder != "" {
		hintLine = fg(f.hintColor).Render(f.input.Placeholder)
	}

	width := f.input.Width + lipgloss.Width(f.input.Prompt) + 1
	rule := "─"
	if dividerHeight > 1 {
		rule = "━"
	}
	divider := fg(f.dividerColor).Render(strings.Repeat(rule, width))

	warningLine := " "
	if f.warning != "" {
		warningLine = fg(theme.Warning).Render(f.warning)
	}

	block := lipgloss.JoinVertical(lipgloss.Left, hintLine, f.input.View(), divider, warningLine)
	if theme.Background != "" {
		block = lipgloss.NewStyle().Background(lipgloss.Color(theme.Background)).Render(block)
	}
	return block
}
