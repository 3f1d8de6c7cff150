package types

import "time"

type FormMode string

const (
	ModeEditing   FormMode = "editing"
	ModeSubmitted FormMode = "submitted"
)

// SubmitMsg carries the field values of a form that passed validation.
type SubmitMsg struct {
	Values map[string]string
}

// StatusMsg represents a status message to be displayed in the UI
type StatusMsg struct {
	Message  string
	Duration time.Duration
}
