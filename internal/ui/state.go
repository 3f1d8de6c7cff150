package ui

// editState is the input lifecycle of a floating input.
type editState string

const (
	stateIdle    editState = "idle"
	stateEditing editState = "editing"
)

// editEvent drives editState transitions.
type editEvent string

const (
	eventEditingBegan   editEvent = "editingBegan"
	eventEditingEnded   editEvent = "editingEnded"
	eventContentChanged editEvent = "contentChanged"
)

// consult selects which derived streams a transition reads.
type consult uint8

const (
	consultHint consult = 1 << iota
	consultStatus
	// consultLiveStatus reads the status only once a status has been drawn.
	consultLiveStatus
)

func (c consult) has(flag consult) bool {
	return c&flag != 0
}

type transitionKey struct {
	from  editState
	event editEvent
}

type transition struct {
	to      editState
	consult consult
}

// transitions lists every accepted (state, event) pair. Pairs not listed are
// ignored, e.g. editingEnded while idle. The first warning appears when the
// user leaves the field; after that edits keep it current.
var transitions = map[transitionKey]transition{
	{stateIdle, eventEditingBegan}:      {to: stateEditing, consult: consultHint},
	{stateEditing, eventEditingEnded}:   {to: stateIdle, consult: consultStatus | consultHint},
	{stateIdle, eventContentChanged}:    {to: stateIdle, consult: consultHint | consultLiveStatus},
	{stateEditing, eventContentChanged}: {to: stateEditing, consult: consultHint | consultLiveStatus},
}

func nextState(from editState, event editEvent) (transition, bool) {
	t, ok := transitions[transitionKey{from, event}]
	return t, ok
}
