package validation

// Status is the outcome of evaluating content against a rule set.
// Exactly one status is produced per evaluation; the first failing rule wins.
type Status int

const (
	Valid Status = iota
	EmptyViolated
	MinLengthViolated
	InputTypeViolated
	MaxLengthViolated
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case EmptyViolated:
		return "emptyViolated"
	case MinLengthViolated:
		return "minLengthViolated"
	case InputTypeViolated:
		return "inputTypeViolated"
	case MaxLengthViolated:
		return "maxLengthViolated"
	default:
		return "unknown"
	}
}

// IsValid reports whether s is Valid.
func (s Status) IsValid() bool {
	return s == Valid
}

// HintVisibility controls whether the floating hint label is shown.
type HintVisibility int

const (
	HintHidden HintVisibility = iota
	HintVisible
)

func (h HintVisibility) String() string {
	if h == HintVisible {
		return "visible"
	}
	return "hidden"
}
