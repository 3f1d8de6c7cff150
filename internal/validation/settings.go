package validation

// Violation is the message and optional action tied to one violated rule.
type Violation struct {
	Message  string
	Callback func()
}

// Settings configures one floating input: which rules apply, what each
// violation says, and how the field looks. Treat a Settings value as
// immutable once attached to a field; attach a new one to reconfigure.
type Settings struct {
	MinLength *int
	MaxLength *int
	InputType *InputType
	CanEmpty  *bool

	EmptyViolation     *Violation
	MinLengthViolation *Violation
	InputTypeViolation *Violation
	MaxLengthViolation *Violation

	// View-only properties.
	Placeholder   string
	Icon          string
	Secure        bool
	EnableActions bool
	Theme         Theme
	DividerHeight int
}

// Rules extracts the rule tuple.
func (s Settings) Rules() Rules {
	return Rules{
		MinLength: s.MinLength,
		MaxLength: s.MaxLength,
		InputType: s.InputType,
		CanEmpty:  s.CanEmpty,
	}
}

// Validate reports the first configuration problem, if any.
func (s Settings) Validate() error {
	if err := s.Rules().Validate(); err != nil {
		return err
	}
	if s.DividerHeight < 0 {
		return &ConfigError{Field: "DividerHeight", Err: ErrNegativeLength}
	}
	return nil
}

// ViolationFor returns the violation configured for status, or nil for Valid
// and for kinds that carry no message.
func (s Settings) ViolationFor(status Status) *Violation {
	switch status {
	case EmptyViolated:
		return s.EmptyViolation
	case MinLengthViolated:
		return s.MinLengthViolation
	case InputTypeViolated:
		return s.InputTypeViolation
	case MaxLengthViolated:
		return s.MaxLengthViolation
	default:
		return nil
	}
}
