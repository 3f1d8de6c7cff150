package validation

// Option configures Settings built by NewSettings.
type Option func(*Settings)

// NewSettings builds Settings from options. Without options the result uses
// StandardTheme, a one line divider and no rules; CanEmpty stays unset, so
// callers must pick WithRequired or WithCanEmpty before the value validates.
func NewSettings(opts ...Option) Settings {
	s := Settings{
		Theme:         StandardTheme,
		DividerHeight: 1,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithRequired forbids empty content and sets the message shown when it is.
func WithRequired(message string, callback func()) Option {
	return func(s *Settings) {
		s.CanEmpty = Bool(false)
		s.EmptyViolation = &Violation{Message: message, Callback: callback}
	}
}

// WithCanEmpty decides whether empty content is acceptable.
func WithCanEmpty(canEmpty bool) Option {
	return func(s *Settings) {
		s.CanEmpty = Bool(canEmpty)
	}
}

// WithMinLength requires at least n characters.
func WithMinLength(n int, message string, callback func()) Option {
	return func(s *Settings) {
		s.MinLength = Int(n)
		s.MinLengthViolation = &Violation{Message: message, Callback: callback}
	}
}

// WithMaxLength flags content reaching n characters.
func WithMaxLength(n int, message string, callback func()) Option {
	return func(s *Settings) {
		s.MaxLength = Int(n)
		s.MaxLengthViolation = &Violation{Message: message, Callback: callback}
	}
}

// WithInputType forbids content matched by t's pattern.
func WithInputType(t InputType, message string, callback func()) Option {
	return func(s *Settings) {
		s.InputType = &t
		s.InputTypeViolation = &Violation{Message: message, Callback: callback}
	}
}

func WithPlaceholder(placeholder string) Option {
	return func(s *Settings) { s.Placeholder = placeholder }
}

// WithIcon renders icon in front of the input.
func WithIcon(icon string) Option {
	return func(s *Settings) { s.Icon = icon }
}

// WithSecure masks the content.
func WithSecure(secure bool) Option {
	return func(s *Settings) { s.Secure = secure }
}

// WithActions enables clipboard actions (paste, cut, copy, select all).
func WithActions(enabled bool) Option {
	return func(s *Settings) { s.EnableActions = enabled }
}

func WithTheme(t Theme) Option {
	return func(s *Settings) { s.Theme = t }
}

func WithDividerHeight(h int) Option {
	return func(s *Settings) { s.DividerHeight = h }
}

// Int returns a pointer to n.
func Int(n int) *int { return &n }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }
