package validation

import (
	"errors"
	"fmt"
)

var (
	// ErrCanEmptyUnset is returned when a rule set leaves CanEmpty undecided.
	// The empty check needs an explicit answer.
	ErrCanEmptyUnset = errors.New("validation: CanEmpty must be set")
	// ErrNegativeLength is returned for a negative MinLength or MaxLength.
	ErrNegativeLength = errors.New("validation: length limit must not be negative")
)

// ConfigError describes a settings field that cannot be used to build a
// pipeline. It unwraps to one of the package sentinels.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
