package validation

import "strings"

// InputType tags a field with a regular expression describing FORBIDDEN
// content. A match anywhere in the text is a violation.
type InputType struct {
	Name    string
	Pattern string
}

// Predefined input types.
var (
	Digits       = InputType{Name: "digits", Pattern: `[^0-9]`}
	Letters      = InputType{Name: "letters", Pattern: `[^\p{L}]`}
	Alphanumeric = InputType{Name: "alphanumeric", Pattern: `[^\p{L}\p{N}]`}
	NoWhitespace = InputType{Name: "no_whitespace", Pattern: `\s`}
	// Email rejects whitespace and a second '@'.
	Email = InputType{Name: "email", Pattern: `\s|@.*@`}
)

var inputTypes = map[string]InputType{
	Digits.Name:       Digits,
	Letters.Name:      Letters,
	Alphanumeric.Name: Alphanumeric,
	NoWhitespace.Name: NoWhitespace,
	Email.Name:        Email,
}

// Custom builds an input type from a caller supplied pattern.
func Custom(name, pattern string) InputType {
	return InputType{Name: name, Pattern: pattern}
}

// LookupInputType resolves a predefined input type by name, case-insensitively.
func LookupInputType(name string) (InputType, bool) {
	t, ok := inputTypes[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}
