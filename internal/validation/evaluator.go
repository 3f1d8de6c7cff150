// Package validation evaluates the content of a single text field against a
// fixed rule set and derives the floating hint state from it.
package validation

import (
	"log"
	"regexp"

	"github.com/rivo/uniseg"
)

// Reporter receives errors that must not interrupt validation, such as a
// pattern that fails to compile. *logger.Logger satisfies it.
type Reporter interface {
	Error(message string, err error, data interface{})
}

// Rules is the rule tuple a pipeline evaluates.
type Rules struct {
	MinLength *int
	MaxLength *int
	InputType *InputType
	CanEmpty  *bool
}

// Validate checks the rule set can be evaluated.
func (r Rules) Validate() error {
	if r.CanEmpty == nil {
		return &ConfigError{Field: "CanEmpty", Err: ErrCanEmptyUnset}
	}
	if r.MinLength != nil && *r.MinLength < 0 {
		return &ConfigError{Field: "MinLength", Err: ErrNegativeLength}
	}
	if r.MaxLength != nil && *r.MaxLength < 0 {
		return &ConfigError{Field: "MaxLength", Err: ErrNegativeLength}
	}
	return nil
}

// Evaluator computes statuses for one rule set. It is immutable after
// construction and safe to share.
type Evaluator struct {
	rules   Rules
	pattern *regexp.Regexp
	// brokenPattern is set when the input type pattern did not compile;
	// every evaluation then fails the input type rule.
	brokenPattern bool
}

// NewEvaluator validates rules and compiles the input type pattern. A pattern
// that does not compile is reported, not returned.
func NewEvaluator(rules Rules, reporter Reporter) (*Evaluator, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	e := &Evaluator{rules: rules}
	if rules.InputType != nil && rules.InputType.Pattern != "" {
		re, err := regexp.Compile(rules.InputType.Pattern)
		if err != nil {
			e.brokenPattern = true
			report(reporter, "input type pattern failed to compile", err, map[string]interface{}{
				"input_type": rules.InputType.Name,
				"pattern":    rules.InputType.Pattern,
			})
		} else {
			e.pattern = re
		}
	}
	return e, nil
}

// Rules returns the rule set the evaluator was built from.
func (e *Evaluator) Rules() Rules {
	return e.rules
}

// Status evaluates content. Rules are checked in a fixed order and the first
// failure is returned: empty, minimum length, input type, maximum length.
func (e *Evaluator) Status(content string) Status {
	n := Length(content)

	if n == 0 && !*e.rules.CanEmpty {
		return EmptyViolated
	}
	if e.rules.MinLength != nil && n < *e.rules.MinLength {
		return MinLengthViolated
	}
	if e.brokenPattern || (e.pattern != nil && e.pattern.MatchString(content)) {
		return InputTypeViolated
	}
	if e.rules.MaxLength != nil && n >= *e.rules.MaxLength {
		return MaxLengthViolated
	}
	return Valid
}

// Hint derives the hint visibility for content.
func (e *Evaluator) Hint(content string) HintVisibility {
	return HintFor(content, e.rules.CanEmpty)
}

// HintFor shows the hint for non-empty content. Empty content keeps it
// visible unless canEmpty is explicitly false.
func HintFor(content string, canEmpty *bool) HintVisibility {
	if Length(content) > 0 {
		return HintVisible
	}
	if canEmpty == nil || *canEmpty {
		return HintVisible
	}
	return HintHidden
}

// Length counts user-perceived characters (grapheme clusters).
func Length(content string) int {
	return uniseg.GraphemeClusterCount(content)
}

func report(r Reporter, message string, err error, data map[string]interface{}) {
	if r == nil {
		log.Printf("%s: %v", message, err)
		return
	}
	r.Error(message, err, data)
}
