package validation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VarunSharma3520/floatinput/internal/rx"
	"github.com/VarunSharma3520/floatinput/internal/validation"
)

func TestPipelineStatusFollowsContent(t *testing.T) {
	content := rx.NewValue("")
	p, err := validation.NewPipeline(content, validation.Rules{
		CanEmpty:  validation.Bool(false),
		MinLength: validation.Int(2),
		MaxLength: validation.Int(4),
		InputType: &validation.Digits,
	}, nil)
	require.NoError(t, err)

	var got []validation.Status
	p.Status().Subscribe(func(s validation.Status) { got = append(got, s) })

	for _, s := range []string{"1", "12", "12x", "1234", "123"} {
		content.Set(s)
	}

	want := []validation.Status{
		validation.EmptyViolated,
		validation.MinLengthViolated,
		validation.Valid,
		validation.InputTypeViolated,
		validation.MaxLengthViolated,
		validation.Valid,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("status mismatch (-want +got):\n%s", diff)
	}
}

func TestPipelineHintSuppressesDuplicates(t *testing.T) {
	content := rx.NewValue("")
	p, err := validation.NewPipeline(content, validation.Rules{CanEmpty: validation.Bool(false)}, nil)
	require.NoError(t, err)

	var got []validation.HintVisibility
	p.Hint().Subscribe(func(h validation.HintVisibility) { got = append(got, h) })

	for _, s := range []string{"a", "ab", "abc", "", "", "q", "", "x", "x"} {
		content.Set(s)
	}

	want := []validation.HintVisibility{
		validation.HintHidden,
		validation.HintVisible,
		validation.HintHidden,
		validation.HintVisible,
		validation.HintHidden,
		validation.HintVisible,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("hint mismatch (-want +got):\n%s", diff)
	}
}

func TestPipelineHintNeverEmitsWhenEmptyAllowed(t *testing.T) {
	content := rx.NewValue("")
	p, err := validation.NewPipeline(content, validation.Rules{CanEmpty: validation.Bool(true)}, nil)
	require.NoError(t, err)

	var got []validation.HintVisibility
	p.Hint().Subscribe(func(h validation.HintVisibility) { got = append(got, h) })
	for _, s := range []string{"a", "", "a", ""} {
		content.Set(s)
	}

	assert.Equal(t, []validation.HintVisibility{validation.HintVisible}, got)
}

func TestPipelineRejectsInvalidRules(t *testing.T) {
	_, err := validation.NewPipeline(rx.NewValue(""), validation.Rules{}, nil)
	assert.ErrorIs(t, err, validation.ErrCanEmptyUnset)
}

func TestPipelineMalformedPatternReportedOnce(t *testing.T) {
	reporter := &recordingReporter{}
	content := rx.NewValue("")
	p, err := validation.NewPipeline(content, validation.Rules{
		CanEmpty:  validation.Bool(true),
		InputType: inputType(`*`),
	}, reporter)
	require.NoError(t, err)

	var last validation.Status
	p.Status().Subscribe(func(s validation.Status) { last = s })
	content.Set("fine")

	assert.Equal(t, validation.InputTypeViolated, last)
	assert.Len(t, reporter.calls, 1)
}
