package gates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/turnstile/internal/trace"
)

func TestToggleAffordances_PreservedToggle(t *testing.T) {
	before := passingState()
	after := passingState()
	after.InputMode = trace.InputType
	after.Affordances = []trace.Affordance{trace.AffordanceWhatCanISay, trace.AffordanceSubmitFreeText}

	doc := docWith(step("s1", trace.EventToggleInputMode, before, after))
	assert.Empty(t, ToggleAffordances(doc))
}

func TestToggleAffordances_DroppedAfterToggle(t *testing.T) {
	after := passingState()
	after.InputMode = trace.InputType
	after.Affordances = []trace.Affordance{trace.AffordanceSubmitFreeText}

	doc := docWith(step("s1", trace.EventToggleInputMode, passingState(), after))
	violations := ToggleAffordances(doc)

	require.Len(t, violations, 1)
	assert.Equal(t, CodeToggleAffordanceDrop, violations[0].Code)
	assert.Equal(t, "s1", violations[0].StepID)
	assert.Contains(t, violations[0].Message, "dropped what_can_i_say")
}

func TestToggleAffordances_MissingBeforeToggle(t *testing.T) {
	before := passingState()
	before.Affordances = []trace.Affordance{trace.AffordanceSelectOption}

	doc := docWith(step("s1", trace.EventToggleInputMode, before, passingState()))
	violations := ToggleAffordances(doc)

	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "missing before modality toggle")
}

func TestToggleAffordances_DroppedOpenHint(t *testing.T) {
	before := passingState()
	before.Affordances = append(before.Affordances, trace.AffordanceOpenHint)
	before.Hints = &trace.Hint{
		Available: true,
		Payload:   &trace.HintPayload{Effects: trace.Effects{Model: &trace.ModelEffect{}}},
	}

	after := passingState()
	after.InputMode = trace.InputType

	doc := docWith(step("s1", trace.EventToggleInputMode, before, after))
	violations := ToggleAffordances(doc)

	require.Len(t, violations, 1)
	assert.Equal(t, CodeToggleAffordanceDrop, violations[0].Code)
	assert.Contains(t, violations[0].Message, "open_hint")
}

func TestToggleAffordances_OpenHintNotRequiredWithoutHints(t *testing.T) {
	after := passingState()
	after.InputMode = trace.InputType

	doc := docWith(step("s1", trace.EventToggleInputMode, passingState(), after))
	assert.Empty(t, ToggleAffordances(doc))
}

func TestToggleAffordances_IgnoresOtherEvents(t *testing.T) {
	// A non-toggle step may legitimately drop what_can_i_say; this gate
	// only watches TOGGLE_INPUT_MODE transitions.
	after := passingState()
	after.Affordances = []trace.Affordance{trace.AffordanceSelectOption}

	doc := docWith(step("s1", trace.EventSelectOption, passingState(), after))
	assert.Empty(t, ToggleAffordances(doc))
}
