package gates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/turnstile/internal/trace"
)

func actionableHint(cascadeStep int, key string) *trace.Hint {
	return &trace.Hint{
		Available:       true,
		CascadeStep:     cascadeStep,
		CascadeStateKey: key,
		Payload: &trace.HintPayload{
			Effects: trace.Effects{Narrow: &trace.NarrowEffect{FramesAllowed: []string{"f-order"}}},
		},
	}
}

func TestHintActionability_ActionableHintPasses(t *testing.T) {
	before := passingState()
	before.Affordances = append(before.Affordances, trace.AffordanceOpenHint)
	before.Hints = actionableHint(0, "t1/h")

	after := before
	after.Hints = actionableHint(1, "t1/h")

	doc := docWith(step("s1", trace.EventOpenHint, before, after))
	assert.Empty(t, HintActionability(doc))
}

func TestHintActionability_EmptyEffects(t *testing.T) {
	before := passingState()
	before.Hints = &trace.Hint{
		Available: true,
		Payload:   &trace.HintPayload{Effects: trace.Effects{}},
	}

	doc := docWith(step("s1", trace.EventOpenHint, before, passingState()))
	violations := HintActionability(doc)

	require.Len(t, violations, 1)
	assert.Equal(t, CodeHintNoEffects, violations[0].Code)
	assert.Contains(t, violations[0].Message, "before")
}

func TestHintActionability_MissingPayload(t *testing.T) {
	after := passingState()
	after.Hints = &trace.Hint{Available: true}

	doc := docWith(step("s1", trace.EventOpenHint, passingState(), after))
	violations := HintActionability(doc)

	require.Len(t, violations, 1)
	assert.Equal(t, CodeHintNoEffects, violations[0].Code)
	assert.Contains(t, violations[0].Message, "after")
}

func TestHintActionability_BothEndsChecked(t *testing.T) {
	bad := passingState()
	bad.Hints = &trace.Hint{Available: true}

	doc := docWith(step("s1", trace.EventOpenHint, bad, bad))
	violations := HintActionability(doc)

	require.Len(t, violations, 2)
	assert.Equal(t, CodeHintNoEffects, violations[0].Code)
	assert.Equal(t, CodeHintNoEffects, violations[1].Code)
}

func TestHintActionability_UnavailableHintNotChecked(t *testing.T) {
	before := passingState()
	before.Hints = &trace.Hint{Available: false}

	doc := docWith(step("s1", trace.EventSelectOption, before, passingState()))
	assert.Empty(t, HintActionability(doc))
}

func TestHintActionability_TeacherCorrectionAloneIsNotAnEffect(t *testing.T) {
	before := passingState()
	before.Hints = &trace.Hint{
		Available: true,
		Payload:   &trace.HintPayload{Effects: trace.Effects{TeacherCorrection: true}},
	}

	doc := docWith(step("s1", trace.EventOpenHint, before, passingState()))
	violations := HintActionability(doc)

	require.Len(t, violations, 1)
	assert.Equal(t, CodeHintNoEffects, violations[0].Code)
}

func TestHintActionability_CascadeAdvances(t *testing.T) {
	mk := func(id string, beforeStep, afterStep int) trace.Step {
		before := passingState()
		before.Hints = actionableHint(beforeStep, "t1/h")
		after := passingState()
		after.Hints = actionableHint(afterStep, "t1/h")
		return step(id, trace.EventAdvanceHint, before, after)
	}

	doc := docWith(mk("s1", 0, 1), mk("s2", 1, 2))
	assert.Empty(t, HintActionability(doc))
}

func TestHintActionability_CascadeMovesBackwards(t *testing.T) {
	before := passingState()
	before.Hints = actionableHint(2, "t1/h")
	after := passingState()
	after.Hints = actionableHint(1, "t1/h")

	doc := docWith(step("s1", trace.EventAdvanceHint, before, after))
	violations := HintActionability(doc)

	require.Len(t, violations, 1)
	assert.Equal(t, CodeHintNonActionable, violations[0].Code)
	assert.Contains(t, violations[0].Message, `cascade "t1/h" moved backwards`)
}

func TestHintActionability_DifferentCascadesNotCompared(t *testing.T) {
	before := passingState()
	before.Hints = actionableHint(2, "t1/h")
	after := passingState()
	after.Hints = actionableHint(0, "t2/h")

	doc := docWith(step("s1", trace.EventAdvanceHint, before, after))
	assert.Empty(t, HintActionability(doc))
}

func TestHintActionability_TeacherSingleAnswer(t *testing.T) {
	before := passingState()
	before.Options = append(before.Options, trace.Option{OptionID: "o3", Kind: trace.KindFrame, FrameID: "f-thank"})
	before.Affordances = append(before.Affordances, trace.AffordanceOpenHint)
	before.Hints = actionableHint(0, "t1/h")

	after := passingState()
	after.Options = []trace.Option{{OptionID: "o1", Kind: trace.KindFrame, FrameID: "f-corrected"}}
	after.Hints = &trace.Hint{
		Available:       true,
		CascadeStep:     1,
		CascadeStateKey: "t1/h",
		Payload: &trace.HintPayload{
			Effects: trace.Effects{
				Model:             &trace.ModelEffect{Options: []string{"我要一杯咖啡"}},
				TeacherCorrection: true,
			},
		},
	}

	doc := docWith(step("s1", trace.EventOpenHint, before, after))
	violations := HintActionability(doc)

	require.Len(t, violations, 1)
	assert.Equal(t, CodeTeacherSingleAnswer, violations[0].Code)
	assert.Equal(t, "s1", violations[0].StepID)
}

func TestHintActionability_SingleAnswerWithSlotAlternative(t *testing.T) {
	before := passingState()
	before.Hints = actionableHint(0, "t1/h")

	after := passingState()
	after.Options = []trace.Option{{OptionID: "o1", Kind: trace.KindFrame, FrameID: "f-corrected"}}
	after.Slots = trace.SlotState{
		Required:         []string{"DRINK"},
		SelectorsPresent: []string{"DRINK"},
	}
	after.Hints = &trace.Hint{
		Available:   true,
		CascadeStep: 1,
		Payload: &trace.HintPayload{
			Effects: trace.Effects{
				Model:             &trace.ModelEffect{},
				TeacherCorrection: true,
			},
		},
	}

	doc := docWith(step("s1", trace.EventOpenHint, before, after))
	assert.Empty(t, HintActionability(doc))
}

func TestHintActionability_SingleAnswerNeedsHintEvent(t *testing.T) {
	after := passingState()
	after.Options = []trace.Option{{OptionID: "o1", Kind: trace.KindFrame, FrameID: "f-corrected"}}
	after.Hints = &trace.Hint{
		Available: true,
		Payload: &trace.HintPayload{
			Effects: trace.Effects{
				Model:             &trace.ModelEffect{},
				TeacherCorrection: true,
			},
		},
	}

	doc := docWith(step("s1", trace.EventSelectOption, passingState(), after))
	assert.Empty(t, HintActionability(doc))
}

func TestHintActionability_SingleAnswerNeedsCorrectionFlag(t *testing.T) {
	before := passingState()
	before.Hints = actionableHint(0, "t1/h")

	after := passingState()
	after.Options = []trace.Option{{OptionID: "o1", Kind: trace.KindFrame, FrameID: "f-modeled"}}
	after.Hints = actionableHint(1, "t1/h")

	doc := docWith(step("s1", trace.EventOpenHint, before, after))
	assert.Empty(t, HintActionability(doc))
}
