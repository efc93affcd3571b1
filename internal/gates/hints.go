package gates

import (
	"fmt"

	"github.com/roach88/turnstile/internal/trace"
)

// HintActionability is Gate D: every hint must do something concrete.
//
// Three distinct checks:
//
//   - Any state offering a hint must carry a payload whose effects block
//     contains at least one recognized effect (narrow, structure, model).
//   - Within a cascade (states sharing a cascade_state_key), the cascade
//     step index must never move backwards.
//   - A hint step must not collapse the turn into a single authoritative
//     corrected answer with no alternative forward path. A hint may model
//     an answer, but must not become the sole path to completion.
func HintActionability(doc *trace.Document) []Violation {
	var out []Violation
	out = append(out, hintEffects(doc)...)
	out = append(out, cascadeMonotonicity(doc)...)
	out = append(out, teacherSingleAnswer(doc)...)
	return out
}

// hintEffects checks both ends of every step for available hints with a
// missing or empty effects block.
func hintEffects(doc *trace.Document) []Violation {
	var out []Violation
	for i := range doc.Steps {
		step := &doc.Steps[i]
		for _, end := range []struct {
			name  string
			state *trace.TurnState
		}{
			{"before", &step.Before},
			{"after", &step.After},
		} {
			if !end.state.HintsAvailable() {
				continue
			}
			payload := end.state.Hints.Payload
			if payload == nil || payload.Effects.Empty() {
				out = append(out, Violation{
					Code:    CodeHintNoEffects,
					StepID:  step.StepID,
					Message: fmt.Sprintf("%s: available hint in %s state has no recognized effects", step.StepID, end.name),
				})
			}
		}
	}
	return out
}

// cascadeMonotonicity walks the flattened state sequence (before, after,
// before, after, ...) and flags any adjacent pair in the same cascade
// whose step index decreases.
func cascadeMonotonicity(doc *trace.Document) []Violation {
	var out []Violation

	var prev *trace.Hint
	var prevStepID string
	for i := range doc.Steps {
		step := &doc.Steps[i]
		for _, state := range []*trace.TurnState{&step.Before, &step.After} {
			cur := state.Hints
			if cur == nil || cur.CascadeStateKey == "" {
				prev = cur
				continue
			}
			if prev != nil && prev.CascadeStateKey == cur.CascadeStateKey &&
				cur.CascadeStep < prev.CascadeStep {
				out = append(out, Violation{
					Code:   CodeHintNonActionable,
					StepID: step.StepID,
					Message: fmt.Sprintf("%s: cascade %q moved backwards (step %d after %d, last seen in %s)",
						step.StepID, cur.CascadeStateKey, cur.CascadeStep, prev.CascadeStep, prevStepID),
				})
			}
			prev = cur
			prevStepID = step.StepID
		}
	}
	return out
}

// teacherSingleAnswer flags hint steps that reduce the options list to
// exactly one teacher-corrected entry with no executable slot left as an
// alternative path. The authoritative-correction marker is the
// teacher_correction flag on the hint's effects block.
func teacherSingleAnswer(doc *trace.Document) []Violation {
	var out []Violation
	for i := range doc.Steps {
		step := &doc.Steps[i]
		if !step.Event.Type.IsHintEvent() {
			continue
		}
		after := &step.After
		if len(after.Options) != 1 || len(step.Before.Options) <= 1 {
			continue
		}
		hint := after.Hints
		if hint == nil || hint.Payload == nil || !hint.Payload.Effects.TeacherCorrection {
			continue
		}

		// An executable unfilled slot is still a sanctioned alternative.
		alternative := false
		for _, name := range after.Slots.UnfilledRequired() {
			if after.Slots.HasSelector(name) {
				alternative = true
				break
			}
		}
		if alternative {
			continue
		}

		out = append(out, Violation{
			Code:   CodeTeacherSingleAnswer,
			StepID: step.StepID,
			Message: fmt.Sprintf("%s: hint reduced options to a single teacher-corrected answer with no alternative path",
				step.StepID),
		})
	}
	return out
}
