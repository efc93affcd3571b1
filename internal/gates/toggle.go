package gates

import (
	"fmt"

	"github.com/roach88/turnstile/internal/trace"
)

// ToggleAffordances is Gate B: switching input modality is a presentation
// change, not a capability change.
//
// Across every TOGGLE_INPUT_MODE step, what_can_i_say must be present on
// both ends, and if hints were available before the toggle, open_hint must
// still be offered after it.
func ToggleAffordances(doc *trace.Document) []Violation {
	var out []Violation
	for i := range doc.Steps {
		step := &doc.Steps[i]
		if step.Event.Type != trace.EventToggleInputMode {
			continue
		}

		if !step.Before.HasAffordance(trace.AffordanceWhatCanISay) {
			out = append(out, Violation{
				Code:    CodeToggleAffordanceDrop,
				StepID:  step.StepID,
				Message: fmt.Sprintf("%s: what_can_i_say missing before modality toggle", step.StepID),
			})
		}
		if !step.After.HasAffordance(trace.AffordanceWhatCanISay) {
			out = append(out, Violation{
				Code:    CodeToggleAffordanceDrop,
				StepID:  step.StepID,
				Message: fmt.Sprintf("%s: modality toggle dropped what_can_i_say", step.StepID),
			})
		}

		if step.Before.HintsAvailable() && !step.After.HasAffordance(trace.AffordanceOpenHint) {
			out = append(out, Violation{
				Code:    CodeToggleAffordanceDrop,
				StepID:  step.StepID,
				Message: fmt.Sprintf("%s: modality toggle dropped open_hint despite available hints", step.StepID),
			})
		}
	}
	return out
}
