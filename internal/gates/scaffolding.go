package gates

import (
	"fmt"

	"github.com/roach88/turnstile/internal/trace"
)

// ScaffoldingAffordances is Gate C: narrowing scaffolding may shrink the
// options list but must never remove the user's ability to ask for help.
//
// A step narrows when the after level ranks below the before level
// (HIGH→MED, MED→LOW, or HIGH→LOW). After narrowing, what_can_i_say must
// remain; and when the narrowing directly follows a user-uncertainty
// signal, open_hint must also remain if it was available before.
func ScaffoldingAffordances(doc *trace.Document) []Violation {
	var out []Violation
	for i := range doc.Steps {
		step := &doc.Steps[i]
		if !step.Before.ScaffoldingLevel.NarrowsTo(step.After.ScaffoldingLevel) {
			continue
		}

		if !step.After.HasAffordance(trace.AffordanceWhatCanISay) {
			out = append(out, Violation{
				Code:   CodeScaffoldingAffordanceDrop,
				StepID: step.StepID,
				Message: fmt.Sprintf("%s: narrowing %s→%s removed what_can_i_say",
					step.StepID, step.Before.ScaffoldingLevel, step.After.ScaffoldingLevel),
			})
		}

		if i > 0 && doc.Steps[i-1].Event.Type == trace.EventSignalUncertainty &&
			step.Before.HintsAvailable() &&
			!step.After.HasAffordance(trace.AffordanceOpenHint) {
			out = append(out, Violation{
				Code:   CodeScaffoldingAffordanceDrop,
				StepID: step.StepID,
				Message: fmt.Sprintf("%s: narrowing after uncertainty signal removed open_hint",
					step.StepID),
			})
		}
	}
	return out
}
