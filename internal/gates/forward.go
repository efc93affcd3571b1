package gates

import (
	"fmt"

	"github.com/roach88/turnstile/internal/trace"
)

// ForwardPath is Gate A: every step must leave the user a way to proceed.
//
// A forward path exists iff the state has at least one option, or some
// required unfilled slot has an executable fill path, or a hint is
// available together with the open_hint affordance. A state with none of
// the three is a dead state.
func ForwardPath(doc *trace.Document) []Violation {
	var out []Violation
	for i := range doc.Steps {
		step := &doc.Steps[i]
		if hasForwardPath(&step.After) {
			continue
		}
		out = append(out, Violation{
			Code:    CodeDeadState,
			StepID:  step.StepID,
			Message: fmt.Sprintf("after state of %s has no options, no executable slot, and no reachable hint", step.StepID),
		})
	}
	return out
}

func hasForwardPath(s *trace.TurnState) bool {
	if len(s.Options) > 0 {
		return true
	}
	for _, name := range s.Slots.UnfilledRequired() {
		if s.Slots.HasSelector(name) {
			return true
		}
	}
	return s.HintsAvailable() && s.HasAffordance(trace.AffordanceOpenHint)
}
