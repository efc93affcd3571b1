package gates

import (
	"fmt"

	"github.com/roach88/turnstile/internal/trace"
)

// OptionStructure is Gate E: structured response options must never be
// silently degraded into unstructured text.
//
// An option with required slots must keep either its token sequence or a
// slot-selector map; absence of both is flattening. Independently, every
// required slot not yet filled must have an executable fill mechanism,
// either directly in the state's selectors_present set or covered by some
// option's slot selectors.
func OptionStructure(doc *trace.Document) []Violation {
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
			out = append(out, checkOptions(step.StepID, end.name, end.state)...)
			out = append(out, checkSlots(step.StepID, end.name, end.state)...)
		}
	}
	return out
}

func checkOptions(stepID, end string, s *trace.TurnState) []Violation {
	var out []Violation
	for j := range s.Options {
		opt := &s.Options[j]
		if len(opt.RequiredSlots) == 0 {
			continue
		}
		if len(opt.Tokens) > 0 || len(opt.SlotSelectors) > 0 {
			continue
		}
		out = append(out, Violation{
			Code:   CodeOptionFlattened,
			StepID: stepID,
			Message: fmt.Sprintf("%s: option %s in %s state requires slots %v but has neither tokens nor slot selectors",
				stepID, opt.OptionID, end, opt.RequiredSlots),
		})
	}
	return out
}

func checkSlots(stepID, end string, s *trace.TurnState) []Violation {
	var out []Violation
	for _, name := range s.Slots.UnfilledRequired() {
		if s.Slots.HasSelector(name) || slotCovered(s, name) {
			continue
		}
		out = append(out, Violation{
			Code:   CodeSlotUnexecutable,
			StepID: stepID,
			Message: fmt.Sprintf("%s: required slot %q in %s state has no executable fill path",
				stepID, name, end),
		})
	}
	return out
}

// slotCovered reports whether any option's selectors offer candidate fill
// values for the named slot.
func slotCovered(s *trace.TurnState, name string) bool {
	for j := range s.Options {
		if s.Options[j].CoversSlot(name) {
			return true
		}
	}
	return false
}
