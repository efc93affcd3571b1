package gates

import "fmt"

// Code identifies a violation class. Codes are a user-visible contract
// consumed by CI and by the fixture corpus labels; they must stay stable.
type Code string

const (
	// CodeDeadState indicates a state with no way for the user to proceed.
	CodeDeadState Code = "DEAD_STATE_NO_FORWARD_PATH"

	// CodeToggleAffordanceDrop indicates a modality toggle removed a
	// capability it was required to preserve.
	CodeToggleAffordanceDrop Code = "TOGGLE_AFFORDANCE_DROP"

	// CodeScaffoldingAffordanceDrop indicates narrowing scaffolding
	// removed the user's ability to ask for help.
	CodeScaffoldingAffordanceDrop Code = "SCAFFOLDING_AFFORDANCE_DROP"

	// CodeHintNoEffects indicates an available hint with no recognized
	// effect.
	CodeHintNoEffects Code = "HINT_NO_EFFECTS_BLOCK"

	// CodeHintNonActionable indicates a hint cascade that moved backwards.
	CodeHintNonActionable Code = "HINT_NON_ACTIONABLE"

	// CodeTeacherSingleAnswer indicates a hint collapsed the turn into a
	// single authoritative corrected answer with no alternative path.
	CodeTeacherSingleAnswer Code = "TEACHER_SINGLE_ANSWER"

	// CodeOptionFlattened indicates a slot-bearing option degraded into
	// plain text.
	CodeOptionFlattened Code = "CONTRACT_OPTION_FLATTENED"

	// CodeSlotUnexecutable indicates a required, unfilled slot with no
	// executable fill mechanism.
	CodeSlotUnexecutable Code = "SLOT_UNEXECUTABLE"
)

// Violation is one gate finding, tagged with the offending step.
type Violation struct {
	Code    Code   `json:"code"`
	StepID  string `json:"step_id,omitempty"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	if v.StepID == "" {
		return fmt.Sprintf("%s: %s", v.Code, v.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", v.Code, v.StepID, v.Message)
}

// Codes returns the distinct violation codes in first-seen order.
func Codes(violations []Violation) []Code {
	seen := make(map[Code]bool, len(violations))
	var out []Code
	for _, v := range violations {
		if !seen[v.Code] {
			seen[v.Code] = true
			out = append(out, v.Code)
		}
	}
	return out
}
