package trace

// EventType identifies what triggered a step. Closed vocabulary.
type EventType string

const (
	EventSelectOption       EventType = "SELECT_OPTION"
	EventFillSlot           EventType = "FILL_SLOT"
	EventSignalUncertainty  EventType = "SIGNAL_UNCERTAINTY"
	EventOpenHint           EventType = "OPEN_HINT"
	EventAdvanceHint        EventType = "ADVANCE_HINT"
	EventToggleInputMode    EventType = "TOGGLE_INPUT_MODE"
	EventSystemReprompt     EventType = "SYSTEM_REPROMPT"
	EventNarrowScaffolding  EventType = "SYSTEM_NARROW_SCAFFOLDING"
	EventShowModel          EventType = "SYSTEM_SHOW_MODEL"
	EventClarifyStructure   EventType = "SYSTEM_CLARIFY_STRUCTURE"
	EventEndTurn            EventType = "END_TURN"
)

// ValidEventTypes defines the allowed event types.
var ValidEventTypes = map[EventType]bool{
	EventSelectOption:      true,
	EventFillSlot:          true,
	EventSignalUncertainty: true,
	EventOpenHint:          true,
	EventAdvanceHint:       true,
	EventToggleInputMode:   true,
	EventSystemReprompt:    true,
	EventNarrowScaffolding: true,
	EventShowModel:         true,
	EventClarifyStructure:  true,
	EventEndTurn:           true,
}

// IsHintEvent reports whether the event opens or advances a hint cascade.
func (t EventType) IsHintEvent() bool {
	return t == EventOpenHint || t == EventAdvanceHint
}

// ScaffoldingLevel is the amount of structural guidance in a turn.
// Levels narrow monotonically within a turn: HIGH > MED > LOW.
type ScaffoldingLevel string

const (
	ScaffoldingHigh ScaffoldingLevel = "HIGH"
	ScaffoldingMed  ScaffoldingLevel = "MED"
	ScaffoldingLow  ScaffoldingLevel = "LOW"
)

// scaffoldingRank orders levels for narrowing comparison.
var scaffoldingRank = map[ScaffoldingLevel]int{
	ScaffoldingHigh: 3,
	ScaffoldingMed:  2,
	ScaffoldingLow:  1,
}

// NarrowsTo reports whether moving from l to next reduces scaffolding
// (HIGH→MED, MED→LOW, or HIGH→LOW).
func (l ScaffoldingLevel) NarrowsTo(next ScaffoldingLevel) bool {
	a, okA := scaffoldingRank[l]
	b, okB := scaffoldingRank[next]
	return okA && okB && b < a
}

// InputMode is the active input modality.
type InputMode string

const (
	InputTap  InputMode = "TAP"
	InputType InputMode = "TYPE"
)

// Affordance is a named capability currently available to the user.
type Affordance string

const (
	AffordanceWhatCanISay    Affordance = "what_can_i_say"
	AffordanceOpenHint       Affordance = "open_hint"
	AffordanceSelectOption   Affordance = "select_option"
	AffordanceSubmitFreeText Affordance = "submit_free_text"
)

// OptionKind discriminates option shapes.
type OptionKind string

const (
	KindFrame          OptionKind = "FRAME"
	KindFrameWithSlots OptionKind = "FRAME_WITH_SLOTS"
)

// TokenType discriminates sentence-frame fragments.
type TokenType string

const (
	TokenLiteral TokenType = "literal"
	TokenSlot    TokenType = "slot"
)
