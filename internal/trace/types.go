package trace

// Document is one exported session.
//
// Steps is the event order as observed by the client and must never be
// reordered: several gates reason about transitions between consecutive
// steps, not isolated states.
type Document struct {
	TraceVersion string       `json:"trace_version"`
	TraceID      string       `json:"trace_id"`
	CreatedAt    string       `json:"created_at"`
	AppBuild     AppBuild     `json:"app_build"`
	Locale       string       `json:"locale"`
	UserProfile  UserProfile  `json:"user_profile"`
	Scenario     Scenario     `json:"scenario"`
	Steps        []Step       `json:"steps"`
	Expected     *Expectation `json:"expected,omitempty"` // fixture label, ignored outside the fixture runner
}

// AppBuild records build provenance of the client that captured the trace.
type AppBuild struct {
	Repo        string `json:"repo"`
	Commit      string `json:"commit"`
	Environment string `json:"environment"`
}

// UserProfile is the anonymized profile of the session's user.
type UserProfile struct {
	AnonID string `json:"anon_id"`
	Cohort string `json:"cohort,omitempty"`
}

// Scenario describes the dialogue scenario the session ran.
type Scenario struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

// Step is one atomic transition. Before is not required to equal the
// previous step's After bit-for-bit; both ends are validated independently.
type Step struct {
	StepID string    `json:"step_id"`
	Event  Event     `json:"event"`
	Before TurnState `json:"before"`
	After  TurnState `json:"after"`
	Note   string    `json:"note,omitempty"`
}

// Event is the tagged record that triggered a step.
type Event struct {
	Type    EventType      `json:"type"`
	TS      string         `json:"ts"`
	Payload map[string]any `json:"payload,omitempty"`
}

// TurnState is a snapshot of one end of a transition.
type TurnState struct {
	TurnID           string           `json:"turn_id"`
	ScaffoldingLevel ScaffoldingLevel `json:"scaffolding_level"`
	InputMode        InputMode        `json:"input_mode"`
	Affordances      []Affordance     `json:"affordances"`
	Options          []Option         `json:"options"`
	Hints            *Hint            `json:"hints,omitempty"`
	Slots            SlotState        `json:"slots"`
	Diagnostic       *Diagnostic      `json:"diagnostic,omitempty"`
}

// HasAffordance reports whether the named capability is currently offered.
func (s *TurnState) HasAffordance(a Affordance) bool {
	for _, have := range s.Affordances {
		if have == a {
			return true
		}
	}
	return false
}

// HintsAvailable reports whether a hint can be opened from this state.
func (s *TurnState) HintsAvailable() bool {
	return s.Hints != nil && s.Hints.Available
}

// Option is one selectable response frame.
type Option struct {
	OptionID      string              `json:"option_id"`
	Kind          OptionKind          `json:"kind"`
	FrameID       string              `json:"frame_id"`
	RequiredSlots []string            `json:"required_slots,omitempty"`
	Tokens        []Token             `json:"tokens,omitempty"`
	SlotSelectors map[string][]string `json:"slot_selectors,omitempty"`
}

// CoversSlot reports whether the option's selectors offer candidate fill
// values for the named slot.
func (o *Option) CoversSlot(name string) bool {
	return len(o.SlotSelectors[name]) > 0
}

// Token is one ordered fragment of a sentence frame: either a literal
// string or a named slot to be filled.
type Token struct {
	Type  TokenType `json:"type"`
	Value string    `json:"value,omitempty"` // literal tokens
	Name  string    `json:"name,omitempty"`  // slot tokens
}

// SlotState tracks the required slots of a state, the subset already
// filled, and the subset with an executable fill mechanism.
type SlotState struct {
	Required         []string          `json:"required,omitempty"`
	Filled           map[string]string `json:"filled,omitempty"`
	SelectorsPresent []string          `json:"selectors_present,omitempty"`
}

// UnfilledRequired returns required slot names not yet filled, in the
// order they were declared.
func (s *SlotState) UnfilledRequired() []string {
	var out []string
	for _, name := range s.Required {
		if _, ok := s.Filled[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

// HasSelector reports whether the named slot has an executable fill path.
func (s *SlotState) HasSelector(name string) bool {
	for _, have := range s.SelectorsPresent {
		if have == name {
			return true
		}
	}
	return false
}

// Hint is the hint-cascade snapshot of a state.
//
// CascadeStateKey identifies which hint progression the step belongs to;
// it stays constant across consecutive advancing steps in the same cascade.
type Hint struct {
	Available       bool         `json:"available"`
	CascadeStep     int          `json:"cascade_step"`
	CascadeStateKey string       `json:"cascade_state_key,omitempty"`
	Payload         *HintPayload `json:"payload,omitempty"`
}

// HintPayload carries what the hint does.
type HintPayload struct {
	Text    string  `json:"text,omitempty"`
	Effects Effects `json:"effects"`
}

// Effects is the validated set of recognized hint effects. A hint is
// actionable only if at least one of the three dimensions is present.
// TeacherCorrection marks a modeled answer as an authoritative correction;
// it is a modifier, not an effect on its own.
type Effects struct {
	Narrow            *NarrowEffect    `json:"narrow,omitempty"`
	Structure         *StructureEffect `json:"structure,omitempty"`
	Model             *ModelEffect     `json:"model,omitempty"`
	TeacherCorrection bool             `json:"teacher_correction,omitempty"`
}

// Empty reports whether no recognized effect dimension is present.
func (e *Effects) Empty() bool {
	return e.Narrow == nil && e.Structure == nil && e.Model == nil
}

// NarrowEffect reduces the candidate space along one dimension.
type NarrowEffect struct {
	FramesAllowed  []string            `json:"frames_allowed,omitempty"`
	OptionsAllowed []string            `json:"options_allowed,omitempty"`
	SlotDomains    map[string][]string `json:"slot_domains,omitempty"`
}

// StructureEffect exposes a template with selectable slot values.
type StructureEffect struct {
	Template      []string            `json:"template,omitempty"`
	SlotSelectors map[string][]string `json:"slot_selectors,omitempty"`
}

// ModelEffect shows worked example answers.
type ModelEffect struct {
	Options []string `json:"options,omitempty"`
}

// Diagnostic is the mode/confidence pair for assessment-mode sessions.
type Diagnostic struct {
	Mode       string  `json:"mode"`
	Confidence float64 `json:"confidence"`
}

// Expectation is the fixture label embedded in corpus documents: the
// outcome the checker is expected to produce for this trace.
type Expectation struct {
	Result     string   `json:"result"` // "PASS" or "FAIL"
	ErrorCodes []string `json:"error_codes,omitempty"`
}

// Fixture result labels.
const (
	ExpectPass = "PASS"
	ExpectFail = "FAIL"
)
