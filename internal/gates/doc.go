// Package gates implements the five semantic invariant checks run against
// a decoded trace document.
//
// Each gate is a pure function from a document to a list of violations.
// The gates are independent: the pipeline always evaluates all five and
// reports every failing code with the offending step ids, never stopping
// at the first failure. A single run therefore surfaces the complete
// defect list. Running the pipeline twice on the same document yields an
// identical violation list.
//
// The gates, in pipeline order:
//
//	A  forward-path guarantee        DEAD_STATE_NO_FORWARD_PATH
//	B  modality-toggle preservation  TOGGLE_AFFORDANCE_DROP
//	C  scaffolding non-amputation    SCAFFOLDING_AFFORDANCE_DROP
//	D  hint actionability            HINT_NO_EFFECTS_BLOCK,
//	                                 HINT_NON_ACTIONABLE,
//	                                 TEACHER_SINGLE_ANSWER
//	E  no silent flattening          CONTRACT_OPTION_FLATTENED,
//	                                 SLOT_UNEXECUTABLE
package gates
