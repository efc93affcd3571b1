package gates

import "github.com/roach88/turnstile/internal/trace"

// Gate is a pure semantic check over a decoded document.
type Gate func(*trace.Document) []Violation

// Pipeline lists the gates in their stable reporting order.
// All gates run on every document; none short-circuits another.
var Pipeline = []Gate{
	ForwardPath,
	ToggleAffordances,
	ScaffoldingAffordances,
	HintActionability,
	OptionStructure,
}

// Run evaluates every gate against the document and returns the merged
// violation list in gate order. The result is deterministic for a given
// document.
func Run(doc *trace.Document) []Violation {
	var all []Violation
	for _, gate := range Pipeline {
		all = append(all, gate(doc)...)
	}
	return all
}
