package runner

import (
	"fmt"
	"io"
	"path/filepath"
)

// Report aggregates per-document results for one batch run.
type Report struct {
	BaseDir string           `json:"base_dir"`
	Results []DocumentResult `json:"results"`
	Passed  int              `json:"passed"`
	Failed  int              `json:"failed"`
	Total   int              `json:"total"`
}

// Add appends a document result and updates the counters.
func (rep *Report) Add(result DocumentResult) {
	rep.Results = append(rep.Results, result)
	rep.Total++
	if result.Pass {
		rep.Passed++
	} else {
		rep.Failed++
	}
}

// Ok reports whether every document passed every gate.
func (rep *Report) Ok() bool {
	return rep.Failed == 0
}

// WriteText renders the per-document summary followed by the aggregate
// line. The layout is stable; CI logs and the golden tests depend on it.
func (rep *Report) WriteText(w io.Writer) {
	for _, result := range rep.Results {
		name := filepath.Base(result.Path)
		if result.Pass {
			fmt.Fprintf(w, "✓ %s\n", name)
			continue
		}

		fmt.Fprintf(w, "✗ %s\n", name)
		if result.SchemaError != "" {
			fmt.Fprintf(w, "  %s\n", result.SchemaError)
			continue
		}
		for _, v := range result.Violations {
			fmt.Fprintf(w, "  %s\n", v)
		}
	}

	fmt.Fprintf(w, "\n%d/%d passed\n", rep.Passed, rep.Total)
}
