// Package fixture runs the curated trace corpus against the checker and
// compares observed outcomes with the labels embedded in each fixture.
//
// A fixture whose observed result diverges from its label is a regression
// in the checker itself, not an ordinary document failure, and is
// surfaced separately in the report.
package fixture

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/roach88/turnstile/internal/runner"
	"github.com/roach88/turnstile/internal/trace"
)

// Result is the outcome of replaying one labeled fixture.
type Result struct {
	Path     string   `json:"path"`
	Expected *trace.Expectation `json:"expected,omitempty"`
	Observed runner.DocumentResult `json:"observed"`

	// Match is true when the observed outcome reproduces the label
	// exactly: same pass/fail result and, for fail fixtures, the same
	// violation code set.
	Match bool `json:"match"`

	// Detail explains a mismatch.
	Detail string `json:"detail,omitempty"`
}

// Suite aggregates fixture results.
type Suite struct {
	Results     []Result `json:"results"`
	Matched     int      `json:"matched"`
	Regressions int      `json:"regressions"`
	Total       int      `json:"total"`
}

// Ok reports whether every fixture reproduced its label.
func (s *Suite) Ok() bool {
	return s.Regressions == 0
}

// RunDir replays every fixture under dir and returns the suite outcome.
func RunDir(r *runner.Runner, dir string) (*Suite, error) {
	files, err := findFixtures(dir)
	if err != nil {
		return nil, err
	}

	suite := &Suite{}
	for _, path := range files {
		result, err := runOne(r, path)
		if err != nil {
			return nil, err
		}
		suite.Results = append(suite.Results, result)
		suite.Total++
		if result.Match {
			suite.Matched++
		} else {
			suite.Regressions++
		}
	}
	return suite, nil
}

func runOne(r *runner.Runner, path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read fixture: %w", err)
	}

	result := Result{
		Path:     path,
		Expected: readExpectation(data),
		Observed: r.CheckBytes(path, data),
	}
	result.Match, result.Detail = compare(result.Expected, &result.Observed)
	return result, nil
}

// readExpectation extracts the embedded label without full decoding, so
// labels survive even on fixtures that are deliberately schema-invalid.
func readExpectation(data []byte) *trace.Expectation {
	var partial struct {
		Expected *trace.Expectation `json:"expected"`
	}
	if err := json.Unmarshal(data, &partial); err != nil {
		return nil
	}
	return partial.Expected
}

// compare checks the observed outcome against the label.
func compare(expected *trace.Expectation, observed *runner.DocumentResult) (bool, string) {
	if expected == nil {
		return false, "fixture carries no expected label"
	}

	switch expected.Result {
	case trace.ExpectPass:
		if observed.Pass {
			return true, ""
		}
		return false, fmt.Sprintf("labeled PASS but failed with %v", observed.Codes())

	case trace.ExpectFail:
		if observed.Pass {
			return false, fmt.Sprintf("labeled FAIL (%v) but passed", expected.ErrorCodes)
		}
		got := observed.Codes()
		if !sameCodeSet(expected.ErrorCodes, got) {
			return false, fmt.Sprintf("labeled FAIL with %v but observed %v", expected.ErrorCodes, got)
		}
		return true, ""

	default:
		return false, fmt.Sprintf("unknown expected result %q", expected.Result)
	}
}

// sameCodeSet compares code sets ignoring order and duplicates.
func sameCodeSet(want, got []string) bool {
	return fmt.Sprint(normalize(want)) == fmt.Sprint(normalize(got))
}

func normalize(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	var out []string
	for _, c := range codes {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}

// findFixtures returns all .json fixtures under dir in sorted order.
func findFixtures(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("fixture directory not found: %w", err)
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk fixture directory: %w", err)
	}

	sort.Strings(files)
	return files, nil
}
