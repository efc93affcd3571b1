// Package runner enumerates a directory of trace documents and runs each
// through the schema validator and the gate pipeline, accumulating a
// report suitable as a CI gate.
//
// Documents are processed sequentially in sorted path order so the report
// is deterministic and stable across runs.
package runner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/roach88/turnstile/internal/gates"
	"github.com/roach88/turnstile/internal/schema"
)

// DocumentResult is the outcome for a single trace document.
type DocumentResult struct {
	Path        string             `json:"path"`
	Pass        bool               `json:"pass"`
	SchemaError string             `json:"schema_error,omitempty"`
	Violations  []gates.Violation  `json:"violations,omitempty"`
}

// Codes returns the distinct violation codes observed for this document.
// A schema failure reports only TRACE_SCHEMA_INVALID.
func (r *DocumentResult) Codes() []string {
	if r.SchemaError != "" {
		return []string{schema.Code}
	}
	codes := gates.Codes(r.Violations)
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = string(c)
	}
	return out
}

// Runner checks trace documents against the contract and the gates.
type Runner struct {
	validator *schema.Validator
}

// New creates a Runner with a freshly compiled contract.
func New() (*Runner, error) {
	v, err := schema.New()
	if err != nil {
		return nil, err
	}
	return &Runner{validator: v}, nil
}

// CheckFile validates one document: schema first, then all five gates.
// A schema failure stops the pipeline for that document and reports only
// TRACE_SCHEMA_INVALID.
func (r *Runner) CheckFile(path string) (DocumentResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DocumentResult{}, fmt.Errorf("failed to read trace document: %w", err)
	}
	return r.CheckBytes(path, data), nil
}

// CheckBytes validates raw document bytes. The path is used only for
// reporting.
func (r *Runner) CheckBytes(path string, data []byte) DocumentResult {
	result := DocumentResult{Path: path}

	doc, err := r.validator.Validate(filepath.Base(path), data)
	if err != nil {
		var schemaErr *schema.Error
		if errors.As(err, &schemaErr) {
			result.SchemaError = schemaErr.Error()
		} else {
			result.SchemaError = fmt.Sprintf("%s: %v", schema.Code, err)
		}
		return result
	}

	result.Violations = gates.Run(doc)
	result.Pass = len(result.Violations) == 0
	return result
}

// RunDir checks every .json document under baseDir and returns the
// aggregated report. Returns an error only for I/O problems; conformance
// failures are reported through the Report.
func (r *Runner) RunDir(baseDir string) (*Report, error) {
	files, err := findTraceFiles(baseDir)
	if err != nil {
		return nil, err
	}

	report := &Report{BaseDir: baseDir}
	for _, path := range files {
		result, err := r.CheckFile(path)
		if err != nil {
			return nil, err
		}
		report.Add(result)
	}
	return report, nil
}

// findTraceFiles collects all .json files under dir, sorted for
// deterministic output.
func findTraceFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("trace directory not found: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".json" {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk trace directory: %w", err)
	}

	sort.Strings(files)
	return files, nil
}
