// Package schema validates raw trace documents against the embedded CUE
// contract before any semantic gate runs.
//
// Validation is structural only: required fields, types, and the closed
// enum vocabularies. It reports the first offending field by path with the
// stable code TRACE_SCHEMA_INVALID. Semantic invariants live in the gates
// package.
package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
	"golang.org/x/text/language"

	"github.com/roach88/turnstile/internal/trace"
)

//go:embed trace.cue
var contractSource string

// Code is the stable identifier emitted for any structural failure.
const Code = "TRACE_SCHEMA_INVALID"

// Error describes the first offending field of a structurally invalid
// document.
type Error struct {
	Path    string // dotted path to the field, "" for document-level errors
	Message string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", Code, e.Path, e.Message)
}

// Validator checks candidate documents against the trace contract.
// A Validator is immutable after construction and safe for reuse across
// documents.
type Validator struct {
	ctx *cue.Context
	def cue.Value
}

// New compiles the embedded contract. Compilation can only fail if the
// embedded source is broken, so callers typically treat an error here as
// fatal.
func New() (*Validator, error) {
	ctx := cuecontext.New()

	root := ctx.CompileString(contractSource, cue.Filename("trace.cue"))
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("failed to compile trace contract: %w", err)
	}

	def := root.LookupPath(cue.ParsePath("#Document"))
	if !def.Exists() {
		return nil, fmt.Errorf("trace contract has no #Document definition")
	}

	return &Validator{ctx: ctx, def: def}, nil
}

// Validate checks raw bytes against the contract and, on success, returns
// the decoded document. On failure it returns a *Error carrying the path
// to the first offending field; no semantic gate should run afterwards.
func (v *Validator) Validate(filename string, data []byte) (*trace.Document, error) {
	expr, err := cuejson.Extract(filename, data)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("not valid JSON: %v", err)}
	}

	val := v.ctx.BuildExpr(expr)
	if err := val.Err(); err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to build document value: %v", err)}
	}

	unified := v.def.Unify(val)
	if err := unified.Validate(cue.Concrete(true), cue.Final()); err != nil {
		return nil, firstError(err)
	}

	doc, err := trace.Decode(data)
	if err != nil {
		// CUE accepted the document, so a decode failure here means the
		// contract and the Go types have drifted apart.
		return nil, &Error{Message: fmt.Sprintf("contract/type mismatch: %v", err)}
	}

	if _, err := language.Parse(doc.Locale); err != nil {
		return nil, &Error{Path: "locale", Message: fmt.Sprintf("not a valid BCP 47 tag: %q", doc.Locale)}
	}

	return doc, nil
}

// firstError converts a CUE validation error into a contract Error,
// keeping only the first offending field for a stable, readable report.
func firstError(err error) *Error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &Error{Message: err.Error()}
	}

	first := errs[0]
	format, args := first.Msg()
	return &Error{
		Path:    strings.Join(first.Path(), "."),
		Message: fmt.Sprintf(format, args...),
	}
}
