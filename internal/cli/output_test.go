package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "3 document(s) failed")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad flag")))
	assert.Equal(t, ExitCommandError, GetExitCode(errors.New("plain error")))
}

func TestGetExitCode_Wrapped(t *testing.T) {
	err := fmt.Errorf("context: %w", NewExitError(ExitFailure, "inner"))
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestExitError_Error(t *testing.T) {
	plain := NewExitError(ExitFailure, "conformance failed")
	assert.Equal(t, "conformance failed", plain.Error())

	wrapped := &ExitError{Code: ExitCommandError, Message: "open db", Err: errors.New("locked")}
	assert.Equal(t, "open db: locked", wrapped.Error())
	assert.Equal(t, "locked", wrapped.Unwrap().Error())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, Response{
		Status: "error",
		Error:  &ResponseError{Code: "E_CONFORMANCE_FAILED", Message: "1 document(s) failed"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"status": "error"`)
	assert.Contains(t, out, `"code": "E_CONFORMANCE_FAILED"`)
}
