package error_handling_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/oplinkgo/internal/op"
	"github.com/vk/oplinkgo/internal/testutil"
)

// TestUnknownOperation runs a program referencing an operation nobody
// registered and expects a clean execution failure, not a panic.
func TestUnknownOperation(t *testing.T) {
	programHCL := `
		call "no_such_op" "x" {
			params {
				anything = "goes"
			}
		}
	`

	result := testutil.RunProgramTest(t, programHCL)

	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, op.ErrUnknownOperation)
	assert.Contains(t, result.Err.Error(), "no_such_op")
}

// TestMissingRequiredParameter omits a required parameter entirely.
func TestMissingRequiredParameter(t *testing.T) {
	programHCL := `
		call "show_message" "silent" {
		}
	`

	result := testutil.RunProgramTest(t, programHCL)

	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, op.ErrInvalidCall)
	assert.Contains(t, result.Err.Error(), "missing required parameter")
	assert.Contains(t, result.Err.Error(), "text")
}

// TestUndeclaredParameter supplies a parameter the operation's schema
// does not declare.
func TestUndeclaredParameter(t *testing.T) {
	programHCL := `
		call "show_message" "chatty" {
			params {
				text  = "hi"
				extra = "nope"
			}
		}
	`

	result := testutil.RunProgramTest(t, programHCL)

	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, op.ErrInvalidCall)
	assert.Contains(t, result.Err.Error(), "undeclared parameter")
}

// TestLinkToMissingContextKey links a required parameter to a context
// key that nothing ever wrote. Resolution yields no value, so the call
// must be rejected before the implementation runs.
func TestLinkToMissingContextKey(t *testing.T) {
	programHCL := `
		call "show_message" "hello" {
			link "text" {
				context_key = "never_written"
			}
		}
	`

	result := testutil.RunProgramTest(t, programHCL)

	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, op.ErrInvalidCall)
	assert.Contains(t, result.Err.Error(), "resolved to no value")
	assert.NotContains(t, result.Output, "💬")
}

// TestLinkToUnknownCallResult links to a call id that never produced a
// result.
func TestLinkToUnknownCallResult(t *testing.T) {
	programHCL := `
		call "show_message" "hello" {
			link "text" {
				from_call = "call.set_context.never_ran"
			}
		}
	`

	result := testutil.RunProgramTest(t, programHCL)

	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, op.ErrUnresolvedLink)
}

// TestFailFast ensures that a failing call stops the program and later
// calls never run.
func TestFailFast(t *testing.T) {
	programHCL := `
		call "show_message" "broken" {
		}

		call "set_context" "after" {
			params {
				key   = "message"
				value = "unreached"
			}
		}
	`

	result := testutil.RunProgramTest(t, programHCL)

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), `call "call.show_message.broken" failed`)

	value, found, err := result.App.Contexts().Get(context.Background(), "message")
	require.NoError(t, err)
	assert.False(t, found, "downstream call must not have run, got %v", value)
}

// TestStartupFailure_BadSyntax feeds the loader an unparseable program.
func TestStartupFailure_BadSyntax(t *testing.T) {
	result := testutil.RunProgramTest(t, `call "set_context" {`)

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "failed to load program")
}

// TestStartupFailure_ConflictingLink feeds the loader a call that binds
// the same parameter both literally and through a link.
func TestStartupFailure_ConflictingLink(t *testing.T) {
	programHCL := `
		call "show_message" "conflicted" {
			params {
				text = "literal"
			}
			link "text" {
				context_key = "message"
			}
		}
	`

	result := testutil.RunProgramTest(t, programHCL)

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "failed to load program")
}
