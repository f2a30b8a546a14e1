// Package testutil provides shared helpers for integration-style tests:
// a thread-safe log buffer, a program-file harness, and recording test
// operations.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/oplinkgo/internal/app"
	"github.com/vk/oplinkgo/internal/hcl"
	"github.com/vk/oplinkgo/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output string
	Err    error
	App    *app.App
}

// RunProgramTest writes the given HCL program to a temp file, builds a
// full app around it (with the given modules, or the core set when none
// are given), runs it, and captures output. Startup panics are recovered
// into Err so tests can assert on authoring mistakes.
func RunProgramTest(t *testing.T, programHCL string, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunProgramTestWithContext(context.Background(), t, programHCL, modules...)
}

// RunProgramTestWithContext is RunProgramTest with a caller-provided context.
func RunProgramTestWithContext(ctx context.Context, t *testing.T, programHCL string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	programPath := filepath.Join(tmpDir, "program.hcl")
	require.NoError(t, os.WriteFile(programPath, []byte(programHCL), 0644))

	appConfig, err := app.NewConfig(app.Config{
		ProgramPath: programPath,
		LogLevel:    "debug",
		LogFormat:   "text",
	})
	require.NoError(t, err)

	output := &SafeBuffer{}
	result := &HarnessResult{}

	func() {
		defer func() {
			if r := recover(); r != nil {
				if err, ok := r.(error); ok {
					result.Err = err
				} else {
					result.Err = &startupPanic{value: r}
				}
			}
		}()
		result.App = app.New(output, appConfig, hcl.NewLoader(), modules...)
	}()

	if result.Err == nil {
		result.Err = result.App.Run(ctx)
	}

	result.Output = output.String()
	return result
}

// startupPanic wraps a non-error panic value recovered during app startup.
type startupPanic struct {
	value any
}

func (p *startupPanic) Error() string {
	return fmt.Sprintf("startup panic: %v", p.value)
}
