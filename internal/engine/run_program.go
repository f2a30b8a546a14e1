package engine

import (
	"context"
	"fmt"

	"github.com/vk/oplinkgo/internal/ctxlog"
	"github.com/vk/oplinkgo/internal/op"
	"github.com/vk/oplinkgo/internal/program"
)

// RunProgram executes a program's calls in assembly order, failing fast on
// the first error. Results recorded by earlier calls are visible to the
// call-result links of later ones.
func (e *Engine) RunProgram(ctx context.Context, caps *op.Capabilities, prog *program.Program) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("🚀 Starting program execution.", "calls", prog.Len())

	for _, call := range prog.Calls() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := e.Run(ctx, caps, call); err != nil {
			return fmt.Errorf("call %q failed: %w", call.ID, err)
		}
	}

	logger.Info("🏁 Program execution finished.")
	return nil
}
