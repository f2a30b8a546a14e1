package app

import (
	"context"
	"fmt"

	"github.com/vk/oplinkgo/internal/ctxlog"
	"github.com/vk/oplinkgo/internal/engine"
	"github.com/vk/oplinkgo/internal/op"
)

// Run executes the loaded program front to back.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.program.Len() == 0 {
		a.logger.Warn("Program contains no calls, execution not required.")
		return nil
	}

	eng := engine.New(a.registry, a.contexts, a.results)
	caps := &op.Capabilities{
		Contexts: a.contexts,
		Notify:   a.notify,
	}

	if err := eng.RunProgram(ctx, caps, a.program); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// notify is the CLI's user-facing notification surface: messages go to the
// application's output writer.
func (a *App) notify(ctx context.Context, message string) error {
	_, err := fmt.Fprintf(a.outW, "💬 %s\n", message)
	return err
}
