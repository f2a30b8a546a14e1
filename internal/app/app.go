// Package app wires the registry, the program loader, and the execution
// engine into a runnable application instance.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/oplinkgo/internal/contextstore"
	"github.com/vk/oplinkgo/internal/ctxlog"
	"github.com/vk/oplinkgo/internal/inmemorystore"
	"github.com/vk/oplinkgo/internal/program"
	"github.com/vk/oplinkgo/internal/registry"
	"github.com/vk/oplinkgo/internal/resultstore"
)

// Loader turns configured program paths into an assembled program. The
// HCL loader is the only implementation shipped; the interface keeps the
// app agnostic to the program's on-disk format.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*program.Program, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	program  *program.Program
	contexts contextstore.Store
	results  resultstore.Store
}

// New is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger, registry,
// and stores. Registration and program-load failures are programmer or
// authoring errors discoverable at startup, so New panics on them; main
// recovers and exits with a message.
func New(outW io.Writer, cfg *Config, loader Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules()
	}
	for _, mod := range modules {
		if err := mod.Register(reg); err != nil {
			panic(fmt.Errorf("failed to register operations: %w", err))
		}
	}
	logger.Debug("All operation modules registered.", "modules", len(modules), "definitions", reg.Len())

	prog, err := loader.Load(ctx, cfg.ProgramPath)
	if err != nil {
		panic(fmt.Errorf("failed to load program: %w", err))
	}
	logger.Debug("Program loaded.", "calls", prog.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		program:  prog,
		contexts: inmemorystore.New(),
		results:  inmemorystore.NewResults(),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Program returns the loaded program. This is primarily for testing.
func (a *App) Program() *program.Program {
	return a.program
}

// Contexts returns the application's context store. This is primarily for testing.
func (a *App) Contexts() contextstore.Store {
	return a.contexts
}
