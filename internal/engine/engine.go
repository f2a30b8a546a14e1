// Package engine validates, resolves, and executes operation calls.
//
// One Run invocation is one linear validate → resolve → decode → invoke
// pipeline. The engine performs no internal parallelism, imposes no
// timeout of its own, and keeps no per-call state beyond recording each
// successful result for later call-result links. Cancellation, if any, is
// the concern of the context and the capabilities handed to
// implementations.
package engine

import (
	"context"
	"fmt"

	"github.com/vk/oplinkgo/internal/contextstore"
	"github.com/vk/oplinkgo/internal/ctxlog"
	"github.com/vk/oplinkgo/internal/op"
	"github.com/vk/oplinkgo/internal/registry"
	"github.com/vk/oplinkgo/internal/resolver"
	"github.com/vk/oplinkgo/internal/resultstore"
	"github.com/zclconf/go-cty/cty"
)

// Engine orchestrates call execution against a populated registry.
type Engine struct {
	registry *registry.Registry
	contexts contextstore.Store
	results  resultstore.Store
}

// New creates an engine. The registry must already be populated; the
// engine treats it as read-only.
func New(reg *registry.Registry, contexts contextstore.Store, results resultstore.Store) *Engine {
	return &Engine{
		registry: reg,
		contexts: contexts,
		results:  results,
	}
}

// Run executes a single call: it looks up the definition, validates the
// call, resolves linked parameters against the current store contents,
// decodes them against the schema, and invokes the implementation with
// the injected capabilities.
//
// Validation failures are returned as op.ErrUnknownOperation or
// op.ErrInvalidCall so callers have one failure channel regardless of
// whether the problem was structural or semantic. Implementation errors
// propagate unchanged; the engine adds no wrapping, preserving the
// original error identity for logging.
//
// On success the result is recorded in the result store under the call id
// and returned.
func (e *Engine) Run(ctx context.Context, caps *op.Capabilities, call *op.Call) (cty.Value, error) {
	logger := ctxlog.FromContext(ctx).With("call", call.ID, "op", call.OpID)
	logger.Info("▶️ Running operation call")

	def, ok := e.registry.Get(call.OpID)
	if !ok {
		return cty.NilVal, fmt.Errorf("%w: %q", op.ErrUnknownOperation, call.OpID)
	}

	// Re-validates existence on purpose: a single path handles both
	// "doesn't exist" and "exists but malformed".
	if msg := e.registry.ValidateCall(call); msg != "" {
		return cty.NilVal, fmt.Errorf("%w: %s", op.ErrInvalidCall, msg)
	}

	resolved, err := resolver.Resolve(ctx, call, e.contexts, e.results)
	if err != nil {
		return cty.NilVal, err
	}

	params, err := decodeParams(def, call, resolved)
	if err != nil {
		return cty.NilVal, err
	}
	logger.Debug("Call parameters resolved and decoded.", "count", len(params))

	result, err := def.Run(ctx, caps, call, params)
	if err != nil {
		return cty.NilVal, err
	}

	if err := e.results.SetResult(ctx, call.ID, result); err != nil {
		return cty.NilVal, fmt.Errorf("recording result of call %q: %w", call.ID, err)
	}

	logger.Info("✅ Operation call finished")
	return result, nil
}
