// Package set_context provides the built-in operation that writes a
// literal value into the shared context store. Downstream calls pick the
// value up through context-key links.
package set_context

import (
	"context"

	"github.com/vk/oplinkgo/internal/ctxlog"
	"github.com/vk/oplinkgo/internal/op"
	"github.com/vk/oplinkgo/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// run is the implementation of the 'set_context' operation.
func run(ctx context.Context, caps *op.Capabilities, call *op.Call, params op.ResolvedParams) (cty.Value, error) {
	key := params.String("key")
	value := params.Value("value")

	logger := ctxlog.FromContext(ctx).With("op", "set_context", "key", key)
	logger.Debug("Writing value into context store.")

	if err := caps.Contexts.Set(ctx, key, value); err != nil {
		return cty.NilVal, err
	}
	return value, nil
}

// Register registers the operation definition with the registry.
func (m *Module) Register(r *registry.Registry) error {
	return r.Register(&op.Definition{
		ID:          "set_context",
		Description: "Writes a literal value into the shared context store under a given key.",
		Params: []op.ParameterSpec{
			{Name: "key", Type: cty.String, Description: "Context key to write.", Required: true},
			{Name: "value", Type: cty.String, Description: "Value to store.", Required: true},
		},
		Run: run,
	})
}
