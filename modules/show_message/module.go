// Package show_message provides the built-in operation that surfaces a
// (possibly linked) text parameter through the host's notification
// capability. Together with set_context it exercises the link-then-execute
// path end to end.
package show_message

import (
	"context"
	"fmt"

	"github.com/vk/oplinkgo/internal/ctxlog"
	"github.com/vk/oplinkgo/internal/op"
	"github.com/vk/oplinkgo/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// run is the implementation of the 'show_message' operation.
func run(ctx context.Context, caps *op.Capabilities, call *op.Call, params op.ResolvedParams) (cty.Value, error) {
	text := params.String("text")

	logger := ctxlog.FromContext(ctx).With("op", "show_message")
	logger.Debug("Surfacing message.", "length", len(text))

	if caps.Notify == nil {
		return cty.NilVal, fmt.Errorf("show_message: host provides no notification capability")
	}
	if err := caps.Notify(ctx, text); err != nil {
		return cty.NilVal, err
	}
	return cty.StringVal(text), nil
}

// Register registers the operation definition with the registry.
func (m *Module) Register(r *registry.Registry) error {
	return r.Register(&op.Definition{
		ID:          "show_message",
		Description: "Surfaces a text parameter through the user-facing notification capability.",
		Params: []op.ParameterSpec{
			{Name: "text", Type: cty.String, Description: "Message text, literal or linked.", Required: true},
		},
		Run: run,
	})
}
