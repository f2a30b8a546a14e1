// Package env_vars provides the built-in operation that snapshots the
// process environment into the shared context store.
package env_vars

import (
	"context"
	"os"
	"strings"

	"github.com/vk/oplinkgo/internal/ctxlog"
	"github.com/vk/oplinkgo/internal/op"
	"github.com/vk/oplinkgo/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// run is the implementation of the 'env_vars' operation. It stores the
// environment (optionally filtered by prefix) as a map of strings under
// the given context key and returns the same map.
func run(ctx context.Context, caps *op.Capabilities, call *op.Call, params op.ResolvedParams) (cty.Value, error) {
	key := params.String("key")
	prefix := params.String("prefix")

	envMap := make(map[string]cty.Value)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) != 2 {
			continue
		}
		if prefix != "" && !strings.HasPrefix(pair[0], prefix) {
			continue
		}
		envMap[pair[0]] = cty.StringVal(pair[1])
	}

	value := cty.MapValEmpty(cty.String)
	if len(envMap) > 0 {
		value = cty.MapVal(envMap)
	}

	ctxlog.FromContext(ctx).Debug("Captured environment snapshot.", "op", "env_vars", "vars", len(envMap), "key", key)

	if err := caps.Contexts.Set(ctx, key, value); err != nil {
		return cty.NilVal, err
	}
	return value, nil
}

// Register registers the operation definition with the registry.
func (m *Module) Register(r *registry.Registry) error {
	return r.Register(&op.Definition{
		ID:          "env_vars",
		Description: "Snapshots the process environment into the context store.",
		Params: []op.ParameterSpec{
			{Name: "key", Type: cty.String, Description: "Context key to store the snapshot under.", Required: true},
			{Name: "prefix", Type: cty.String, Description: "Only include variables with this name prefix.", Required: false},
		},
		Run: run,
	})
}
