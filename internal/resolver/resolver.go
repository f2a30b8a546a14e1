// Package resolver turns parameter links into literal values immediately
// before execution.
//
// Resolution is pure with respect to its inputs plus the injected stores
// and performs no caching of its own: every resolution re-reads the
// backing stores, so two resolutions of the same call at different times
// may yield different values. The context store is shared mutable state
// the engine never assumes exclusive access to.
package resolver

import (
	"context"
	"fmt"

	"github.com/vk/oplinkgo/internal/contextstore"
	"github.com/vk/oplinkgo/internal/ctxlog"
	"github.com/vk/oplinkgo/internal/op"
	"github.com/vk/oplinkgo/internal/resultstore"
	"github.com/zclconf/go-cty/cty"
)

// Resolve returns a copy of the call's parameters with every link replaced
// by its current value. Literal parameters pass through unchanged.
//
// A context-key link whose key is absent resolves to a null value; the
// engine's decode step then rejects it if the parameter was required. A
// call-result link whose target call has no recorded result fails with
// op.ErrUnresolvedLink: an unbuilt dependency is an error, not a silent
// no-op.
func Resolve(ctx context.Context, call *op.Call, contexts contextstore.Store, results resultstore.Store) ([]op.Param, error) {
	logger := ctxlog.FromContext(ctx).With("call", call.ID)

	resolved := make([]op.Param, len(call.Params))
	for i, p := range call.Params {
		switch link := p.Link.(type) {
		case nil:
			resolved[i] = p

		case op.ContextKeyLink:
			value, found, err := contexts.Get(ctx, link.Key)
			if err != nil {
				return nil, fmt.Errorf("resolving parameter %q of call %q: %w", p.Name, call.ID, err)
			}
			if !found {
				logger.Debug("Context key not present, parameter resolves to null.", "param", p.Name, "key", link.Key)
				value = cty.NilVal
			}
			resolved[i] = op.Param{Name: p.Name, Value: value}

		case op.CallResultLink:
			value, found, err := results.GetResult(ctx, link.CallID)
			if err != nil {
				return nil, fmt.Errorf("resolving parameter %q of call %q: %w", p.Name, call.ID, err)
			}
			if !found {
				return nil, fmt.Errorf("%w: parameter %q of call %q links to %q", op.ErrUnresolvedLink, p.Name, call.ID, link.CallID)
			}
			resolved[i] = op.Param{Name: p.Name, Value: value}

		default:
			return nil, fmt.Errorf("parameter %q of call %q has unsupported link type %T", p.Name, call.ID, p.Link)
		}
	}

	return resolved, nil
}
