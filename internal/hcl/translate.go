package hcl

import (
	"context"
	"fmt"

	"github.com/vk/oplinkgo/internal/op"
	"github.com/vk/oplinkgo/internal/schema"
)

// translateCall converts an HCL call block into the agnostic call model.
// The call id is derived hierarchically from the block labels, mirroring
// the block path in the source file.
func (l *Loader) translateCall(ctx context.Context, block *schema.CallBlock) (*op.Call, error) {
	id := fmt.Sprintf("call.%s.%s", block.OpType, block.Name)

	params, err := l.extractLiteralParams(ctx, id, block.Params)
	if err != nil {
		return nil, err
	}

	literal := make(map[string]struct{}, len(params))
	for _, p := range params {
		literal[p.Name] = struct{}{}
	}

	seenLinks := make(map[string]struct{}, len(block.Links))
	for _, link := range block.Links {
		if _, dup := seenLinks[link.Param]; dup {
			return nil, fmt.Errorf("call %q declares two links for parameter %q", id, link.Param)
		}
		seenLinks[link.Param] = struct{}{}

		if _, both := literal[link.Param]; both {
			return nil, fmt.Errorf("call %q sets parameter %q both literally and via a link", id, link.Param)
		}

		p := op.Param{Name: link.Param}
		switch {
		case link.ContextKey != "" && link.FromCall != "":
			return nil, fmt.Errorf("call %q link %q sets both context_key and from_call", id, link.Param)
		case link.ContextKey != "":
			p.Link = op.ContextKeyLink{Key: link.ContextKey}
		case link.FromCall != "":
			p.Link = op.CallResultLink{CallID: link.FromCall}
		default:
			return nil, fmt.Errorf("call %q link %q sets neither context_key nor from_call", id, link.Param)
		}
		params = append(params, p)
	}

	return &op.Call{
		ID:          id,
		OpID:        block.OpType,
		Description: block.Description,
		Params:      params,
	}, nil
}

// extractLiteralParams evaluates the attributes of a call's params block.
// Program files carry literal values only; anything dynamic must go
// through a link block, so attributes are evaluated with no variable
// scope.
func (l *Loader) extractLiteralParams(ctx context.Context, callID string, block *schema.CallParams) ([]op.Param, error) {
	if block == nil {
		return nil, nil
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("call %q has an invalid params block: %w", callID, diags)
	}

	params := make([]op.Param, 0, len(attrs))
	for name, attr := range attrs {
		value, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("call %q parameter %q must be a literal value: %w", callID, name, diags)
		}
		params = append(params, op.Param{Name: name, Value: value})
	}
	return params, nil
}
