package registry

import (
	"fmt"

	"github.com/vk/oplinkgo/internal/op"
	"github.com/zclconf/go-cty/cty"
)

// validateSchema checks that a definition's parameter schema is
// well-formed: every spec has a name and a primitive type, and names are
// unique within the definition.
func validateSchema(def *op.Definition) error {
	seen := make(map[string]struct{}, len(def.Params))
	for _, spec := range def.Params {
		if spec.Name == "" {
			return fmt.Errorf("%w: definition %q has a parameter with no name", op.ErrMalformedSchema, def.ID)
		}
		if spec.Type == cty.NilType {
			return fmt.Errorf("%w: definition %q parameter %q has no type", op.ErrMalformedSchema, def.ID, spec.Name)
		}
		if !spec.Type.IsPrimitiveType() {
			return fmt.Errorf("%w: definition %q parameter %q has non-primitive type %s", op.ErrMalformedSchema, def.ID, spec.Name, spec.Type.FriendlyName())
		}
		if _, dup := seen[spec.Name]; dup {
			return fmt.Errorf("%w: definition %q declares parameter %q twice", op.ErrMalformedSchema, def.ID, spec.Name)
		}
		seen[spec.Name] = struct{}{}
	}
	return nil
}

// ValidateCall checks a call against its definition and returns a
// human-readable message on failure, or the empty string on success.
// Error-as-value keeps the expected failure modes (unknown definition,
// missing required parameter, definition-specific rejection) on one code
// path that the engine converts to errors at the execution boundary.
func (r *Registry) ValidateCall(call *op.Call) string {
	def, ok := r.defs[call.OpID]
	if !ok {
		return fmt.Sprintf("operation %q is not registered", call.OpID)
	}

	supplied := make(map[string]struct{}, len(call.Params))
	for _, p := range call.Params {
		if _, dup := supplied[p.Name]; dup {
			return fmt.Sprintf("call %q supplies parameter %q twice", call.ID, p.Name)
		}
		supplied[p.Name] = struct{}{}

		if _, declared := def.Param(p.Name); !declared {
			return fmt.Sprintf("call %q supplies undeclared parameter %q", call.ID, p.Name)
		}
	}

	for _, spec := range def.Params {
		if !spec.Required || spec.Default != nil {
			continue
		}
		if _, ok := supplied[spec.Name]; !ok {
			return fmt.Sprintf("call %q is missing required parameter %q", call.ID, spec.Name)
		}
	}

	if def.ValidateParams != nil {
		if msg := def.ValidateParams(call.Params); msg != "" {
			return msg
		}
	}

	return ""
}
