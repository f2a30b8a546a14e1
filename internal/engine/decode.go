package engine

import (
	"fmt"

	"github.com/vk/oplinkgo/internal/op"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// decodeParams turns resolved parameters into the schema-checked value map
// handed to the implementation: defaults are applied for omitted
// parameters, every present value is converted to its declared type, and
// required parameters that resolved to null are rejected. All failures
// here happen before the implementation runs.
func decodeParams(def *op.Definition, call *op.Call, resolved []op.Param) (op.ResolvedParams, error) {
	byName := make(map[string]cty.Value, len(resolved))
	for _, p := range resolved {
		byName[p.Name] = p.Value
	}

	params := make(op.ResolvedParams, len(def.Params))
	for _, spec := range def.Params {
		value, supplied := byName[spec.Name]

		if !supplied && spec.Default != nil {
			value = *spec.Default
			supplied = true
		}

		if !supplied || value == cty.NilVal || value.IsNull() {
			if spec.Required {
				// A link to a missing context key lands here: it resolves
				// to null and only then fails the required check.
				return nil, fmt.Errorf("%w: call %q parameter %q resolved to no value", op.ErrInvalidCall, call.ID, spec.Name)
			}
			continue
		}

		converted, err := convert.Convert(value, spec.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: call %q parameter %q: expected %s: %v",
				op.ErrInvalidCall, call.ID, spec.Name, spec.Type.FriendlyName(), err)
		}
		params[spec.Name] = converted
	}

	return params, nil
}
