package op

import "github.com/zclconf/go-cty/cty"

// ResolvedParams holds a call's parameters after link resolution, default
// application, and schema-checked type conversion. Keys are parameter
// names; values conform to the declared ParameterSpec types.
type ResolvedParams map[string]cty.Value

// Has reports whether a non-null value is present for name.
func (p ResolvedParams) Has(name string) bool {
	v, ok := p[name]
	return ok && v != cty.NilVal && !v.IsNull()
}

// Value returns the raw value for name, or cty.NilVal when absent.
func (p ResolvedParams) Value(name string) cty.Value {
	return p[name]
}

// String returns the string value for name, or "" when absent or null.
func (p ResolvedParams) String(name string) string {
	if !p.Has(name) {
		return ""
	}
	return p[name].AsString()
}

// Number returns the numeric value for name as a float64, or 0 when
// absent or null.
func (p ResolvedParams) Number(name string) float64 {
	if !p.Has(name) {
		return 0
	}
	f, _ := p[name].AsBigFloat().Float64()
	return f
}

// Bool returns the boolean value for name, or false when absent or null.
func (p ResolvedParams) Bool(name string) bool {
	if !p.Has(name) {
		return false
	}
	return p[name].True()
}
