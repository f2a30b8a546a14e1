package op

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// ParameterSpec describes a single parameter accepted by a Definition.
// Only primitive types (string, number, bool) are allowed at the schema
// level; richer values travel through the context store instead.
type ParameterSpec struct {
	Name        string
	Type        cty.Type
	Description string
	Required    bool

	// Default is applied when a call omits the parameter entirely. A
	// parameter with a default never fails the required-presence check.
	Default *cty.Value
}

// RunFunc is the implementation of an operation. It receives the resolved,
// schema-checked parameters and the capability accessor for any
// side-effecting host calls. The returned value is recorded in the result
// store so later calls can link to it; return cty.NilVal when the
// operation has no meaningful result.
type RunFunc func(ctx context.Context, caps *Capabilities, call *Call, params ResolvedParams) (cty.Value, error)

// Definition is a registered, named capability with a parameter schema and
// an implementation. Definitions are created once at registration time and
// are immutable afterwards; they live for the process lifetime.
type Definition struct {
	ID          string
	Description string
	Params      []ParameterSpec
	Run         RunFunc

	// ValidateParams optionally performs definition-specific validation of
	// a call's raw parameters. It returns a human-readable message on
	// failure and the empty string on success.
	ValidateParams func(params []Param) string
}

// Param looks up a parameter spec by name.
func (d *Definition) Param(name string) (ParameterSpec, bool) {
	for _, spec := range d.Params {
		if spec.Name == name {
			return spec, true
		}
	}
	return ParameterSpec{}, false
}

// Call is a concrete invocation record: which definition, which parameter
// values and links, under a stable call id. Calls are constructed when a
// program is assembled and never mutated afterwards.
type Call struct {
	// ID uniquely identifies this call within a program. The HCL loader
	// derives hierarchical ids of the form "call.<op>.<name>".
	ID string

	// OpID names the Definition this call targets. It must resolve to a
	// registered definition at execution time.
	OpID string

	Description string
	Params      []Param
}

// Param looks up a call parameter by name.
func (c *Call) Param(name string) (Param, bool) {
	for _, p := range c.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Param is a single parameter supplied by a call: either a literal Value,
// or a Link that the resolver replaces with its current value at call
// time. A linked parameter carries no meaningful static value.
type Param struct {
	Name  string
	Value cty.Value
	Link  Link
}

// Link marks a parameter whose value is produced elsewhere. The two
// implementations form a closed set; the resolver switches exhaustively
// over them.
type Link interface {
	isLink()
}

// ContextKeyLink resolves to the value currently stored under Key in the
// shared context store. A missing key resolves to a null value, which then
// fails required-parameter checking if the parameter was required.
type ContextKeyLink struct {
	Key string
}

func (ContextKeyLink) isLink() {}

// CallResultLink resolves to the most recent result of the call identified
// by CallID. Resolution fails if that call has not produced a result yet.
type CallResultLink struct {
	CallID string
}

func (CallResultLink) isLink() {}
