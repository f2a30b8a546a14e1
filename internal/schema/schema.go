// Package schema declares the HCL block structure of program files.
package schema

import "github.com/hashicorp/hcl/v2"

// CallParams represents the content of the 'params' block within a call.
// Its attributes are literal parameter values, evaluated without any
// variable scope.
type CallParams struct {
	Body hcl.Body `hcl:",remain"`
}

// LinkBlock represents a 'link' block within a call: a parameter whose
// value is resolved at execution time, either from a context key or from
// another call's result. Exactly one of ContextKey and FromCall must be
// set.
type LinkBlock struct {
	Param      string `hcl:"param_name,label"`
	ContextKey string `hcl:"context_key,optional"`
	FromCall   string `hcl:"from_call,optional"`
}

// CallBlock represents a `call` block from a user's program file. It is a
// runnable instance of a registered operation.
type CallBlock struct {
	OpType      string       `hcl:"op_type,label"`
	Name        string       `hcl:"instance_name,label"`
	Description string       `hcl:"description,optional"`
	Params      *CallParams  `hcl:"params,block"`
	Links       []*LinkBlock `hcl:"link,block"`
}

// ProgramConfig represents the top-level structure of a program file,
// containing the ordered list of calls.
type ProgramConfig struct {
	Calls []*CallBlock `hcl:"call,block"`
	Body  hcl.Body     `hcl:",remain"`
}
