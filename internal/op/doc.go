// Package op defines the core data model of the operation engine: typed
// operation definitions, concrete calls, parameter links, and the
// capability accessor handed to implementations.
//
// A Definition is registered once and describes a named capability with a
// typed parameter schema. A Call is an immutable invocation record that
// targets a Definition by id and supplies parameters, each either a
// literal cty.Value or a Link to a value produced elsewhere (a context
// key, or another call's result). The resolver substitutes links with
// their current values immediately before execution; nothing in this
// package performs I/O.
package op
