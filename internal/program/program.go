// Package program represents an ordered list of operation calls assembled
// for execution.
//
// A program is append-only during assembly and read-only during
// execution. Presentation concerns (trees, progress views) belong to the
// embedding host; this package deliberately exposes nothing richer than
// the ordered call list and an id-keyed lookup.
package program

import (
	"fmt"

	"github.com/vk/oplinkgo/internal/op"
)

// Program is an ordered collection of calls with unique call ids.
type Program struct {
	calls []*op.Call
	byID  map[string]*op.Call
}

// New creates an empty program.
func New() *Program {
	return &Program{
		byID: make(map[string]*op.Call),
	}
}

// Add appends a call to the program. Call ids must be unique within a
// program; a duplicate id is an assembly bug and fails immediately.
func (p *Program) Add(call *op.Call) error {
	if call.ID == "" {
		return fmt.Errorf("call targeting operation %q has no id", call.OpID)
	}
	if _, exists := p.byID[call.ID]; exists {
		return fmt.Errorf("duplicate call id %q", call.ID)
	}
	p.calls = append(p.calls, call)
	p.byID[call.ID] = call
	return nil
}

// Calls returns the calls in assembly order. The returned slice must not
// be modified.
func (p *Program) Calls() []*op.Call {
	return p.calls
}

// Lookup returns the call registered under id.
func (p *Program) Lookup(id string) (*op.Call, bool) {
	call, ok := p.byID[id]
	return call, ok
}

// Len returns the number of calls in the program.
func (p *Program) Len() int {
	return len(p.calls)
}
