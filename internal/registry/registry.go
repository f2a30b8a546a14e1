package registry

import (
	"fmt"
	"log/slog"

	"github.com/vk/oplinkgo/internal/op"
)

// Module is the interface that built-in operation packages implement to
// contribute their definitions to a registry.
type Module interface {
	Register(r *Registry) error
}

// Registry holds all registered operation definitions for a single
// application instance.
type Registry struct {
	defs map[string]*op.Definition
}

// New creates and initializes a new, empty Registry instance.
func New() *Registry {
	return &Registry{
		defs: make(map[string]*op.Definition),
	}
}

// Register adds a definition to the registry. It fails with
// op.ErrDuplicateDefinition if the id is already taken, leaving the prior
// entry intact, and with op.ErrMalformedSchema if the parameter schema is
// not well-formed. Both indicate a contribution bug and should abort
// startup.
func (r *Registry) Register(def *op.Definition) error {
	if def == nil || def.ID == "" {
		return fmt.Errorf("%w: definition has no id", op.ErrMalformedSchema)
	}
	if def.Run == nil {
		return fmt.Errorf("%w: definition %q has no implementation", op.ErrMalformedSchema, def.ID)
	}
	if err := validateSchema(def); err != nil {
		return err
	}
	if _, exists := r.defs[def.ID]; exists {
		return fmt.Errorf("%w: %q", op.ErrDuplicateDefinition, def.ID)
	}
	slog.Debug("Registering operation definition.", "id", def.ID)
	r.defs[def.ID] = def
	return nil
}

// Get returns the definition registered under id. Pure lookup, no side
// effects.
func (r *Registry) Get(id string) (*op.Definition, bool) {
	def, ok := r.defs[id]
	return def, ok
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}
