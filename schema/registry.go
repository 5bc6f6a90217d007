package schema

import (
	"slices"
	"sync"

	"github.com/fwojciec/artlot"
)

var _ artlot.SchemaRegistry = (*Registry)(nil)

// Registry holds one schema per house. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	schemas map[artlot.House]*artlot.Schema
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[artlot.House]*artlot.Schema)}
}

// Default returns a registry with the Christie's and Phillips schemas built
// from cfg.
func Default(cfg Config) *Registry {
	r := NewRegistry()
	r.Register(Christies(cfg))
	r.Register(Phillips(cfg))
	return r
}

// Get returns the schema for a house.
// Returns nil if no schema is registered for the house.
func (r *Registry) Get(house artlot.House) *artlot.Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.schemas[house]
}

// Register adds a schema, replacing any schema of the same house.
func (r *Registry) Register(schema *artlot.Schema) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[schema.House] = schema
}

// List returns all registered houses in name order.
func (r *Registry) List() []artlot.House {
	r.mu.RLock()
	defer r.mu.RUnlock()
	houses := make([]artlot.House, 0, len(r.schemas))
	for h := range r.schemas {
		houses = append(houses, h)
	}
	slices.Sort(houses)
	return houses
}
