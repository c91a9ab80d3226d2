package registry

import (
	"context"
	"fmt"
	"log/slog"
)

// Program is the contract every runnable unit implements. Run performs the
// unit's side effects (console output, state mutation) and returns an error
// only when the unit could not complete; callers decide whether to keep the
// menu loop alive.
type Program interface {
	Label() string
	Run(ctx context.Context) error
}

// Factory constructs a fresh Program instance for a single invocation.
type Factory func() Program

// Descriptor is an immutable catalog entry binding a label to a factory for
// one concrete Program.
type Descriptor struct {
	ID      string
	Label   string
	Factory Factory
}

// Module is the interface built-in program packages implement to be
// registered at startup.
type Module interface {
	Register(r *Registry)
}

// Registry holds the ordered program catalog for a single application
// instance. Order is insertion order: built-ins first, discovered programs
// after, so the menu numbering is stable across runs.
type Registry struct {
	catalog []Descriptor
	byID    map[string]struct{}
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		byID: make(map[string]struct{}),
	}
}

// RegisterProgram appends a built-in program to the catalog. Registering two
// programs under the same ID is a programmer error.
func (r *Registry) RegisterProgram(d Descriptor) {
	if _, exists := r.byID[d.ID]; exists {
		panic(fmt.Sprintf("program with ID '%s' already registered", d.ID))
	}
	slog.Debug("Registering program.", "id", d.ID, "label", d.Label)
	r.byID[d.ID] = struct{}{}
	r.catalog = append(r.catalog, d)
}

// add appends a discovered program, rejecting duplicate IDs with an error
// instead of a panic: a drop-in file colliding with an existing entry is a
// configuration problem, not a programming one.
func (r *Registry) add(d Descriptor) error {
	if _, exists := r.byID[d.ID]; exists {
		return fmt.Errorf("program with ID '%s' already in catalog", d.ID)
	}
	r.byID[d.ID] = struct{}{}
	r.catalog = append(r.catalog, d)
	return nil
}

// Catalog returns a copy of the ordered catalog.
func (r *Registry) Catalog() []Descriptor {
	out := make([]Descriptor, len(r.catalog))
	copy(out, r.catalog)
	return out
}

// Len reports the number of catalog entries.
func (r *Registry) Len() int {
	return len(r.catalog)
}

// At returns the catalog entry at the given zero-based position.
func (r *Registry) At(i int) (Descriptor, bool) {
	if i < 0 || i >= len(r.catalog) {
		return Descriptor{}, false
	}
	return r.catalog[i], true
}
