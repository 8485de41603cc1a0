package entity

import (
	"fmt"
	"maps"
	"slices"
)

// Registry maps annotation IDs to annotations.
// A Registry is immutable; every write returns a new Registry.
type Registry struct {
	entries map[ID]Annotation
	next    ID
	last    ID
	version uint64
}

// NewRegistry creates an empty registry at version 0.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[ID]Annotation),
		next:    1,
	}
}

// derive copies the registry for a write.
func (r *Registry) derive() *Registry {
	return &Registry{
		entries: maps.Clone(r.entries),
		next:    r.next,
		last:    r.last,
		version: r.version + 1,
	}
}

// Version returns the number of writes along this registry's derivation.
func (r *Registry) Version() uint64 {
	return r.version
}

// Len returns the number of registered annotations.
func (r *Registry) Len() int {
	return len(r.entries)
}

// LastCreated returns the ID assigned by the most recent Create,
// or None if nothing has been created.
func (r *Registry) LastCreated() ID {
	return r.last
}

// Create registers a new annotation and returns the new registry and the ID
// assigned to it. The ID is fresh even when an equal payload already exists.
func (r *Registry) Create(kind Kind, mutability Mutability, data Data) (*Registry, ID) {
	nr := r.derive()
	id := nr.next
	nr.next++
	nr.last = id
	nr.entries[id] = Annotation{
		id:         id,
		kind:       kind,
		mutability: mutability,
		data:       data,
	}
	return nr, id
}

// CreateFromDraft registers the annotation described by d.
func (r *Registry) CreateFromDraft(d Draft) (*Registry, ID) {
	return r.Create(d.Kind, d.Mutability, d.Data)
}

// Get returns the annotation for id.
func (r *Registry) Get(id ID) (Annotation, bool) {
	a, ok := r.entries[id]
	return a, ok
}

// Lookup returns the annotation for id or an error wrapping ErrNotFound.
func (r *Registry) Lookup(id ID) (Annotation, error) {
	a, ok := r.entries[id]
	if !ok {
		return Annotation{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return a, nil
}

// Has returns true if id is registered.
func (r *Registry) Has(id ID) bool {
	_, ok := r.entries[id]
	return ok
}

// MergeData merges data into the payload of id and returns the new registry.
// The annotation keeps its ID, kind and mutability.
func (r *Registry) MergeData(id ID, data Data) (*Registry, error) {
	a, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	merged, err := mergeData(a.data, data)
	if err != nil {
		return nil, fmt.Errorf("merge id %d: %w", id, err)
	}
	nr := r.derive()
	a.data = merged
	nr.entries[id] = a
	return nr, nil
}

// ReplaceData replaces the payload of id without merging.
func (r *Registry) ReplaceData(id ID, data Data) (*Registry, error) {
	a, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	if a.kind != data.Kind() {
		return nil, fmt.Errorf("replace id %d: %w: %s into %s", id, ErrKindMismatch, data.Kind(), a.kind)
	}
	nr := r.derive()
	a.data = data
	nr.entries[id] = a
	return nr, nil
}

// IDs returns all registered IDs in ascending order.
func (r *Registry) IDs() []ID {
	ids := slices.Collect(maps.Keys(r.entries))
	slices.Sort(ids)
	return ids
}

// IsPlaceholder returns true if id resolves to a placeholder annotation.
// Unknown IDs report false.
func (r *Registry) IsPlaceholder(id ID) bool {
	a, ok := r.entries[id]
	return ok && a.kind == KindPlaceholder
}
