package entity

import (
	"fmt"
	"maps"
)

// ID identifies an annotation in a Registry. The zero ID means no annotation.
type ID uint64

// None is the zero ID carried by characters without an annotation.
const None ID = 0

// IsZero returns true if the ID refers to no annotation.
func (id ID) IsZero() bool {
	return id == None
}

// String returns the decimal form of the ID.
func (id ID) String() string {
	return fmt.Sprintf("%d", uint64(id))
}

// Kind is the type tag of an annotation.
type Kind string

// KindPlaceholder tags annotations whose payload is PlaceholderData.
const KindPlaceholder Kind = "placeholder"

// Mutability describes how an annotated span behaves under host edits.
// It is informational only; the engine never reads it.
type Mutability string

const (
	Mutable   Mutability = "MUTABLE"
	Immutable Mutability = "IMMUTABLE"
	Segmented Mutability = "SEGMENTED"
)

// Data is the payload of an annotation. The set of implementations is
// closed: PlaceholderData and OpaqueData.
type Data interface {
	// Kind returns the annotation kind this payload belongs to.
	Kind() Kind

	sealed()
}

// PlaceholderData is the payload of a placeholder annotation.
type PlaceholderData struct {
	Name  string
	Value string
}

// Kind returns KindPlaceholder.
func (PlaceholderData) Kind() Kind { return KindPlaceholder }

func (PlaceholderData) sealed() {}

// OpaqueData carries the payload of any annotation kind the engine does not
// interpret (links, mentions, images...).
type OpaqueData struct {
	Type   Kind
	Fields map[string]any
}

// Kind returns the type tag the payload was created with.
func (d OpaqueData) Kind() Kind { return d.Type }

func (OpaqueData) sealed() {}

// Annotation is a registry entry. Its ID and Kind never change; only its
// payload may be replaced.
type Annotation struct {
	id         ID
	kind       Kind
	mutability Mutability
	data       Data
}

// ID returns the identity of the annotation.
func (a Annotation) ID() ID { return a.id }

// Kind returns the type tag of the annotation.
func (a Annotation) Kind() Kind { return a.kind }

// Mutability returns the mutability flag.
func (a Annotation) Mutability() Mutability { return a.mutability }

// Data returns the payload.
func (a Annotation) Data() Data { return a.data }

// IsPlaceholder returns true for placeholder annotations.
func (a Annotation) IsPlaceholder() bool {
	_, ok := a.Placeholder()
	return ok
}

// Placeholder returns the placeholder payload, or false if the annotation is
// of any other kind.
func (a Annotation) Placeholder() (PlaceholderData, bool) {
	if a.kind != KindPlaceholder {
		return PlaceholderData{}, false
	}
	d, ok := a.data.(PlaceholderData)
	return d, ok
}

// String returns a human-readable representation of the annotation.
func (a Annotation) String() string {
	if p, ok := a.Placeholder(); ok {
		return fmt.Sprintf("#%d placeholder{%s=%q}", a.id, p.Name, p.Value)
	}
	return fmt.Sprintf("#%d %s", a.id, a.kind)
}

// Draft describes an annotation that has not been registered yet.
type Draft struct {
	Kind       Kind
	Mutability Mutability
	Data       Data
}

// mergeData combines an existing payload with an update of the same kind.
// Placeholder updates replace the whole record; opaque updates overlay
// their fields on the existing ones.
func mergeData(cur, upd Data) (Data, error) {
	if cur.Kind() != upd.Kind() {
		return nil, fmt.Errorf("%w: %s into %s", ErrKindMismatch, upd.Kind(), cur.Kind())
	}
	switch u := upd.(type) {
	case OpaqueData:
		c, _ := cur.(OpaqueData)
		fields := make(map[string]any, len(c.Fields)+len(u.Fields))
		maps.Copy(fields, c.Fields)
		maps.Copy(fields, u.Fields)
		return OpaqueData{Type: u.Type, Fields: fields}, nil
	default:
		return upd, nil
	}
}
