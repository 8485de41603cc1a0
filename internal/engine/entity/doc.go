// Package entity provides annotations and the registry that owns them.
//
// An annotation (called an entity in most rich-text models) is a marker with
// a stable identity and a replaceable payload. Characters in a block refer to
// an annotation by ID; the payload lives only in the registry, so updating
// the payload of one ID is visible to every character that refers to it.
//
// Annotation Kinds:
//
// The payload is a tagged variant. PlaceholderData is the only payload the
// placeholder engine acts on; every other kind is carried as OpaqueData and
// passed through untouched. Use Annotation.Placeholder to read a placeholder
// payload; it reports false for any other kind.
//
// Versioned Registry:
//
// Registry is an immutable value. Create, MergeData and ReplaceData return a
// new registry whose Version is one higher and leave the receiver unchanged:
//
//	reg := entity.NewRegistry()
//	reg, id := reg.Create(entity.KindPlaceholder, entity.Immutable,
//	    entity.PlaceholderData{Name: "firstName", Value: "Luis"})
//
//	reg2, err := reg.MergeData(id, entity.PlaceholderData{Name: "firstName", Value: "Ana"})
//	// reg still resolves id to "Luis"; reg2 resolves it to "Ana"
//
// IDs come from a counter carried by the registry value and are never reused
// along one line of derivation. ID zero means "no annotation".
//
// Thread Safety:
//
// Registry values are never mutated after construction and are safe for
// concurrent reads.
package entity
