// Package engine provides the placeholder editing engine.
//
// The engine package serves as the main facade, combining the document
// model, selection handling and the canonical placeholder list into a
// unified, thread-safe API for hosts that edit templated rich text.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - entity: versioned annotation registry (placeholders and opaque kinds)
//   - document: immutable blocks of characters with styles and annotations
//   - selection: anchor/head selections within one block
//
// The placeholder operations themselves (substitution, annotation at the
// selection, discovery, removal) live in internal/placeholder and are pure
// functions over those types. Engine strings them together the way a host
// would and keeps the result.
//
// # Thread Safety
//
// All Engine operations are thread-safe. The engine uses a read-write mutex
// to allow concurrent reads while serializing writes. Every write either
// installs a complete new State with a higher revision or, on error, leaves
// the previous State in place.
//
// # Basic Usage
//
//	doc, _ := rawdoc.ReadFile("letter.yaml")
//	list, _ := rawdoc.ReadValues("values.yaml")
//
//	e := engine.New(engine.WithLogger(logger))
//	if err := e.Load(doc, list.Items()); err != nil {
//	    return err
//	}
//
//	// Select "Cristian" and turn it into a placeholder.
//	e.SetSelection(selection.New(key, 0, 8))
//	e.Apply("firstName", "Cristian")
//
//	// Change the value everywhere it appears.
//	e.UpdatePlaceholder("firstName", "Ada")
//
// # Change Types
//
// Each State records the kind of mutation that produced it: apply-entity
// for document changes, change-selection for cursor moves and
// change-placeholders for list-only edits. Every accepted change bumps the
// revision; a no-op leaves it alone.
package engine
