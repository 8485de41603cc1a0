// Package placeholder keeps named placeholder values embedded in a document
// in sync with the host's authoritative list.
//
// A placeholder is a (name, value) pair. Inside a document it is an
// annotation of kind entity.KindPlaceholder attached to the characters that
// display the value. The package provides:
//
//   - Substitute: rewrite every placeholder span whose stored value differs
//     from the host list, keeping later spans in the same block aligned
//   - ApplyAt: attach a new placeholder annotation at the cursor or selection
//   - Discover and Reconcile: list the placeholders a document already holds
//     and merge them with the host list
//   - RemoveByName: detach a placeholder from every character, keeping text
//
// All functions are pure with respect to their inputs: they return a new
// document carrying a new registry version and never modify the one passed
// in. Annotations of any other kind are skipped by every operation.
//
// Typical host flow:
//
//	list, _ := placeholder.Reconcile(doc, canonical)
//	doc, _ = placeholder.Substitute(doc, list)
//
//	// user picks a value and presses "Add"
//	doc, sel, _ = placeholder.ApplyAt("job", "programmer", doc, sel)
//	doc, _ = placeholder.Substitute(doc, list)
package placeholder
