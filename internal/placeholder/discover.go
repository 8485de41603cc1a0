package placeholder

import (
	"slices"

	"github.com/dshills/placeholder/internal/engine/document"
)

// Discover returns the distinct placeholders embedded in doc, in the order
// their names are first seen. For a name that appears with several values
// the first occurrence in document order wins.
func Discover(doc *document.Document) ([]Placeholder, error) {
	reg := doc.Entities()
	seen := make(map[string]bool)
	var found []Placeholder

	for _, b := range doc.Blocks() {
		for i := 0; i < b.Len(); i++ {
			id := b.EntityAt(i)
			if id.IsZero() {
				continue
			}
			p, ok, err := lookupPlaceholder(reg, b, i, id)
			if err != nil {
				return nil, err
			}
			if !ok || seen[p.Name] {
				continue
			}
			seen[p.Name] = true
			found = append(found, FromData(p))
		}
	}
	return found, nil
}

// Reconcile merges the placeholders discovered in doc into canonical.
// The result holds canonical unchanged, followed by discovered names that
// canonical lacks, in document order. On a name collision the canonical
// value wins.
func Reconcile(doc *document.Document, canonical []Placeholder) ([]Placeholder, error) {
	discovered, err := Discover(doc)
	if err != nil {
		return nil, err
	}

	names := make(map[string]bool, len(canonical))
	for _, p := range canonical {
		names[p.Name] = true
	}

	merged := slices.Clone(canonical)
	for _, p := range discovered {
		if names[p.Name] {
			continue
		}
		names[p.Name] = true
		merged = append(merged, p)
	}
	return merged, nil
}
