package placeholder

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/placeholder/internal/engine/document"
	"github.com/dshills/placeholder/internal/engine/entity"
)

// EmptyValueFill is written in place of an empty value so the annotation
// keeps at least one character to anchor to.
const EmptyValueFill = " "

// Substitute rewrites every placeholder span in doc to the current value of
// its annotation, after merging the values from placeholders into the
// registry.
//
// For each block, annotations whose name appears in placeholders with a
// different value are merged first; the merge is keyed by annotation ID, so
// it reaches every block that refers to the same ID. The block's placeholder
// ranges are then replaced left to right. Each replacement inherits the
// inline style of the first character of the range it replaces, and later
// ranges are shifted by the accumulated length difference.
//
// Substitute is idempotent for a fixed placeholder list. Blocks whose content
// does not change are shared with doc. A character referring to an ID missing
// from the registry fails the whole call with ErrNotFound.
func Substitute(doc *document.Document, placeholders []Placeholder) (*document.Document, error) {
	values := valuesByName(placeholders)
	reg := doc.Entities()

	nd, err := doc.MapBlocks(func(b *document.Block) (*document.Block, error) {
		var err error
		if reg, err = mergeStale(reg, b, values); err != nil {
			return nil, err
		}
		return replaceRanges(reg, b)
	})
	if err != nil {
		return nil, err
	}
	if reg == nd.Entities() {
		return nd, nil
	}
	return nd.WithEntities(reg), nil
}

// mergeStale merges the host value into every placeholder annotation of b
// whose stored value differs.
func mergeStale(reg *entity.Registry, b *document.Block, values map[string]string) (*entity.Registry, error) {
	for i := 0; i < b.Len(); i++ {
		id := b.EntityAt(i)
		if id.IsZero() {
			continue
		}
		p, ok, err := lookupPlaceholder(reg, b, i, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		v, known := values[p.Name]
		if !known || v == p.Value {
			continue
		}
		if reg, err = reg.MergeData(id, entity.PlaceholderData{Name: p.Name, Value: v}); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// replaceRanges writes the current value of each placeholder range into b.
func replaceRanges(reg *entity.Registry, b *document.Block) (*document.Block, error) {
	ranges := ScanRanges(b, reg)
	if len(ranges) == 0 {
		return b, nil
	}

	cur := b
	diff := 0
	for _, r := range ranges {
		start, end := r.Start-diff, r.End-diff

		p, _, err := lookupPlaceholder(reg, b, r.Start, r.Entity)
		if err != nil {
			return nil, err
		}
		fill := p.Value
		if fill == "" {
			fill = EmptyValueFill
		}

		cur, err = cur.ReplaceText(start, end, fill, cur.StyleAt(start), r.Entity)
		if err != nil {
			return nil, fmt.Errorf("replace %s: %w", r, err)
		}
		diff += (end - start) - utf8.RuneCountInString(fill)
	}

	if cur.Equal(b) {
		return b, nil
	}
	return cur, nil
}
