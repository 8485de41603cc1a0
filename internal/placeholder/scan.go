package placeholder

import (
	"fmt"

	"github.com/dshills/placeholder/internal/engine/document"
	"github.com/dshills/placeholder/internal/engine/entity"
)

// ScanRanges returns the maximal placeholder ranges in b, in ascending start
// order. Characters referring to other annotation kinds, or to IDs missing
// from reg, never belong to a range.
func ScanRanges(b *document.Block, reg *entity.Registry) []document.Range {
	return document.ScanRanges(b, reg.IsPlaceholder)
}

// lookupPlaceholder resolves id and reports whether it is a placeholder.
// A missing id is an error; other kinds return ok=false.
func lookupPlaceholder(reg *entity.Registry, b *document.Block, offset int, id entity.ID) (entity.PlaceholderData, bool, error) {
	a, err := reg.Lookup(id)
	if err != nil {
		return entity.PlaceholderData{}, false, fmt.Errorf("block %s offset %d: %w", b.Key(), offset, err)
	}
	p, ok := a.Placeholder()
	return p, ok, nil
}
