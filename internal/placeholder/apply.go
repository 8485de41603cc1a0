package placeholder

import (
	"fmt"

	"github.com/dshills/placeholder/internal/engine/document"
	"github.com/dshills/placeholder/internal/engine/entity"
	"github.com/dshills/placeholder/internal/engine/selection"
)

// ProbePolicy lists the offsets, relative to a collapsed cursor, checked in
// order when looking for an existing placeholder at the cursor.
type ProbePolicy []int

// CursorThenPrevious checks the character at the cursor, then the one before
// it, so a cursor sitting right after a placeholder still finds it.
var CursorThenPrevious = ProbePolicy{0, -1}

// EntityAtCursor returns the first placeholder annotation found by probing b
// around offset according to policy. Probes outside the block are skipped.
func EntityAtCursor(reg *entity.Registry, b *document.Block, offset int, policy ProbePolicy) (entity.ID, bool) {
	for _, delta := range policy {
		o := offset + delta
		if o < 0 || o >= b.Len() {
			continue
		}
		if id := b.EntityAt(o); !id.IsZero() && reg.IsPlaceholder(id) {
			return id, true
		}
	}
	return entity.None, false
}

// ApplyOption configures ApplyAt.
type ApplyOption func(*applyConfig)

type applyConfig struct {
	probe ProbePolicy
}

// WithProbePolicy replaces CursorThenPrevious.
func WithProbePolicy(p ProbePolicy) ApplyOption {
	return func(c *applyConfig) {
		c.probe = p
	}
}

// ApplyAt registers a new placeholder annotation {name, value} and attaches
// it at sel:
//
//   - a non-collapsed selection is annotated as is, without changing text;
//     the result is collapsed to its start
//   - a cursor inside or right after an existing placeholder re-annotates
//     that placeholder's whole range; the result is collapsed to the range
//     start
//   - any other cursor attaches nothing yet; the annotation is registered
//     for the host to use on the next insertion
//
// The returned selection is always collapsed. An annotation is created on
// every call, even when the name already exists elsewhere in doc.
func ApplyAt(name, value string, doc *document.Document, sel selection.Selection, opts ...ApplyOption) (*document.Document, selection.Selection, error) {
	cfg := applyConfig{probe: CursorThenPrevious}
	for _, opt := range opts {
		opt(&cfg)
	}

	b, err := sel.Validate(doc)
	if err != nil {
		return nil, sel, err
	}

	reg, id := doc.Entities().CreateFromDraft(Entity(New(name, value)))
	doc = doc.WithEntities(reg)

	if !sel.IsCollapsed() {
		nd, err := annotate(doc, b, sel.Start(), sel.End(), id)
		if err != nil {
			return nil, sel, err
		}
		return nd, sel.CollapseToStart(), nil
	}

	offset := sel.Head
	if existing, ok := EntityAtCursor(reg, b, offset, cfg.probe); ok {
		for _, r := range document.EntityRanges(b, existing) {
			if !r.ContainsInclusive(offset) {
				continue
			}
			nd, err := annotate(doc, b, r.Start, r.End, id)
			if err != nil {
				return nil, sel, err
			}
			return nd, sel.MoveTo(r.Start), nil
		}
	}

	return doc, sel.Collapse(), nil
}

// annotate applies id over [start, end) of b and swaps the block into doc.
func annotate(doc *document.Document, b *document.Block, start, end int, id entity.ID) (*document.Document, error) {
	nb, err := b.ApplyEntity(start, end, id)
	if err != nil {
		return nil, fmt.Errorf("annotate %s[%d:%d): %w", b.Key(), start, end, err)
	}
	return doc.WithBlock(nb)
}
