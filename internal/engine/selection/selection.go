package selection

import (
	"errors"
	"fmt"

	"github.com/dshills/placeholder/internal/engine/document"
)

// ErrInvalidSelection indicates a selection that does not fit the document:
// an unknown block key or offsets outside the block.
var ErrInvalidSelection = errors.New("invalid selection")

// Selection represents a cursor or a range of selected text in one block.
type Selection struct {
	BlockKey document.Key
	Anchor   int // Where selection started
	Head     int // Current cursor position (where typing occurs)
}

// New creates a selection from anchor to head.
func New(key document.Key, anchor, head int) Selection {
	return Selection{BlockKey: key, Anchor: anchor, Head: head}
}

// Cursor creates a collapsed selection at offset.
func Cursor(key document.Key, offset int) Selection {
	return Selection{BlockKey: key, Anchor: offset, Head: offset}
}

// IsCollapsed returns true if the selection has no extent.
func (s Selection) IsCollapsed() bool {
	return s.Anchor == s.Head
}

// Start returns the lower bound of the selection.
func (s Selection) Start() int {
	return min(s.Anchor, s.Head)
}

// End returns the upper bound of the selection.
func (s Selection) End() int {
	return max(s.Anchor, s.Head)
}

// Len returns the number of selected characters.
func (s Selection) Len() int {
	return s.End() - s.Start()
}

// IsBackward returns true if the selection extends backward (head < anchor).
func (s Selection) IsBackward() bool {
	return s.Head < s.Anchor
}

// Range returns the selection as a document range with no entity.
func (s Selection) Range() document.Range {
	return document.Range{BlockKey: s.BlockKey, Start: s.Start(), End: s.End()}
}

// MoveTo returns a collapsed selection at offset in the same block.
func (s Selection) MoveTo(offset int) Selection {
	return Cursor(s.BlockKey, offset)
}

// Collapse collapses the selection to a cursor at the head.
func (s Selection) Collapse() Selection {
	return s.MoveTo(s.Head)
}

// CollapseToStart collapses the selection to its start position.
func (s Selection) CollapseToStart() Selection {
	return s.MoveTo(s.Start())
}

// CollapseToEnd collapses the selection to its end position.
func (s Selection) CollapseToEnd() Selection {
	return s.MoveTo(s.End())
}

// Span returns a forward selection covering r.
func Span(r document.Range) Selection {
	return Selection{BlockKey: r.BlockKey, Anchor: r.Start, Head: r.End}
}

// Validate checks the selection against doc and returns the block it refers
// to. Offsets are never clamped.
func (s Selection) Validate(doc *document.Document) (*document.Block, error) {
	b, ok := doc.Block(s.BlockKey)
	if !ok {
		return nil, fmt.Errorf("%w: block %q not in document", ErrInvalidSelection, s.BlockKey)
	}
	if s.Start() < 0 || s.End() > b.Len() {
		return nil, fmt.Errorf("%w: %s outside block %q of length %d", ErrInvalidSelection, s, s.BlockKey, b.Len())
	}
	return b, nil
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsCollapsed() {
		return fmt.Sprintf("Cursor(%s:%d)", s.BlockKey, s.Head)
	}
	dir := "→"
	if s.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%s:%d%s%d)", s.BlockKey, s.Anchor, dir, s.Head)
}
