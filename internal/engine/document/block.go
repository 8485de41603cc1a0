package document

import (
	"fmt"
	"slices"

	"github.com/dshills/placeholder/internal/engine/entity"
)

// Key identifies a block within a document.
type Key string

// Type is the structural kind of a block.
type Type string

// Block types understood by hosts. The engine preserves them but never
// interprets them.
const (
	Unstyled          Type = "unstyled"
	HeaderOne         Type = "header-one"
	HeaderTwo         Type = "header-two"
	HeaderThree       Type = "header-three"
	HeaderFour        Type = "header-four"
	HeaderFive        Type = "header-five"
	HeaderSix         Type = "header-six"
	UnorderedListItem Type = "unordered-list-item"
	OrderedListItem   Type = "ordered-list-item"
	Blockquote        Type = "blockquote"
	CodeBlock         Type = "code-block"
)

// CharMeta is the metadata attached to one character.
type CharMeta struct {
	Style  StyleSet
	Entity entity.ID
}

// Equal returns true if both metadata values carry the same style and entity.
func (c CharMeta) Equal(other CharMeta) bool {
	return c.Entity == other.Entity && c.Style.Equal(other.Style)
}

// WithEntity returns a copy of c referring to id.
func (c CharMeta) WithEntity(id entity.ID) CharMeta {
	c.Entity = id
	return c
}

// Block is one paragraph of text with per-character metadata.
// Block is immutable; edits return a new Block with the same key.
type Block struct {
	key   Key
	typ   Type
	depth int
	text  []rune
	chars []CharMeta
}

// NewBlock creates a block whose characters carry no style and no annotation.
func NewBlock(key Key, typ Type, text string) *Block {
	if typ == "" {
		typ = Unstyled
	}
	runes := []rune(text)
	return &Block{
		key:   key,
		typ:   typ,
		text:  runes,
		chars: make([]CharMeta, len(runes)),
	}
}

// NewBlockWithChars creates a block from text and matching character metadata.
func NewBlockWithChars(key Key, typ Type, text string, chars []CharMeta) (*Block, error) {
	b := NewBlock(key, typ, text)
	if len(chars) != len(b.text) {
		return nil, fmt.Errorf("%w: block %s has %d characters and %d metadata entries",
			ErrLengthMismatch, key, len(b.text), len(chars))
	}
	b.chars = slices.Clone(chars)
	return b, nil
}

// Key returns the block key.
func (b *Block) Key() Key { return b.key }

// Type returns the block type.
func (b *Block) Type() Type { return b.typ }

// Depth returns the nesting depth (list items).
func (b *Block) Depth() int { return b.depth }

// WithDepth returns a copy of the block at the given depth.
func (b *Block) WithDepth(depth int) *Block {
	nb := *b
	nb.depth = depth
	return &nb
}

// WithType returns a copy of the block with a different type.
func (b *Block) WithType(typ Type) *Block {
	nb := *b
	nb.typ = typ
	return &nb
}

// Text returns the block text.
func (b *Block) Text() string {
	return string(b.text)
}

// Len returns the number of characters in the block.
func (b *Block) Len() int {
	return len(b.text)
}

// IsEmpty returns true if the block has no characters.
func (b *Block) IsEmpty() bool {
	return len(b.text) == 0
}

// Slice returns the text in [start, end). Out-of-range bounds are clamped.
func (b *Block) Slice(start, end int) string {
	start = max(0, min(start, len(b.text)))
	end = max(start, min(end, len(b.text)))
	return string(b.text[start:end])
}

// CharAt returns the metadata of the character at offset.
// Out-of-range offsets return the zero CharMeta.
func (b *Block) CharAt(offset int) CharMeta {
	if offset < 0 || offset >= len(b.chars) {
		return CharMeta{}
	}
	return b.chars[offset]
}

// EntityAt returns the annotation ID at offset, or entity.None.
func (b *Block) EntityAt(offset int) entity.ID {
	return b.CharAt(offset).Entity
}

// StyleAt returns the inline style set at offset.
func (b *Block) StyleAt(offset int) StyleSet {
	return b.CharAt(offset).Style
}

// Chars returns a copy of the character metadata.
func (b *Block) Chars() []CharMeta {
	return slices.Clone(b.chars)
}

// Equal returns true if both blocks have the same key, type, depth, text and
// character metadata.
func (b *Block) Equal(other *Block) bool {
	if b == other {
		return true
	}
	if other == nil || b.key != other.key || b.typ != other.typ || b.depth != other.depth {
		return false
	}
	return slices.Equal(b.text, other.text) &&
		slices.EqualFunc(b.chars, other.chars, CharMeta.Equal)
}

// checkRange validates [start, end) against the block length.
func (b *Block) checkRange(start, end int) error {
	if start > end {
		return fmt.Errorf("%w: [%d:%d)", ErrRangeInvalid, start, end)
	}
	if start < 0 || end > len(b.text) {
		return fmt.Errorf("%w: [%d:%d) in block %s of length %d",
			ErrOffsetOutOfRange, start, end, b.key, len(b.text))
	}
	return nil
}

// ReplaceText replaces [start, end) with text. Every inserted character
// carries style and the annotation id.
func (b *Block) ReplaceText(start, end int, text string, style StyleSet, id entity.ID) (*Block, error) {
	if err := b.checkRange(start, end); err != nil {
		return nil, err
	}
	ins := []rune(text)
	meta := CharMeta{Style: style, Entity: id}

	newLen := len(b.text) - (end - start) + len(ins)
	runes := make([]rune, 0, newLen)
	runes = append(runes, b.text[:start]...)
	runes = append(runes, ins...)
	runes = append(runes, b.text[end:]...)

	chars := make([]CharMeta, 0, newLen)
	chars = append(chars, b.chars[:start]...)
	for range ins {
		chars = append(chars, meta)
	}
	chars = append(chars, b.chars[end:]...)

	nb := *b
	nb.text = runes
	nb.chars = chars
	return &nb, nil
}

// ApplyEntity sets the annotation of every character in [start, end) to id,
// keeping text and styles. An empty range returns the block unchanged.
func (b *Block) ApplyEntity(start, end int, id entity.ID) (*Block, error) {
	if err := b.checkRange(start, end); err != nil {
		return nil, err
	}
	if start == end {
		return b, nil
	}
	return b.UpdateChars(func(i int, c CharMeta) CharMeta {
		if i >= start && i < end {
			return c.WithEntity(id)
		}
		return c
	}), nil
}

// UpdateChars maps fn over every character's metadata. If fn changes nothing
// the receiver is returned as is.
func (b *Block) UpdateChars(fn func(offset int, c CharMeta) CharMeta) *Block {
	var chars []CharMeta
	for i, c := range b.chars {
		nc := fn(i, c)
		if chars == nil {
			if nc.Equal(c) {
				continue
			}
			chars = slices.Clone(b.chars)
		}
		chars[i] = nc
	}
	if chars == nil {
		return b
	}
	nb := *b
	nb.chars = chars
	return &nb
}

// String returns a short description of the block.
func (b *Block) String() string {
	return fmt.Sprintf("Block(%s %s %q)", b.key, b.typ, string(b.text))
}
