package document

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dshills/placeholder/internal/engine/entity"
)

// Document is an ordered list of blocks and the registry their characters
// refer to. Document is immutable.
type Document struct {
	blocks   []*Block
	index    map[Key]int
	entities *entity.Registry
}

// New creates a document from blocks. A nil registry is replaced with an
// empty one. Block keys must be unique.
func New(entities *entity.Registry, blocks ...*Block) (*Document, error) {
	if entities == nil {
		entities = entity.NewRegistry()
	}
	d := &Document{
		blocks:   slices.Clone(blocks),
		index:    make(map[Key]int, len(blocks)),
		entities: entities,
	}
	for i, b := range d.blocks {
		if _, dup := d.index[b.key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, b.key)
		}
		d.index[b.key] = i
	}
	return d, nil
}

// Empty returns a document with no blocks and an empty registry.
func Empty() *Document {
	d, _ := New(nil)
	return d
}

// Entities returns the annotation registry.
func (d *Document) Entities() *entity.Registry {
	return d.entities
}

// WithEntities returns a document sharing d's blocks with a different registry.
func (d *Document) WithEntities(r *entity.Registry) *Document {
	nd := *d
	nd.entities = r
	return &nd
}

// Entity resolves an annotation ID through the document's registry.
func (d *Document) Entity(id entity.ID) (entity.Annotation, error) {
	return d.entities.Lookup(id)
}

// Len returns the number of blocks.
func (d *Document) Len() int {
	return len(d.blocks)
}

// Blocks returns the blocks in order.
func (d *Document) Blocks() []*Block {
	return slices.Clone(d.blocks)
}

// BlockAt returns the block at index i.
func (d *Document) BlockAt(i int) *Block {
	return d.blocks[i]
}

// Block returns the block with the given key.
func (d *Document) Block(key Key) (*Block, bool) {
	i, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return d.blocks[i], true
}

// Lookup returns the block with the given key or an error wrapping
// ErrBlockNotFound.
func (d *Document) Lookup(key Key) (*Block, error) {
	b, ok := d.Block(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, key)
	}
	return b, nil
}

// FirstBlock returns the first block, or nil for an empty document.
func (d *Document) FirstBlock() *Block {
	if len(d.blocks) == 0 {
		return nil
	}
	return d.blocks[0]
}

// WithBlock returns a document in which the block with b's key is replaced
// by b. Replacing a block with itself returns d.
func (d *Document) WithBlock(b *Block) (*Document, error) {
	i, ok := d.index[b.key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, b.key)
	}
	if d.blocks[i] == b {
		return d, nil
	}
	nd := *d
	nd.blocks = slices.Clone(d.blocks)
	nd.blocks[i] = b
	return &nd, nil
}

// MapBlocks returns a document whose blocks are the results of fn. The block
// keys must not change. If fn returns every block unchanged, d is returned.
func (d *Document) MapBlocks(fn func(b *Block) (*Block, error)) (*Document, error) {
	var blocks []*Block
	for i, b := range d.blocks {
		nb, err := fn(b)
		if err != nil {
			return nil, err
		}
		if nb.key != b.key {
			return nil, fmt.Errorf("block %s: key changed to %s", b.key, nb.key)
		}
		if blocks == nil {
			if nb == b {
				continue
			}
			blocks = slices.Clone(d.blocks)
		}
		blocks[i] = nb
	}
	if blocks == nil {
		return d, nil
	}
	nd := *d
	nd.blocks = blocks
	return &nd, nil
}

// Text returns the text of all blocks joined with newlines.
func (d *Document) Text() string {
	var sb strings.Builder
	for i, b := range d.blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.Text())
	}
	return sb.String()
}

// Validate checks that every annotation ID referenced by a character
// resolves in the registry.
func (d *Document) Validate() error {
	for _, b := range d.blocks {
		for i, c := range b.chars {
			if c.Entity.IsZero() {
				continue
			}
			if !d.entities.Has(c.Entity) {
				return fmt.Errorf("block %s offset %d: %w: id %d", b.key, i, entity.ErrNotFound, c.Entity)
			}
		}
	}
	return nil
}
