package rawdoc

import (
	"errors"
	"fmt"

	"github.com/dshills/placeholder/internal/engine/document"
	"github.com/dshills/placeholder/internal/engine/entity"
)

var errNoBlock = errors.New("builder: no block")

// Builder assembles a document block by block. Entity and style calls apply
// to the most recently added block. The first error is kept and returned by
// Build; later calls are ignored.
type Builder struct {
	reg    *entity.Registry
	blocks []*document.Block
	err    error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{reg: entity.NewRegistry()}
}

// AddBlock appends a block with a generated key.
func (b *Builder) AddBlock(text string, typ document.Type) *Builder {
	if b.err != nil {
		return b
	}
	b.blocks = append(b.blocks, document.NewBlock(NewKey(), typ, text))
	return b
}

// WithKey replaces the key of the last block.
func (b *Builder) WithKey(key document.Key) *Builder {
	return b.update(func(last *document.Block) (*document.Block, error) {
		return document.NewBlockWithChars(key, last.Type(), last.Text(), last.Chars())
	})
}

// WithDepth sets the nesting depth of the last block.
func (b *Builder) WithDepth(depth int) *Builder {
	return b.update(func(last *document.Block) (*document.Block, error) {
		return last.WithDepth(depth), nil
	})
}

// AddEntity annotates the whole last block with a new annotation.
func (b *Builder) AddEntity(d entity.Draft) *Builder {
	if b.err == nil && len(b.blocks) > 0 {
		return b.AddEntityAt(d, 0, b.blocks[len(b.blocks)-1].Len())
	}
	return b.AddEntityAt(d, 0, 0)
}

// AddEntityAt annotates [offset, offset+length) of the last block with a new
// annotation.
func (b *Builder) AddEntityAt(d entity.Draft, offset, length int) *Builder {
	return b.update(func(last *document.Block) (*document.Block, error) {
		if err := checkSpan(offset, length, last.Len()); err != nil {
			return nil, err
		}
		reg, id := b.reg.CreateFromDraft(d)
		nb, err := last.ApplyEntity(offset, offset+length, id)
		if err != nil {
			return nil, err
		}
		b.reg = reg
		return nb, nil
	})
}

// AddInlineStyle adds styles to [offset, offset+length) of the last block.
func (b *Builder) AddInlineStyle(offset, length int, styles ...string) *Builder {
	return b.update(func(last *document.Block) (*document.Block, error) {
		if err := checkSpan(offset, length, last.Len()); err != nil {
			return nil, err
		}
		return last.UpdateChars(func(i int, c document.CharMeta) document.CharMeta {
			if i < offset || i >= offset+length {
				return c
			}
			for _, s := range styles {
				c.Style = c.Style.Add(s)
			}
			return c
		}), nil
	})
}

func (b *Builder) update(fn func(last *document.Block) (*document.Block, error)) *Builder {
	if b.err != nil {
		return b
	}
	if len(b.blocks) == 0 {
		b.err = errNoBlock
		return b
	}
	i := len(b.blocks) - 1
	nb, err := fn(b.blocks[i])
	if err != nil {
		b.err = fmt.Errorf("block %d: %w", i, err)
		return b
	}
	b.blocks[i] = nb
	return b
}

// Build returns the assembled document or the first error encountered.
func (b *Builder) Build() (*document.Document, error) {
	if b.err != nil {
		return nil, b.err
	}
	return document.New(b.reg, b.blocks...)
}
