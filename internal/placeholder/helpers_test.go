package placeholder

import (
	"fmt"
	"testing"

	"github.com/dshills/placeholder/internal/engine/document"
	"github.com/dshills/placeholder/internal/engine/entity"
)

// docBuilder assembles test documents block by block.
type docBuilder struct {
	t      *testing.T
	reg    *entity.Registry
	blocks []*document.Block
}

func newDoc(t *testing.T) *docBuilder {
	t.Helper()
	return &docBuilder{t: t, reg: entity.NewRegistry()}
}

func (d *docBuilder) block(text string) *docBuilder {
	key := document.Key(fmt.Sprintf("b%d", len(d.blocks)))
	d.blocks = append(d.blocks, document.NewBlock(key, document.Unstyled, text))
	return d
}

func (d *docBuilder) last() *document.Block {
	return d.blocks[len(d.blocks)-1]
}

func (d *docBuilder) set(b *document.Block) {
	d.blocks[len(d.blocks)-1] = b
}

// entity registers draft and attaches it to [offset, offset+length) of the
// last block. A negative length covers the whole block.
func (d *docBuilder) entity(draft entity.Draft, offset, length int) *docBuilder {
	d.t.Helper()
	var id entity.ID
	d.reg, id = d.reg.CreateFromDraft(draft)
	return d.attach(id, offset, length)
}

// attach references an already registered id.
func (d *docBuilder) attach(id entity.ID, offset, length int) *docBuilder {
	d.t.Helper()
	if length < 0 {
		offset, length = 0, d.last().Len()
	}
	b, err := d.last().ApplyEntity(offset, offset+length, id)
	if err != nil {
		d.t.Fatalf("attach: %v", err)
	}
	d.set(b)
	return d
}

func (d *docBuilder) style(name string, offset, length int) *docBuilder {
	d.set(d.last().UpdateChars(func(i int, c document.CharMeta) document.CharMeta {
		if i >= offset && i < offset+length {
			c.Style = c.Style.Add(name)
		}
		return c
	}))
	return d
}

func (d *docBuilder) build() *document.Document {
	d.t.Helper()
	doc, err := document.New(d.reg, d.blocks...)
	if err != nil {
		d.t.Fatalf("build: %v", err)
	}
	return doc
}

func link() entity.Draft {
	return entity.Draft{
		Kind:       "LINK",
		Mutability: entity.Mutable,
		Data:       entity.OpaqueData{Type: "LINK", Fields: map[string]any{"url": "https://example.com"}},
	}
}

// exampleDoc is "Cristian Graziano student" with three placeholders.
func exampleDoc(t *testing.T) *docBuilder {
	return newDoc(t).
		block("Cristian Graziano student").
		entity(Entity(New("firstName", "Cristian")), 0, 8).
		entity(Entity(New("lastName", "Graziano")), 9, 8).
		entity(Entity(New("job", "student")), 18, 7)
}

var mentions = []Placeholder{
	New("firstName", "Luis"),
	New("lastName", "Betancourt"),
	New("job", "programmer"),
}

func placeholderAt(t *testing.T, doc *document.Document, b *document.Block, offset int) entity.PlaceholderData {
	t.Helper()
	a, err := doc.Entity(b.EntityAt(offset))
	if err != nil {
		t.Fatalf("offset %d: %v", offset, err)
	}
	p, ok := a.Placeholder()
	if !ok {
		t.Fatalf("offset %d: not a placeholder: %v", offset, a)
	}
	return p
}
