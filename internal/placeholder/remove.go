package placeholder

import (
	"github.com/dshills/placeholder/internal/engine/document"
	"github.com/dshills/placeholder/internal/engine/entity"
)

// RemoveByName detaches every character from placeholder annotations called
// name. Text, styles and the registry are left as they are; other
// annotations are untouched.
func RemoveByName(doc *document.Document, name string) (*document.Document, error) {
	reg := doc.Entities()
	match := make(map[entity.ID]bool)

	return doc.MapBlocks(func(b *document.Block) (*document.Block, error) {
		for i := 0; i < b.Len(); i++ {
			id := b.EntityAt(i)
			if id.IsZero() {
				continue
			}
			if _, done := match[id]; done {
				continue
			}
			p, ok, err := lookupPlaceholder(reg, b, i, id)
			if err != nil {
				return nil, err
			}
			match[id] = ok && p.Name == name
		}

		return b.UpdateChars(func(_ int, c document.CharMeta) document.CharMeta {
			if match[c.Entity] {
				return c.WithEntity(entity.None)
			}
			return c
		}), nil
	})
}
