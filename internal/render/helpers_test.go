package render

import "github.com/dshills/placeholder/internal/engine/entity"

func entityLink() entity.Draft {
	return entity.Draft{
		Kind:       "LINK",
		Mutability: entity.Mutable,
		Data:       entity.OpaqueData{Type: "LINK", Fields: map[string]any{"url": "https://example.com"}},
	}
}
