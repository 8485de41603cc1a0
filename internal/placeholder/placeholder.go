package placeholder

import (
	"fmt"

	"github.com/dshills/placeholder/internal/engine/entity"
)

// Placeholder is the host's authoritative record for one name.
type Placeholder struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Value string `json:"value" yaml:"value"`
}

// New creates a placeholder.
func New(name, value string) Placeholder {
	return Placeholder{Name: name, Value: value}
}

// String returns "name=value".
func (p Placeholder) String() string {
	return fmt.Sprintf("%s=%q", p.Name, p.Value)
}

// Data returns the annotation payload for p.
func (p Placeholder) Data() entity.PlaceholderData {
	return entity.PlaceholderData{Name: p.Name, Value: p.Value}
}

// FromData converts an annotation payload back to a placeholder.
func FromData(d entity.PlaceholderData) Placeholder {
	return Placeholder{Name: d.Name, Value: d.Value}
}

// Entity returns the annotation draft for p: kind placeholder, immutable.
func Entity(p Placeholder) entity.Draft {
	return entity.Draft{
		Kind:       entity.KindPlaceholder,
		Mutability: entity.Immutable,
		Data:       p.Data(),
	}
}

// valuesByName maps each name to the value of its first occurrence.
func valuesByName(placeholders []Placeholder) map[string]string {
	m := make(map[string]string, len(placeholders))
	for _, p := range placeholders {
		if _, ok := m[p.Name]; !ok {
			m[p.Name] = p.Value
		}
	}
	return m
}
