package placeholder

import (
	"fmt"
	"slices"
)

// List is an ordered set of placeholders with unique, case-sensitive names.
// List is a value type; every change returns a new List.
type List struct {
	items []Placeholder
}

// NewList creates a list, rejecting empty and duplicate names.
func NewList(items ...Placeholder) (List, error) {
	var l List
	for _, p := range items {
		var err error
		if l, err = l.Add(p); err != nil {
			return List{}, err
		}
	}
	return l, nil
}

// Len returns the number of placeholders.
func (l List) Len() int {
	return len(l.items)
}

// Items returns the placeholders in insertion order.
func (l List) Items() []Placeholder {
	return slices.Clone(l.items)
}

// Names returns the names in insertion order.
func (l List) Names() []string {
	names := make([]string, len(l.items))
	for i, p := range l.items {
		names[i] = p.Name
	}
	return names
}

// Index returns the position of name, or -1.
func (l List) Index(name string) int {
	return slices.IndexFunc(l.items, func(p Placeholder) bool { return p.Name == name })
}

// Get returns the placeholder called name.
func (l List) Get(name string) (Placeholder, bool) {
	i := l.Index(name)
	if i < 0 {
		return Placeholder{}, false
	}
	return l.items[i], true
}

// Add appends p. Adding a name already present fails with ErrDuplicateName.
func (l List) Add(p Placeholder) (List, error) {
	if p.Name == "" {
		return l, ErrEmptyName
	}
	if l.Index(p.Name) >= 0 {
		return l, fmt.Errorf("%w: %s", ErrDuplicateName, p.Name)
	}
	return List{items: append(slices.Clone(l.items), p)}, nil
}

// Update sets the value of name.
func (l List) Update(name, value string) (List, error) {
	i := l.Index(name)
	if i < 0 {
		return l, fmt.Errorf("%w: %s", ErrUnknownName, name)
	}
	items := slices.Clone(l.items)
	items[i].Value = value
	return List{items: items}, nil
}

// Remove drops name. Removing an absent name returns l unchanged.
func (l List) Remove(name string) List {
	i := l.Index(name)
	if i < 0 {
		return l
	}
	return List{items: slices.Delete(slices.Clone(l.items), i, i+1)}
}
