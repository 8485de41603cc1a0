package document

import (
	"slices"
	"strings"
)

// Common inline style names.
const (
	StyleBold          = "BOLD"
	StyleItalic        = "ITALIC"
	StyleUnderline     = "UNDERLINE"
	StyleCode          = "CODE"
	StyleStrikethrough = "STRIKETHROUGH"
)

// StyleSet is an immutable, sorted set of inline style names.
// The zero value is the empty set.
type StyleSet struct {
	names []string
}

// NewStyleSet creates a style set from the given names. Duplicates and empty
// names are dropped.
func NewStyleSet(names ...string) StyleSet {
	if len(names) == 0 {
		return StyleSet{}
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	out = slices.Compact(out)
	if len(out) == 0 {
		return StyleSet{}
	}
	return StyleSet{names: out}
}

// Len returns the number of styles in the set.
func (s StyleSet) Len() int {
	return len(s.names)
}

// IsEmpty returns true if the set has no styles.
func (s StyleSet) IsEmpty() bool {
	return len(s.names) == 0
}

// Has returns true if name is in the set.
func (s StyleSet) Has(name string) bool {
	_, found := slices.BinarySearch(s.names, name)
	return found
}

// Add returns a set that also contains name.
func (s StyleSet) Add(name string) StyleSet {
	if name == "" || s.Has(name) {
		return s
	}
	return NewStyleSet(append(slices.Clone(s.names), name)...)
}

// Remove returns a set without name.
func (s StyleSet) Remove(name string) StyleSet {
	i, found := slices.BinarySearch(s.names, name)
	if !found {
		return s
	}
	if len(s.names) == 1 {
		return StyleSet{}
	}
	return StyleSet{names: slices.Delete(slices.Clone(s.names), i, i+1)}
}

// Names returns the style names in sorted order.
func (s StyleSet) Names() []string {
	return slices.Clone(s.names)
}

// Equal returns true if both sets contain the same names.
func (s StyleSet) Equal(other StyleSet) bool {
	return slices.Equal(s.names, other.names)
}

// String returns the names joined with "|".
func (s StyleSet) String() string {
	return strings.Join(s.names, "|")
}
