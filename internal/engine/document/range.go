package document

import (
	"fmt"

	"github.com/dshills/placeholder/internal/engine/entity"
)

// Range is a maximal run of characters in one block that share an
// annotation. Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	BlockKey Key
	Start    int
	End      int
	Entity   entity.ID
}

// Len returns the number of characters in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if offset is within [Start, End).
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// ContainsInclusive returns true if offset is within [Start, End].
func (r Range) ContainsInclusive(offset int) bool {
	return offset >= r.Start && offset <= r.End
}

// Shift returns the range moved by delta characters.
func (r Range) Shift(delta int) Range {
	r.Start += delta
	r.End += delta
	return r
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("%s[%d:%d)#%d", r.BlockKey, r.Start, r.End, r.Entity)
}

// Predicate selects annotation IDs for ScanRanges.
type Predicate func(id entity.ID) bool

// ScanRanges returns the maximal runs of characters in b whose annotation ID
// is non-zero and accepted by pred. A run ends where the next character has a
// different ID or the block ends. Ranges are in ascending start order.
func ScanRanges(b *Block, pred Predicate) []Range {
	var (
		ranges []Range
		open   bool
		cur    Range
	)
	for i, c := range b.chars {
		id := c.Entity
		if open && id == cur.Entity {
			continue
		}
		if open {
			cur.End = i
			ranges = append(ranges, cur)
			open = false
		}
		if id.IsZero() || !pred(id) {
			continue
		}
		cur = Range{BlockKey: b.key, Start: i, Entity: id}
		open = true
	}
	if open {
		cur.End = len(b.chars)
		ranges = append(ranges, cur)
	}
	return ranges
}

// EntityRanges returns the runs of characters in b that refer to id.
func EntityRanges(b *Block, id entity.ID) []Range {
	return ScanRanges(b, func(other entity.ID) bool { return other == id })
}
