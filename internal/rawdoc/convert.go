package rawdoc

import (
	"fmt"
	"slices"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/dshills/placeholder/internal/engine/document"
	"github.com/dshills/placeholder/internal/engine/entity"
)

// placeholderDataKey is the key under which placeholder payloads are nested
// in raw entity data.
const placeholderDataKey = string(entity.KindPlaceholder)

// NewKey returns a fresh block key.
func NewKey() document.Key {
	return document.Key(uuid.NewString())
}

// FromRaw builds a document from its raw form. Blocks without a key get a
// generated one.
func FromRaw(raw Raw) (*document.Document, error) {
	reg := entity.NewRegistry()

	rawKeys := make([]string, 0, len(raw.EntityMap))
	for k := range raw.EntityMap {
		rawKeys = append(rawKeys, k)
	}
	sort.Slice(rawKeys, func(i, j int) bool { return lessKey(rawKeys[i], rawKeys[j]) })

	ids := make(map[int]entity.ID, len(rawKeys))
	for _, k := range rawKeys {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("entity key %q: not an integer", k)
		}
		draft, err := draftFromRaw(raw.EntityMap[k])
		if err != nil {
			return nil, fmt.Errorf("entity %s: %w", k, err)
		}
		var id entity.ID
		reg, id = reg.CreateFromDraft(draft)
		ids[n] = id
	}

	blocks := make([]*document.Block, 0, len(raw.Blocks))
	for i, rb := range raw.Blocks {
		b, err := blockFromRaw(rb, ids)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		blocks = append(blocks, b)
	}
	return document.New(reg, blocks...)
}

// lessKey orders numeric keys numerically and anything else lexically.
func lessKey(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}

func draftFromRaw(re RawEntity) (entity.Draft, error) {
	mut := entity.Mutability(re.Mutability)
	if mut == "" {
		mut = entity.Mutable
	}
	kind := entity.Kind(re.Type)
	if kind != entity.KindPlaceholder {
		return entity.Draft{Kind: kind, Mutability: mut, Data: entity.OpaqueData{Type: kind, Fields: re.Data}}, nil
	}

	inner, ok := re.Data[placeholderDataKey].(map[string]any)
	if !ok {
		return entity.Draft{}, fmt.Errorf("placeholder entity without %q data", placeholderDataKey)
	}
	name, _ := inner["name"].(string)
	if name == "" {
		return entity.Draft{}, fmt.Errorf("placeholder entity without name")
	}
	value := ""
	if v, ok := inner["value"]; ok && v != nil {
		value = fmt.Sprint(v)
	}
	return entity.Draft{
		Kind:       entity.KindPlaceholder,
		Mutability: mut,
		Data:       entity.PlaceholderData{Name: name, Value: value},
	}, nil
}

func blockFromRaw(rb RawBlock, ids map[int]entity.ID) (*document.Block, error) {
	key := document.Key(rb.Key)
	if key == "" {
		key = NewKey()
	}
	b := document.NewBlock(key, document.Type(rb.Type), rb.Text)
	chars := b.Chars()

	for _, sr := range rb.InlineStyleRanges {
		if err := checkSpan(sr.Offset, sr.Length, len(chars)); err != nil {
			return nil, fmt.Errorf("style %s: %w", sr.Style, err)
		}
		for i := sr.Offset; i < sr.Offset+sr.Length; i++ {
			chars[i].Style = chars[i].Style.Add(sr.Style)
		}
	}
	for _, er := range rb.EntityRanges {
		if err := checkSpan(er.Offset, er.Length, len(chars)); err != nil {
			return nil, fmt.Errorf("entity %d: %w", er.Key, err)
		}
		id, ok := ids[er.Key]
		if !ok {
			return nil, fmt.Errorf("entity range: %w: raw key %d", entity.ErrNotFound, er.Key)
		}
		for i := er.Offset; i < er.Offset+er.Length; i++ {
			chars[i].Entity = id
		}
	}

	nb, err := document.NewBlockWithChars(key, b.Type(), rb.Text, chars)
	if err != nil {
		return nil, err
	}
	return nb.WithDepth(rb.Depth), nil
}

func checkSpan(offset, length, n int) error {
	if offset < 0 || length < 0 || offset+length > n {
		return fmt.Errorf("%w: [%d:%d) of %d", ErrEntityRange, offset, offset+length, n)
	}
	return nil
}

// ToRaw converts doc to its raw form. Only annotations referenced by some
// character are written; they are numbered in order of first reference.
func ToRaw(doc *document.Document) (Raw, error) {
	raw := Raw{EntityMap: make(map[string]RawEntity)}
	keys := make(map[entity.ID]int)

	for _, b := range doc.Blocks() {
		rb := RawBlock{
			Key:               string(b.Key()),
			Type:              string(b.Type()),
			Text:              b.Text(),
			Depth:             b.Depth(),
			InlineStyleRanges: styleRanges(b),
			EntityRanges:      []EntityRange{},
		}
		for _, r := range document.ScanRanges(b, func(entity.ID) bool { return true }) {
			k, ok := keys[r.Entity]
			if !ok {
				a, err := doc.Entity(r.Entity)
				if err != nil {
					return Raw{}, fmt.Errorf("block %s: %w", b.Key(), err)
				}
				k = len(keys)
				keys[r.Entity] = k
				raw.EntityMap[strconv.Itoa(k)] = entityToRaw(a)
			}
			rb.EntityRanges = append(rb.EntityRanges, EntityRange{Offset: r.Start, Length: r.Len(), Key: k})
		}
		raw.Blocks = append(raw.Blocks, rb)
	}
	return raw, nil
}

func entityToRaw(a entity.Annotation) RawEntity {
	re := RawEntity{Type: string(a.Kind()), Mutability: string(a.Mutability())}
	if p, ok := a.Placeholder(); ok {
		re.Data = map[string]any{
			placeholderDataKey: map[string]any{"name": p.Name, "value": p.Value},
		}
		return re
	}
	if od, ok := a.Data().(entity.OpaqueData); ok {
		re.Data = od.Fields
	}
	if re.Data == nil {
		re.Data = map[string]any{}
	}
	return re
}

// styleRanges returns the maximal runs of each style, ordered by style name
// and then offset.
func styleRanges(b *document.Block) []InlineStyleRange {
	var names []string
	for i := 0; i < b.Len(); i++ {
		for _, n := range b.StyleAt(i).Names() {
			if !slices.Contains(names, n) {
				names = append(names, n)
			}
		}
	}
	slices.Sort(names)

	out := []InlineStyleRange{}
	for _, n := range names {
		start := -1
		for i := 0; i <= b.Len(); i++ {
			on := i < b.Len() && b.StyleAt(i).Has(n)
			switch {
			case on && start < 0:
				start = i
			case !on && start >= 0:
				out = append(out, InlineStyleRange{Offset: start, Length: i - start, Style: n})
				start = -1
			}
		}
	}
	return out
}
