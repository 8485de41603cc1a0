package placeholder

import (
	"errors"
	"testing"

	"github.com/dshills/placeholder/internal/engine/document"
	"github.com/dshills/placeholder/internal/engine/entity"
)

func TestRemoveByName(t *testing.T) {
	doc := exampleDoc(t).style(document.StyleItalic, 9, 8).block("plain").build()

	got, err := RemoveByName(doc, "lastName")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	b := got.FirstBlock()
	if b.Text() != doc.FirstBlock().Text() || b.Len() != doc.FirstBlock().Len() {
		t.Errorf("text changed: %q", b.Text())
	}
	for i := 9; i < 17; i++ {
		if b.EntityAt(i) != entity.None {
			t.Errorf("offset %d still annotated", i)
		}
		if !b.StyleAt(i).Has(document.StyleItalic) {
			t.Errorf("offset %d lost its style", i)
		}
	}
	if b.EntityAt(0) == entity.None || b.EntityAt(18) == entity.None {
		t.Error("other placeholders must stay attached")
	}
	if got.BlockAt(1) != doc.BlockAt(1) {
		t.Error("untouched block should be shared")
	}
	if got.Entities() != doc.Entities() {
		t.Error("registry must not change")
	}

	names, _ := Discover(got)
	if len(names) != 2 {
		t.Errorf("expected 2 placeholders left, got %v", names)
	}
}

func TestRemoveByNameNoMatch(t *testing.T) {
	doc := newDoc(t).block("a link").entity(link(), 2, 4).build()

	got, err := RemoveByName(doc, "LINK")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if got != doc {
		t.Error("expected the same document")
	}
}

func TestRemoveByNameNotFound(t *testing.T) {
	b, _ := document.NewBlock("k", document.Unstyled, "abc").ApplyEntity(0, 3, 5)
	doc, _ := document.New(entity.NewRegistry(), b)

	if _, err := RemoveByName(doc, "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
