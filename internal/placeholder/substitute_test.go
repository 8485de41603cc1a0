package placeholder

import (
	"errors"
	"testing"

	"github.com/dshills/placeholder/internal/engine/document"
	"github.com/dshills/placeholder/internal/engine/entity"
)

func TestSubstitute(t *testing.T) {
	doc := exampleDoc(t).build()

	got, err := Substitute(doc, mentions)
	if err != nil {
		t.Fatalf("substitute failed: %v", err)
	}

	if text := got.FirstBlock().Text(); text != "Luis Betancourt programmer" {
		t.Errorf("expected 'Luis Betancourt programmer', got %q", text)
	}
	if text := doc.FirstBlock().Text(); text != "Cristian Graziano student" {
		t.Errorf("input document changed: %q", text)
	}

	ranges := ScanRanges(got.FirstBlock(), got.Entities())
	want := [][2]int{{0, 4}, {5, 15}, {16, 26}}
	if len(ranges) != len(want) {
		t.Fatalf("expected %d ranges, got %v", len(want), ranges)
	}
	for i, r := range ranges {
		if r.Start != want[i][0] || r.End != want[i][1] {
			t.Errorf("range %d: expected %v, got [%d:%d)", i, want[i], r.Start, r.End)
		}
	}
}

func TestSubstituteStyleInheritance(t *testing.T) {
	doc := exampleDoc(t).style("COLOR_RED", 0, 8).build()

	got, err := Substitute(doc, mentions)
	if err != nil {
		t.Fatalf("substitute failed: %v", err)
	}

	b := got.FirstBlock()
	for i := 0; i < 4; i++ {
		if names := b.StyleAt(i).Names(); len(names) != 1 || names[0] != "COLOR_RED" {
			t.Errorf("offset %d: expected [COLOR_RED], got %v", i, names)
		}
	}
	if !b.StyleAt(5).IsEmpty() {
		t.Errorf("offset 5 should be unstyled, got %v", b.StyleAt(5))
	}
}

func TestSubstituteStyleFromFirstCharOfLaterRange(t *testing.T) {
	doc := exampleDoc(t).style(document.StyleBold, 18, 1).build()

	got, err := Substitute(doc, mentions)
	if err != nil {
		t.Fatalf("substitute failed: %v", err)
	}

	b := got.FirstBlock()
	for i := 16; i < b.Len(); i++ {
		if !b.StyleAt(i).Has(document.StyleBold) {
			t.Errorf("offset %d: expected BOLD", i)
		}
	}
	if b.StyleAt(15).Has(document.StyleBold) {
		t.Error("offset 15 must not be bold")
	}
}

func TestSubstituteIdempotent(t *testing.T) {
	doc := exampleDoc(t).block("plain").build()

	once, err := Substitute(doc, mentions)
	if err != nil {
		t.Fatalf("substitute failed: %v", err)
	}
	twice, err := Substitute(once, mentions)
	if err != nil {
		t.Fatalf("substitute failed: %v", err)
	}

	if once.Text() != twice.Text() {
		t.Errorf("second pass changed text: %q -> %q", once.Text(), twice.Text())
	}
	if twice != once {
		t.Error("second pass should return the same document")
	}
	if once.BlockAt(1) != doc.BlockAt(1) {
		t.Error("block without placeholders should be shared")
	}
}

func TestSubstituteUpdatesRegistry(t *testing.T) {
	doc := exampleDoc(t).build()

	got, err := Substitute(doc, mentions)
	if err != nil {
		t.Fatalf("substitute failed: %v", err)
	}

	if p := placeholderAt(t, got, got.FirstBlock(), 0); p.Value != "Luis" {
		t.Errorf("expected registry value Luis, got %q", p.Value)
	}
	if p := placeholderAt(t, doc, doc.FirstBlock(), 0); p.Value != "Cristian" {
		t.Errorf("input registry changed: %q", p.Value)
	}
	if got.Entities().Version() <= doc.Entities().Version() {
		t.Errorf("expected a newer registry version, got %d", got.Entities().Version())
	}
}

func TestSubstituteSharedIdentityAcrossBlocks(t *testing.T) {
	b := newDoc(t).
		block("Will do").
		entity(Entity(New("chance", "Will")), 0, 4).
		block("Will not")
	id := b.reg.LastCreated()
	doc := b.attach(id, 0, 4).build()

	got, err := Substitute(doc, []Placeholder{New("chance", "May")})
	if err != nil {
		t.Fatalf("substitute failed: %v", err)
	}
	if got.Text() != "May do\nMay not" {
		t.Errorf("expected both blocks rewritten, got %q", got.Text())
	}
}

func TestSubstituteEmptyValue(t *testing.T) {
	doc := exampleDoc(t).build()

	got, err := Substitute(doc, []Placeholder{New("lastName", "")})
	if err != nil {
		t.Fatalf("substitute failed: %v", err)
	}

	b := got.FirstBlock()
	if b.Text() != "Cristian   student" {
		t.Errorf("expected single space for empty value, got %q", b.Text())
	}
	ranges := ScanRanges(b, got.Entities())
	if len(ranges) != 3 {
		t.Fatalf("expected 3 ranges, got %v", ranges)
	}
	if ranges[1].Start != 9 || ranges[1].End != 10 {
		t.Errorf("empty placeholder should anchor one character, got %v", ranges[1])
	}
	if ranges[2].Start != 11 || ranges[2].End != 18 {
		t.Errorf("later range misaligned: %v", ranges[2])
	}
}

func TestSubstituteRewritesEditedSpan(t *testing.T) {
	// The registry says "student" but the text was edited to "stu".
	doc := newDoc(t).block("a stu b").entity(Entity(New("job", "student")), 2, 3).build()

	got, err := Substitute(doc, nil)
	if err != nil {
		t.Fatalf("substitute failed: %v", err)
	}
	if got.FirstBlock().Text() != "a student b" {
		t.Errorf("expected span restored from registry, got %q", got.FirstBlock().Text())
	}
}

func TestSubstituteIgnoresOtherKinds(t *testing.T) {
	doc := newDoc(t).
		block("click here for job").
		entity(link(), 0, 10).
		entity(Entity(New("job", "job")), 15, 3).
		build()

	got, err := Substitute(doc, []Placeholder{New("job", "work"), New("click", "x")})
	if err != nil {
		t.Fatalf("substitute failed: %v", err)
	}
	if got.FirstBlock().Text() != "click here for work" {
		t.Errorf("unexpected text %q", got.FirstBlock().Text())
	}
	if got.FirstBlock().EntityAt(0) != doc.FirstBlock().EntityAt(0) {
		t.Error("link annotation must be kept")
	}
}

func TestSubstituteUnknownNameKeepsValue(t *testing.T) {
	doc := exampleDoc(t).build()

	got, err := Substitute(doc, []Placeholder{New("age", "34")})
	if err != nil {
		t.Fatalf("substitute failed: %v", err)
	}
	if got != doc {
		t.Error("expected the same document when nothing changes")
	}
}

func TestSubstituteNotFound(t *testing.T) {
	b, _ := document.NewBlock("k", document.Unstyled, "abc").ApplyEntity(0, 2, 99)
	doc, _ := document.New(entity.NewRegistry(), b)

	_, err := Substitute(doc, mentions)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSubstituteMultibyte(t *testing.T) {
	doc := newDoc(t).
		block("¡héllo wörld!").
		entity(Entity(New("greeting", "héllo")), 1, 5).
		entity(Entity(New("place", "wörld")), 7, 5).
		build()

	got, err := Substitute(doc, []Placeholder{New("greeting", "olá"), New("place", "mundo")})
	if err != nil {
		t.Fatalf("substitute failed: %v", err)
	}
	if got.FirstBlock().Text() != "¡olá mundo!" {
		t.Errorf("expected '¡olá mundo!', got %q", got.FirstBlock().Text())
	}
}

func TestRemoveThenSubstitute(t *testing.T) {
	doc := exampleDoc(t).build()

	removed, err := RemoveByName(doc, "job")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	jobID := doc.FirstBlock().EntityAt(18)

	got, err := Substitute(removed, mentions)
	if err != nil {
		t.Fatalf("substitute failed: %v", err)
	}
	if got.FirstBlock().Text() != "Luis Betancourt student" {
		t.Errorf("detached span must keep its text, got %q", got.FirstBlock().Text())
	}

	a, err := got.Entity(jobID)
	if err != nil {
		t.Fatalf("registry entry must survive removal: %v", err)
	}
	if p, _ := a.Placeholder(); p.Value != "student" {
		t.Errorf("unreferenced annotation must not be merged, got %q", p.Value)
	}
}
