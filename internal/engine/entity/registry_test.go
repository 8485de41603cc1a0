package entity

import (
	"errors"
	"testing"
)

func TestRegistryCreate(t *testing.T) {
	r := NewRegistry()

	r1, id1 := r.Create(KindPlaceholder, Immutable, PlaceholderData{Name: "job", Value: "student"})
	r2, id2 := r1.Create(KindPlaceholder, Immutable, PlaceholderData{Name: "job", Value: "student"})

	if id1 == None || id2 == None {
		t.Fatal("expected non-zero ids")
	}
	if id1 == id2 {
		t.Errorf("expected fresh id per create, got %d twice", id1)
	}
	if r2.LastCreated() != id2 {
		t.Errorf("expected last created %d, got %d", id2, r2.LastCreated())
	}
	if r.Len() != 0 {
		t.Errorf("original registry should be untouched, got len %d", r.Len())
	}
	if r2.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", r2.Len())
	}
	if r2.Version() != 2 {
		t.Errorf("expected version 2, got %d", r2.Version())
	}
}

func TestRegistryMergeData(t *testing.T) {
	r, id := NewRegistry().Create(KindPlaceholder, Immutable, PlaceholderData{Name: "firstName", Value: "Cristian"})

	merged, err := r.MergeData(id, PlaceholderData{Name: "firstName", Value: "Luis"})
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	old, _ := r.Get(id)
	if p, _ := old.Placeholder(); p.Value != "Cristian" {
		t.Errorf("old registry changed: got %q", p.Value)
	}

	cur, _ := merged.Get(id)
	p, ok := cur.Placeholder()
	if !ok {
		t.Fatal("expected placeholder payload")
	}
	if p.Value != "Luis" {
		t.Errorf("expected Luis, got %q", p.Value)
	}
	if cur.ID() != id || cur.Mutability() != Immutable {
		t.Errorf("identity changed: %v", cur)
	}
	if merged.Version() != r.Version()+1 {
		t.Errorf("expected version bump, got %d -> %d", r.Version(), merged.Version())
	}
}

func TestRegistryMergeOpaque(t *testing.T) {
	r, id := NewRegistry().Create("LINK", Mutable, OpaqueData{Type: "LINK", Fields: map[string]any{"url": "a", "title": "t"}})

	r, err := r.MergeData(id, OpaqueData{Type: "LINK", Fields: map[string]any{"url": "b"}})
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	a, _ := r.Get(id)
	fields := a.Data().(OpaqueData).Fields
	if fields["url"] != "b" || fields["title"] != "t" {
		t.Errorf("unexpected fields %v", fields)
	}
	if a.IsPlaceholder() {
		t.Error("link must not read as placeholder")
	}
}

func TestRegistryErrors(t *testing.T) {
	r, id := NewRegistry().Create("LINK", Mutable, OpaqueData{Type: "LINK"})

	if _, err := r.Lookup(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := r.MergeData(42, PlaceholderData{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := r.MergeData(id, PlaceholderData{Name: "x"}); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("expected ErrKindMismatch, got %v", err)
	}
	if _, err := r.ReplaceData(id, PlaceholderData{Name: "x"}); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("expected ErrKindMismatch, got %v", err)
	}
}

func TestRegistryIDs(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 5; i++ {
		r, _ = r.Create(KindPlaceholder, Immutable, PlaceholderData{})
	}
	ids := r.IDs()
	if len(ids) != 5 {
		t.Fatalf("expected 5 ids, got %d", len(ids))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			t.Errorf("ids not ascending: %v", ids)
		}
	}
	if !r.IsPlaceholder(ids[0]) {
		t.Error("expected placeholder")
	}
	if r.IsPlaceholder(99) {
		t.Error("unknown id must not be a placeholder")
	}
}
