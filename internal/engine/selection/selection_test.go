package selection

import (
	"errors"
	"testing"

	"github.com/dshills/placeholder/internal/engine/document"
)

func TestSelectionBounds(t *testing.T) {
	s := New("k", 7, 3)

	if s.Start() != 3 || s.End() != 7 {
		t.Errorf("expected [3,7], got [%d,%d]", s.Start(), s.End())
	}
	if s.Len() != 4 {
		t.Errorf("expected len 4, got %d", s.Len())
	}
	if !s.IsBackward() {
		t.Error("expected backward selection")
	}
	if s.IsCollapsed() {
		t.Error("expected non-collapsed selection")
	}
}

func TestSelectionCollapse(t *testing.T) {
	s := New("k", 7, 3)

	tests := []struct {
		name string
		got  Selection
		want int
	}{
		{"collapse to head", s.Collapse(), 3},
		{"collapse to start", s.CollapseToStart(), 3},
		{"collapse to end", s.CollapseToEnd(), 7},
		{"move to", s.MoveTo(5), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.IsCollapsed() {
				t.Errorf("expected collapsed, got %s", tt.got)
			}
			if tt.got.Head != tt.want {
				t.Errorf("expected %d, got %d", tt.want, tt.got.Head)
			}
			if tt.got.BlockKey != "k" {
				t.Errorf("block key lost: %q", tt.got.BlockKey)
			}
		})
	}
}

func TestSelectionValidate(t *testing.T) {
	doc, _ := document.New(nil, document.NewBlock("k", document.Unstyled, "hello"))

	tests := []struct {
		name    string
		sel     Selection
		wantErr bool
	}{
		{"cursor at start", Cursor("k", 0), false},
		{"cursor at end", Cursor("k", 5), false},
		{"whole block", New("k", 0, 5), false},
		{"unknown block", Cursor("x", 0), true},
		{"past end", New("k", 2, 6), true},
		{"negative", Cursor("k", -1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.sel.Validate(doc)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSelection) {
					t.Errorf("expected ErrInvalidSelection, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.Key() != "k" {
				t.Errorf("expected block k, got %s", b.Key())
			}
		})
	}
}

func TestSpan(t *testing.T) {
	s := Span(document.Range{BlockKey: "k", Start: 2, End: 4})
	if s.Anchor != 2 || s.Head != 4 || s.BlockKey != "k" {
		t.Errorf("unexpected span %s", s)
	}
	if s.Range().Len() != 2 {
		t.Errorf("expected range len 2, got %d", s.Range().Len())
	}
}

func TestSelectionString(t *testing.T) {
	if got := Cursor("k", 3).String(); got != "Cursor(k:3)" {
		t.Errorf("unexpected %q", got)
	}
	if got := New("k", 1, 4).String(); got != "Selection(k:1→4)" {
		t.Errorf("unexpected %q", got)
	}
}
