package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"

	"github.com/dshills/placeholder/internal/engine/document"
	"github.com/dshills/placeholder/internal/placeholder"
)

// DefaultHighlight is the background color of placeholder ranges.
const DefaultHighlight = "#ffd75f"

// ParseColor converts a hex color ("#rrggbb" or "#rgb") to a terminal color.
func ParseColor(hex string) (tcell.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// Screen draws documents onto a terminal screen. Each block takes one row,
// indented two cells per depth level and clipped at the screen edge.
type Screen struct {
	screen    tcell.Screen
	highlight tcell.Color
	mu        sync.Mutex
}

// NewScreen wraps an initialized screen. highlight is a hex color; empty
// means DefaultHighlight.
func NewScreen(screen tcell.Screen, highlight string) (*Screen, error) {
	if highlight == "" {
		highlight = DefaultHighlight
	}
	c, err := ParseColor(highlight)
	if err != nil {
		return nil, err
	}
	return &Screen{screen: screen, highlight: c}, nil
}

// Draw clears the screen and draws doc.
func (s *Screen) Draw(doc *document.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Clear()
	width, height := s.screen.Size()
	for y, b := range doc.Blocks() {
		if y >= height {
			break
		}
		s.drawBlock(doc, b, y, width)
	}
	s.screen.Show()
}

func (s *Screen) drawBlock(doc *document.Document, b *document.Block, y, width int) {
	marked := make([]bool, b.Len())
	for _, r := range placeholder.ScanRanges(b, doc.Entities()) {
		for i := r.Start; i < r.End; i++ {
			marked[i] = true
		}
	}

	x := 2 * b.Depth()
	offset := 0
	g := uniseg.NewGraphemes(b.Text())
	for g.Next() {
		runes := g.Runes()
		w := max(g.Width(), 1)
		if x+w > width {
			return
		}
		st := convertStyle(b.StyleAt(offset))
		if marked[offset] {
			st = st.Background(s.highlight)
		}
		s.screen.SetContent(x, y, runes[0], runes[1:], st)
		x += w
		offset += len(runes)
	}
}

// convertStyle converts inline styles to a tcell style.
func convertStyle(set document.StyleSet) tcell.Style {
	style := tcell.StyleDefault
	if set.Has(document.StyleBold) {
		style = style.Bold(true)
	}
	if set.Has(document.StyleItalic) {
		style = style.Italic(true)
	}
	if set.Has(document.StyleUnderline) {
		style = style.Underline(true)
	}
	if set.Has(document.StyleStrikethrough) {
		style = style.StrikeThrough(true)
	}
	if set.Has(document.StyleCode) {
		style = style.Dim(true)
	}
	return style
}
