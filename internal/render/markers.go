package render

import (
	"strings"

	"github.com/dshills/placeholder/internal/engine/document"
	"github.com/dshills/placeholder/internal/placeholder"
)

// Markers renders plain text, one line per block, wrapping each placeholder
// range in Open and Close. With both markers empty the output equals
// Document.Text.
type Markers struct {
	Open  string
	Close string
}

// Render implements Renderer.
func (m Markers) Render(doc *document.Document) (string, error) {
	var sb strings.Builder
	for i, b := range doc.Blocks() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		m.writeBlock(&sb, doc, b)
	}
	return sb.String(), nil
}

func (m Markers) writeBlock(sb *strings.Builder, doc *document.Document, b *document.Block) {
	pos := 0
	for _, r := range placeholder.ScanRanges(b, doc.Entities()) {
		sb.WriteString(b.Slice(pos, r.Start))
		sb.WriteString(m.Open)
		sb.WriteString(b.Slice(r.Start, r.End))
		sb.WriteString(m.Close)
		pos = r.End
	}
	sb.WriteString(b.Slice(pos, b.Len()))
}
