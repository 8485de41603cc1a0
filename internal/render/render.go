package render

import (
	"errors"
	"fmt"

	"github.com/dshills/placeholder/internal/engine/document"
)

// ErrUnknownFormat is returned by New for an unsupported format.
var ErrUnknownFormat = errors.New("unknown render format")

// Renderer turns a document into text.
type Renderer interface {
	Render(doc *document.Document) (string, error)
}

// Format names an output format.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Options selects and configures a renderer.
type Options struct {
	Format Format
	Open   string // Marker before each placeholder range (text only)
	Close  string // Marker after each placeholder range (text only)
}

// New returns the renderer for opts.Format. An empty format means text.
func New(opts Options) (Renderer, error) {
	switch opts.Format {
	case FormatText, "":
		return Markers{Open: opts.Open, Close: opts.Close}, nil
	case FormatYAML, FormatJSON:
		return Raw{Format: opts.Format}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}
