package engine

import (
	"log/slog"

	"github.com/dshills/placeholder/internal/engine/document"
	"github.com/dshills/placeholder/internal/placeholder"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithDocument sets the initial document. The cursor starts at the
// beginning of its first block.
func WithDocument(doc *document.Document) Option {
	return func(e *Engine) {
		if doc != nil {
			e.state.Document = doc
		}
	}
}

// WithPlaceholders sets the initial canonical list.
func WithPlaceholders(list placeholder.List) Option {
	return func(e *Engine) {
		e.state.Placeholders = list
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithProbePolicy sets the cursor probe used by Apply.
func WithProbePolicy(p placeholder.ProbePolicy) Option {
	return func(e *Engine) {
		e.probe = p
	}
}

// WithReadOnly creates a read-only engine.
// Write operations will return ErrReadOnly.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.readOnly = true
	}
}
