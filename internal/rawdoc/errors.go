package rawdoc

import (
	"errors"
	"fmt"
)

// ErrEntityRange indicates an entity or style range that does not fit its block.
var ErrEntityRange = errors.New("range outside block")

// ParseError describes malformed raw input.
type ParseError struct {
	Path    string // File path or "<input>"
	Message string // Human-readable description
	Err     error  // Underlying error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
