package placeholder

import (
	"errors"

	"github.com/dshills/placeholder/internal/engine/entity"
	"github.com/dshills/placeholder/internal/engine/selection"
)

// Errors returned by placeholder operations.
var (
	// ErrNotFound indicates a character refers to an annotation missing from
	// the registry.
	ErrNotFound = entity.ErrNotFound

	// ErrInvalidSelection indicates a selection outside the document.
	ErrInvalidSelection = selection.ErrInvalidSelection

	// ErrDuplicateName indicates a name already present in a list.
	ErrDuplicateName = errors.New("duplicate placeholder name")

	// ErrUnknownName indicates a name absent from a list.
	ErrUnknownName = errors.New("unknown placeholder name")

	// ErrEmptyName indicates a placeholder without a name.
	ErrEmptyName = errors.New("empty placeholder name")
)
