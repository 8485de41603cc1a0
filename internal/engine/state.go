package engine

import (
	"github.com/dshills/placeholder/internal/engine/document"
	"github.com/dshills/placeholder/internal/engine/selection"
	"github.com/dshills/placeholder/internal/placeholder"
)

// ChangeType names the kind of the last accepted mutation.
type ChangeType string

const (
	// ChangeNone is the type of the initial state.
	ChangeNone ChangeType = ""
	// ChangeApplyEntity records a document whose annotations or
	// substituted text changed.
	ChangeApplyEntity ChangeType = "apply-entity"
	// ChangeSelection records a selection-only change.
	ChangeSelection ChangeType = "change-selection"
	// ChangePlaceholders records a change to the canonical list alone.
	ChangePlaceholders ChangeType = "change-placeholders"
)

// State is an immutable snapshot of everything the engine holds.
type State struct {
	Document     *document.Document
	Selection    selection.Selection
	Placeholders placeholder.List
	Revision     uint64
	Change       ChangeType
}

// initialSelection is a cursor at the start of doc's first block, or the
// zero selection for an empty document.
func initialSelection(doc *document.Document) selection.Selection {
	if b := doc.FirstBlock(); b != nil {
		return selection.Cursor(b.Key(), 0)
	}
	return selection.Selection{}
}

// keepSelection returns sel if it is still valid in doc, otherwise the
// initial selection of doc.
func keepSelection(doc *document.Document, sel selection.Selection) selection.Selection {
	if _, err := sel.Validate(doc); err == nil {
		return sel
	}
	return initialSelection(doc)
}
