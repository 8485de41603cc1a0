package engine

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/dshills/placeholder/internal/engine/document"
	"github.com/dshills/placeholder/internal/engine/selection"
	"github.com/dshills/placeholder/internal/placeholder"
)

// Engine is the facade a host edits through. It holds the current State
// and replaces it atomically on every accepted mutation, bumping the
// revision. Failed operations leave the state untouched.
//
// All operations are thread-safe and can be called from multiple goroutines.
type Engine struct {
	mu sync.RWMutex

	state State

	// Configuration
	logger   *slog.Logger
	probe    placeholder.ProbePolicy
	readOnly bool
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		state:  State{Document: document.Empty()},
		logger: slog.New(slog.DiscardHandler),
		probe:  placeholder.CursorThenPrevious,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.state.Selection = initialSelection(e.state.Document)
	return e
}

// ============================================================================
// Reads
// ============================================================================

// State returns the current state.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Document returns the current document.
func (e *Engine) Document() *document.Document {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Document
}

// Selection returns the current selection.
func (e *Engine) Selection() selection.Selection {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Selection
}

// Placeholders returns the canonical list.
func (e *Engine) Placeholders() placeholder.List {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Placeholders
}

// Text returns the plain text of the current document.
func (e *Engine) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Document.Text()
}

// Revision returns the number of accepted mutations so far.
func (e *Engine) Revision() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Revision
}

// IsReadOnly returns true if the engine rejects writes.
func (e *Engine) IsReadOnly() bool {
	return e.readOnly
}

// ============================================================================
// Host flows
// ============================================================================

// Load replaces the document. Placeholders found in doc but missing from
// canonical are appended to the list, then every placeholder is
// substituted. The selection is kept if still valid.
func (e *Engine) Load(doc *document.Document, canonical []placeholder.Placeholder) error {
	const op = "load"
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkWritable(op); err != nil {
		return err
	}

	merged, err := placeholder.Reconcile(doc, canonical)
	if err != nil {
		return e.fail(op, err)
	}
	list, err := placeholder.NewList(merged...)
	if err != nil {
		return e.fail(op, err)
	}
	nd, err := placeholder.Substitute(doc, list.Items())
	if err != nil {
		return e.fail(op, err)
	}

	e.commitLocked(op, State{
		Document:     nd,
		Selection:    keepSelection(nd, e.state.Selection),
		Placeholders: list,
	}, ChangeApplyEntity)
	return nil
}

// Refresh substitutes the canonical list into the document. A document
// already up to date is not pushed.
func (e *Engine) Refresh() error {
	const op = "refresh"
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkWritable(op); err != nil {
		return err
	}

	nd, err := placeholder.Substitute(e.state.Document, e.state.Placeholders.Items())
	if err != nil {
		return e.fail(op, err)
	}
	if nd == e.state.Document {
		return nil
	}

	next := e.state
	next.Document = nd
	next.Selection = keepSelection(nd, next.Selection)
	e.commitLocked(op, next, ChangeApplyEntity)
	return nil
}

// Apply attaches a placeholder {name, value} at the current selection,
// records it in the canonical list (adding or updating it) and
// substitutes.
func (e *Engine) Apply(name, value string) error {
	const op = "apply"
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkWritable(op); err != nil {
		return err
	}
	if name == "" {
		return e.fail(op, placeholder.ErrEmptyName)
	}

	nd, sel, err := placeholder.ApplyAt(name, value, e.state.Document, e.state.Selection, placeholder.WithProbePolicy(e.probe))
	if err != nil {
		return e.fail(op, err)
	}

	list := e.state.Placeholders
	if _, ok := list.Get(name); ok {
		list, err = list.Update(name, value)
	} else {
		list, err = list.Add(placeholder.New(name, value))
	}
	if err != nil {
		return e.fail(op, err)
	}

	nd, err = placeholder.Substitute(nd, list.Items())
	if err != nil {
		return e.fail(op, err)
	}

	e.commitLocked(op, State{Document: nd, Selection: keepSelection(nd, sel), Placeholders: list}, ChangeApplyEntity)
	return nil
}

// AddPlaceholder appends p to the canonical list. The document is not
// touched.
func (e *Engine) AddPlaceholder(p placeholder.Placeholder) error {
	const op = "add-placeholder"
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkWritable(op); err != nil {
		return err
	}

	list, err := e.state.Placeholders.Add(p)
	if err != nil {
		return e.fail(op, err)
	}

	next := e.state
	next.Placeholders = list
	e.commitLocked(op, next, ChangePlaceholders)
	return nil
}

// UpdatePlaceholder changes the value of name in the canonical list and
// substitutes it into the document.
func (e *Engine) UpdatePlaceholder(name, value string) error {
	const op = "update-placeholder"
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkWritable(op); err != nil {
		return err
	}

	list, err := e.state.Placeholders.Update(name, value)
	if err != nil {
		return e.fail(op, err)
	}
	nd, err := placeholder.Substitute(e.state.Document, list.Items())
	if err != nil {
		return e.fail(op, err)
	}

	e.commitLocked(op, State{
		Document:     nd,
		Selection:    keepSelection(nd, e.state.Selection),
		Placeholders: list,
	}, ChangeApplyEntity)
	return nil
}

// RemovePlaceholder drops name from the canonical list. Annotations in the
// document are kept; a later Load rediscovers them.
func (e *Engine) RemovePlaceholder(name string) error {
	const op = "remove-placeholder"
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkWritable(op); err != nil {
		return err
	}
	if e.state.Placeholders.Index(name) < 0 {
		return e.fail(op, fmt.Errorf("%w: %s", placeholder.ErrUnknownName, name))
	}

	next := e.state
	next.Placeholders = next.Placeholders.Remove(name)
	e.commitLocked(op, next, ChangePlaceholders)
	return nil
}

// DetachPlaceholder drops name from the canonical list and strips every
// annotation carrying it from the document. The text stays as it is.
func (e *Engine) DetachPlaceholder(name string) error {
	const op = "detach-placeholder"
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkWritable(op); err != nil {
		return err
	}

	nd, err := placeholder.RemoveByName(e.state.Document, name)
	if err != nil {
		return e.fail(op, err)
	}
	list := e.state.Placeholders.Remove(name)
	if nd == e.state.Document && list.Len() == e.state.Placeholders.Len() {
		return nil
	}

	next := e.state
	next.Document = nd
	next.Placeholders = list
	e.commitLocked(op, next, ChangeApplyEntity)
	return nil
}

// SetSelection replaces the selection. A selection outside the document
// fails with selection.ErrInvalidSelection. It is allowed on a read-only
// engine.
func (e *Engine) SetSelection(sel selection.Selection) error {
	const op = "set-selection"
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := sel.Validate(e.state.Document); err != nil {
		return e.fail(op, err)
	}
	if sel == e.state.Selection {
		return nil
	}

	next := e.state
	next.Selection = sel
	e.commitLocked(op, next, ChangeSelection)
	return nil
}

// ============================================================================
// Internal
// ============================================================================

func (e *Engine) checkWritable(op string) error {
	if e.readOnly {
		return e.fail(op, ErrReadOnly)
	}
	return nil
}

func (e *Engine) fail(op string, err error) error {
	e.logger.Warn("operation failed", "op", op, "error", err)
	return err
}

// commitLocked replaces the state with next, stamping revision and change
// type.
func (e *Engine) commitLocked(op string, next State, change ChangeType) {
	next.Revision = e.state.Revision + 1
	next.Change = change
	e.state = next
	e.logger.Debug("state pushed",
		"op", op,
		"revision", next.Revision,
		"change", string(change),
		"blocks", next.Document.Len(),
	)
}
