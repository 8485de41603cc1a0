// Package selection provides the block-scoped cursor and selection type used
// by the placeholder annotator.
//
// Selections use an anchor/head model where:
//   - Anchor: The position where the selection started
//   - Head: The current cursor position (where typing would occur)
//
// When Anchor == Head the selection is collapsed: a cursor with no selected
// text. Both offsets count characters inside a single block; selections that
// span blocks are outside this package's scope.
//
// Selection is an immutable value type and safe for concurrent use.
package selection
