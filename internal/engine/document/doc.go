// Package document provides the block-structured rich-text model the
// placeholder engine operates on.
//
// A Document is an ordered list of Blocks plus the entity.Registry their
// characters refer to. A Block holds its text as a sequence of characters
// (Unicode code points) and, for every character, a CharMeta carrying the
// inline style set and an optional annotation ID. All offsets in this package
// count characters, not bytes.
//
// Persistence:
//
// Blocks and Documents are immutable. Every edit returns a new value that
// shares untouched blocks with the old one:
//
//	b := document.NewBlock("a1", document.Unstyled, "Hello World")
//	b2, _ := b.ReplaceText(6, 11, "Go", document.NewStyleSet("BOLD"), entity.None)
//	// b.Text() == "Hello World", b2.Text() == "Hello Go"
//
//	doc, _ := document.New(nil, b)
//	doc2, _ := doc.WithBlock(b2)
//
// Range Scanning:
//
// ScanRanges walks a block once and reports the maximal runs of characters
// that share one annotation ID accepted by a predicate. Ranges never cross
// block boundaries and are returned in ascending start order.
package document
