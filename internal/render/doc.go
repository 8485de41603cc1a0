// Package render turns documents into output for hosts.
//
// Renderers never change a document. Three families exist:
//
//   - Markers writes plain text, one line per block, with every placeholder
//     range wrapped in configurable open and close markers.
//   - Raw writes the document's raw form as YAML or JSON.
//   - Screen draws the document onto a terminal screen with placeholder
//     ranges highlighted.
//
// New selects a text renderer from a Format:
//
//	r, err := render.New(render.Options{Format: render.FormatText, Open: "[", Close: "]"})
//	out, err := r.Render(doc)
package render
