package render

import (
	"github.com/dshills/placeholder/internal/engine/document"
	"github.com/dshills/placeholder/internal/rawdoc"
)

// Raw renders the document's raw form.
type Raw struct {
	Format Format // FormatYAML or FormatJSON
}

// Render implements Renderer.
func (r Raw) Render(doc *document.Document) (string, error) {
	var (
		data []byte
		err  error
	)
	if r.Format == FormatJSON {
		data, err = rawdoc.EncodeJSON(doc)
	} else {
		data, err = rawdoc.EncodeYAML(doc)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
