package rawdoc

import (
	"encoding/hex"
	"encoding/json"

	"github.com/zeebo/blake3"

	"github.com/dshills/placeholder/internal/engine/document"
)

// Fingerprint returns a hex BLAKE3 digest of the document's raw form. Block
// keys and registry ids take part only through the raw layout, so two
// documents with equal content and keys share a fingerprint regardless of
// how their registries were built.
func Fingerprint(doc *document.Document) (string, error) {
	raw, err := ToRaw(doc)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return "", err
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
