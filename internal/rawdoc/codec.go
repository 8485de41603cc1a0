package rawdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"

	"github.com/dshills/placeholder/internal/engine/document"
)

const inputPath = "<input>"

// Decode parses a raw document from JSON or YAML and converts it.
func Decode(data []byte) (*document.Document, error) {
	return decode(inputPath, data)
}

// ReadFile reads and decodes the raw document at path.
func ReadFile(path string) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decode(path, data)
}

func decode(path string, data []byte) (*document.Document, error) {
	raw, err := unmarshalRaw(path, data)
	if err != nil {
		return nil, err
	}
	doc, err := FromRaw(raw)
	if err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return doc, nil
}

func unmarshalRaw(path string, data []byte) (Raw, error) {
	var raw Raw
	if isJSON(data) {
		if blocks := gjson.GetBytes(data, "blocks"); blocks.Exists() && !blocks.IsArray() {
			return Raw{}, &ParseError{Path: path, Message: "blocks must be an array"}
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return Raw{}, &ParseError{Path: path, Message: fmt.Sprintf("invalid JSON: %v", err), Err: err}
		}
		return raw, nil
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Raw{}, &ParseError{Path: path, Message: fmt.Sprintf("invalid YAML: %v", err), Err: err}
	}
	return raw, nil
}

// isJSON reports whether data is a JSON object.
func isJSON(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{' && gjson.ValidBytes(trimmed)
}

// EncodeJSON writes doc as indented JSON.
func EncodeJSON(doc *document.Document) ([]byte, error) {
	raw, err := ToRaw(doc)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	return pretty.PrettyOptions(data, &pretty.Options{Width: 80, Indent: "  ", SortKeys: true}), nil
}

// EncodeYAML writes doc as YAML.
func EncodeYAML(doc *document.Document) ([]byte, error) {
	raw, err := ToRaw(doc)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(raw); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
