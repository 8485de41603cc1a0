package rawdoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dshills/placeholder/internal/placeholder"
)

// ValuesFile is the serialized placeholder list.
type ValuesFile struct {
	Placeholders []placeholder.Placeholder `json:"placeholders" yaml:"placeholders" validate:"dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeValues parses a placeholder list from JSON or YAML. Every entry
// needs a name and names must be unique.
func DecodeValues(data []byte) (placeholder.List, error) {
	return decodeValues(inputPath, data)
}

// ReadValues reads and decodes the placeholder list at path.
func ReadValues(path string) (placeholder.List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return placeholder.List{}, err
	}
	return decodeValues(path, data)
}

func decodeValues(path string, data []byte) (placeholder.List, error) {
	var vf ValuesFile
	var err error
	if isJSON(data) {
		err = json.Unmarshal(data, &vf)
	} else {
		err = yaml.Unmarshal(data, &vf)
	}
	if err != nil {
		return placeholder.List{}, &ParseError{Path: path, Message: fmt.Sprintf("invalid values: %v", err), Err: err}
	}

	if err := validate.Struct(vf); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return placeholder.List{}, &ParseError{
				Path:    path,
				Message: fmt.Sprintf("%s: failed %q check", fe.Namespace(), fe.Tag()),
				Err:     placeholder.ErrEmptyName,
			}
		}
		return placeholder.List{}, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	list, err := placeholder.NewList(vf.Placeholders...)
	if err != nil {
		return placeholder.List{}, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return list, nil
}

// EncodeValues writes list as YAML.
func EncodeValues(list placeholder.List) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(ValuesFile{Placeholders: list.Items()}); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
