package rawdoc

// Raw is the serialized form of a document.
type Raw struct {
	Blocks    []RawBlock           `json:"blocks" yaml:"blocks"`
	EntityMap map[string]RawEntity `json:"entityMap" yaml:"entityMap"`
}

// RawBlock is the serialized form of one block.
type RawBlock struct {
	Key               string             `json:"key" yaml:"key"`
	Type              string             `json:"type" yaml:"type"`
	Text              string             `json:"text" yaml:"text"`
	Depth             int                `json:"depth" yaml:"depth,omitempty"`
	InlineStyleRanges []InlineStyleRange `json:"inlineStyleRanges" yaml:"inlineStyleRanges,omitempty"`
	EntityRanges      []EntityRange      `json:"entityRanges" yaml:"entityRanges,omitempty"`
}

// InlineStyleRange applies Style to [Offset, Offset+Length).
type InlineStyleRange struct {
	Offset int    `json:"offset" yaml:"offset"`
	Length int    `json:"length" yaml:"length"`
	Style  string `json:"style" yaml:"style"`
}

// EntityRange attaches entity Key of the entity map to [Offset, Offset+Length).
type EntityRange struct {
	Offset int `json:"offset" yaml:"offset"`
	Length int `json:"length" yaml:"length"`
	Key    int `json:"key" yaml:"key"`
}

// RawEntity is the serialized form of an annotation.
type RawEntity struct {
	Type       string         `json:"type" yaml:"type"`
	Mutability string         `json:"mutability" yaml:"mutability"`
	Data       map[string]any `json:"data" yaml:"data"`
}
