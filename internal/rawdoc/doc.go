// Package rawdoc converts documents to and from their raw serialized form
// and provides a builder for assembling documents in code.
//
// The raw form follows the widely used rich-text "raw content" layout:
//
//	blocks:
//	  - key: a1b2c
//	    type: unstyled
//	    text: Cristian Graziano student
//	    inlineStyleRanges:
//	      - {offset: 0, length: 8, style: COLOR_RED}
//	    entityRanges:
//	      - {offset: 0, length: 8, key: 0}
//	entityMap:
//	  "0":
//	    type: placeholder
//	    mutability: IMMUTABLE
//	    data:
//	      placeholder: {name: firstName, value: Cristian}
//
// Offsets and lengths count Unicode code points. Decode accepts YAML or
// JSON; EncodeYAML and EncodeJSON write the two forms back.
//
// Builder assembles the same structure fluently:
//
//	doc, err := rawdoc.NewBuilder().
//	    AddBlock("May Help With", document.HeaderTwo).
//	    AddEntityAt(placeholder.Entity(placeholder.New("chance", "May")), 0, 3).
//	    Build()
package rawdoc
