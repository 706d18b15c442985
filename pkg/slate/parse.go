package slate

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// ParseError is returned when the raw input cannot be decoded as JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse slate document: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes a Slate document JSON payload of the form {"document":{"nodes":[...]}}.
func Parse(raw []byte) (*Document, error) {
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, &ParseError{Err: err}
	}
	return FromMap(m), nil
}

// ParseString is Parse for string input.
func ParseString(raw string) (*Document, error) {
	return Parse([]byte(raw))
}

// ParsePath parses the Slate document found at a gjson path inside a larger
// JSON payload, e.g. "data.story.content". An empty path parses the whole
// payload. A missing path, or one holding anything but an object or a
// string, yields an empty document. When the path resolves
// to a string, the string is decoded as the document JSON.
func ParsePath(raw []byte, path string) (*Document, error) {
	if path == "" {
		return Parse(raw)
	}
	if !gjson.ValidBytes(raw) {
		// gjson does not report why; let the decoder say it.
		return Parse(raw)
	}

	result := gjson.GetBytes(raw, path)
	if !result.Exists() {
		return &Document{}, nil
	}
	switch {
	case result.Type == gjson.String:
		return ParseString(result.String())
	case result.IsObject():
		return ParseString(result.Raw)
	default:
		// numbers, booleans, null and arrays count as missing
		return &Document{}, nil
	}
}

// FromMap builds a Document from decoded JSON, defaulting every missing field.
// It never fails; fields of the wrong type are treated as missing.
func FromMap(m map[string]interface{}) *Document {
	doc := &Document{Nodes: []Node{}}

	document, ok := m["document"].(map[string]interface{})
	if !ok {
		return doc
	}
	for _, raw := range listField(document, "nodes") {
		doc.Nodes = append(doc.Nodes, nodeFromMap(raw))
	}
	return doc
}

func nodeFromMap(raw interface{}) Node {
	m, _ := raw.(map[string]interface{})

	node := Node{
		Object: stringField(m, "object", "block"),
		Type:   stringField(m, "type", ""),
		Nodes:  []Node{},
		Leaves: []Leaf{},
	}
	for _, child := range listField(m, "nodes") {
		node.Nodes = append(node.Nodes, nodeFromMap(child))
	}
	for _, leaf := range listField(m, "leaves") {
		node.Leaves = append(node.Leaves, leafFromMap(leaf))
	}
	return node
}

func leafFromMap(raw interface{}) Leaf {
	m, _ := raw.(map[string]interface{})

	leaf := Leaf{
		Object: stringField(m, "object", "leaf"),
		Text:   stringField(m, "text", ""),
		Marks:  []Mark{},
	}
	for _, mark := range listField(m, "marks") {
		if mm, ok := mark.(map[string]interface{}); ok {
			leaf.Marks = append(leaf.Marks, Mark(mm))
		} else {
			leaf.Marks = append(leaf.Marks, Mark{"value": mark})
		}
	}
	return leaf
}

func stringField(m map[string]interface{}, key, def string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return def
}

func listField(m map[string]interface{}, key string) []interface{} {
	list, _ := m[key].([]interface{})
	return list
}
