package configs

import (
	"bytes"

	"github.com/BurntSushi/toml"
)

// Document is a generic TOML document. Decoding into a map instead of a
// struct keeps fields this tool does not know about intact across a rewrite.
type Document map[string]interface{}

// ParseDocument parses TOML text into a Document.
// Empty input is a valid, empty document.
func ParseDocument(text string) (Document, error) {
	doc := Document{}
	if err := toml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// EncodeDocument serializes a Document back to TOML text.
func EncodeDocument(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Table returns the named top-level table of the document.
// The second result is false when the key is absent or not a table.
func (d Document) Table(name string) (map[string]interface{}, bool) {
	table, ok := d[name].(map[string]interface{})
	return table, ok
}
