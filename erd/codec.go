package erd

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// EncodeDocument serializes a Document to its wire shape:
// {"entities": [...], "relationships": [...]}.
func EncodeDocument(doc *Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return data, nil
}

// EncodeDocumentIndent is EncodeDocument with indentation, for CLI output.
func EncodeDocumentIndent(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return data, nil
}

// DecodeDocument deserializes a Document from its wire shape.
func DecodeDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return &doc, nil
}
