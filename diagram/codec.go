package diagram

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// EncodeGraph serializes a Graph to its wire shape: {"nodes": [...], "edges": [...]}.
func EncodeGraph(g *Graph) ([]byte, error) {
	data, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("encoding graph: %w", err)
	}
	return data, nil
}

// EncodeGraphIndent is EncodeGraph with indentation, for CLI output.
func EncodeGraphIndent(g *Graph) ([]byte, error) {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding graph: %w", err)
	}
	return data, nil
}

// DecodeGraph deserializes a Graph from its wire shape. Unknown fields are
// ignored so that graphs annotated by external renderers still decode.
func DecodeGraph(data []byte) (*Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("decoding graph: %w", err)
	}
	return &g, nil
}
