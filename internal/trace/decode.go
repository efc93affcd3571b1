package trace

import (
	"encoding/json"
	"fmt"
	"os"
)

// Decode parses a serialized trace document.
//
// Decode assumes the raw bytes have already passed schema validation; it
// reports only hard JSON errors. Use schema.Validate for contract-level
// structural checking with field paths.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode trace document: %w", err)
	}
	return &doc, nil
}

// Load reads and decodes a trace document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace file: %w", err)
	}
	return Decode(data)
}
