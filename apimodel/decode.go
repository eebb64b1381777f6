package apimodel

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// DecodeSnapshot parses a persisted model snapshot (the upstream analyzer's
// hand-off format) into an item tree. The root item must be a package.
func DecodeSnapshot(data []byte) (*Item, error) {
	var root Item
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode model snapshot: %w", err)
	}
	if root.Kind != KindPackage {
		return nil, fmt.Errorf("model snapshot root is %q, want %q", root.Kind, KindPackage)
	}
	return &root, nil
}

// LoadSnapshot reads and decodes a snapshot file.
func LoadSnapshot(path string) (*Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model snapshot: %w", err)
	}
	return DecodeSnapshot(data)
}
