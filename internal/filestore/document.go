package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DocumentVersion is the schema version written to every document.
// Documents without a version field are the original unversioned format and read as version 0.
const DocumentVersion = 1

var errCorrupt = errors.New("corrupt document")

func encodeDocument[T any](key string, items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	doc := map[string]any{
		"version": DocumentVersion,
		key:       items,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", key, err)
	}
	return append(data, '\n'), nil
}

func decodeDocument[T any](key string, data []byte) ([]T, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", errCorrupt, err)
	}

	version := 0
	if v, ok := raw["version"]; ok {
		if err := json.Unmarshal(v, &version); err != nil {
			return nil, fmt.Errorf("%w: version: %v", errCorrupt, err)
		}
	}
	if version > DocumentVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", errCorrupt, version)
	}

	items := []T{}
	if body, ok := raw[key]; ok && string(body) != "null" {
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", errCorrupt, key, err)
		}
	}
	return items, nil
}
