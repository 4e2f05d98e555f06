// Package jsonfile implements the repositories on top of small JSON
// documents, one file per store. Every document is pretty-printed UTF-8
// and rewritten in full after each mutation; each store serializes its
// own load-modify-persist cycle with a mutex.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
)

// readDocument loads the JSON document at path into v. A missing file
// is not an error: v keeps its zero value and the first save creates
// the file.
func readDocument(path string, v any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// writeDocument persists v to path as indented JSON
func writeDocument(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
