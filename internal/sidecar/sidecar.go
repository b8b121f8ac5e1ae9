// Package sidecar maps model files to their metadata sidecars and writes them.
package sidecar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Path returns the sidecar location for a model file: the file's base name
// with its extension replaced by .json, placed under outputDir.
func Path(inputPath, outputDir string) string {
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
	return filepath.Join(outputDir, name)
}

// WriteJSON persists v at path as UTF-8 JSON with 4-space indentation,
// keeping non-ASCII characters literal. Parent directories are created as
// needed and an existing file is replaced without inspection.
func WriteJSON(path string, v any) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create sidecar directory %q: %w", dir, err)
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode sidecar: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write sidecar: %w", err)
	}
	return nil
}
