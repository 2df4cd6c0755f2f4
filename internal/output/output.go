// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output persists parse results: the JSON body itself and an
// optional YAML metadata sidecar.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docparse/pkg/types"
)

const indent = "  "

// Pretty returns result indented with two spaces and no trailing newline.
// Only whitespace changes: key order, number spelling (1.0, 1e2), string
// escapes (\u00e9, \/) and duplicate keys are kept as the service sent them,
// unlike a decode and re-encode round trip.
func Pretty(result types.ParseResult) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(result), "", indent); err != nil {
		return nil, fmt.Errorf("formatting result: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteJSON writes the pretty-printed result to path, replacing any previous
// content. The file is written to a temporary name and renamed into place so
// a failed write never leaves a partial result behind.
func WriteJSON(path string, result types.ParseResult) error {
	data, err := Pretty(result)
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

// WriteMetadata writes meta as YAML to path.
func WriteMetadata(path string, meta types.ResultMetadata) error {
	data, err := yaml.Marshal(&meta)
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}
	return writeAtomic(path, data)
}

// ReadMetadata loads a sidecar written by WriteMetadata.
func ReadMetadata(path string) (*types.ResultMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metadata %s: %w", path, err)
	}
	var meta types.ResultMetadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parsing metadata %s: %w", path, err)
	}
	return &meta, nil
}

func writeAtomic(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".docparse-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
