// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workspace describes the documents/output directory layout a parse
// run reads from and writes to.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/docparse/pkg/types"
)

const (
	DefaultDocumentsDir = "documents"
	DefaultOutputDir    = "output"
	DefaultDocument     = "form-dv-test-2.pdf"
	DefaultOutputFile   = "parsed_output.json"
)

// Layout is the pair of directories a run uses.
type Layout struct {
	DocumentsDir string
	OutputDir    string
}

// FromConfig builds a Layout, filling empty directories with defaults.
func FromConfig(cfg types.WorkspaceConfig) Layout {
	l := Layout{DocumentsDir: cfg.DocumentsDir, OutputDir: cfg.OutputDir}
	if l.DocumentsDir == "" {
		l.DocumentsDir = DefaultDocumentsDir
	}
	if l.OutputDir == "" {
		l.OutputDir = DefaultOutputDir
	}
	return l
}

// Dirs returns the directories in creation order.
func (l Layout) Dirs() []string {
	return []string{l.DocumentsDir, l.OutputDir}
}

// Ensure creates any missing layout directory and returns the ones it
// created. Directories that already exist are left alone, so repeated calls
// return nil and no error.
func (l Layout) Ensure() ([]string, error) {
	var created []string
	for _, dir := range l.Dirs() {
		info, err := os.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return created, fmt.Errorf("%s exists and is not a directory", dir)
			}
			continue
		}
		if !os.IsNotExist(err) {
			return created, fmt.Errorf("checking %s: %w", dir, err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return created, fmt.Errorf("creating directory %s: %w", dir, err)
		}
		created = append(created, dir)
	}
	return created, nil
}

// DocumentPath joins name onto the documents directory. Absolute names and
// names containing a directory are returned unchanged.
func (l Layout) DocumentPath(name string) string {
	if name == "" {
		name = DefaultDocument
	}
	if filepath.IsAbs(name) || filepath.Base(name) != name {
		return name
	}
	return filepath.Join(l.DocumentsDir, name)
}

// OutputPath joins name onto the output directory.
func (l Layout) OutputPath(name string) string {
	if name == "" {
		name = DefaultOutputFile
	}
	return filepath.Join(l.OutputDir, name)
}

// MetadataPath returns the YAML sidecar path for an output file.
func MetadataPath(outputPath string) string {
	ext := filepath.Ext(outputPath)
	return outputPath[:len(outputPath)-len(ext)] + ".meta.yaml"
}
