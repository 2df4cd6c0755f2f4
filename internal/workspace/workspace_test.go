// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docparse/pkg/types"
)

func testLayout(t *testing.T) Layout {
	t.Helper()
	root := t.TempDir()
	return Layout{
		DocumentsDir: filepath.Join(root, "documents"),
		OutputDir:    filepath.Join(root, "output"),
	}
}

func TestEnsure_CreatesMissingOnce(t *testing.T) {
	l := testLayout(t)

	created, err := l.Ensure()
	require.NoError(t, err)
	assert.Equal(t, []string{l.DocumentsDir, l.OutputDir}, created)

	for _, dir := range l.Dirs() {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	created, err = l.Ensure()
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestEnsure_PartiallyPresent(t *testing.T) {
	l := testLayout(t)
	require.NoError(t, os.MkdirAll(l.DocumentsDir, 0o755))
	marker := filepath.Join(l.DocumentsDir, "keep.pdf")
	require.NoError(t, os.WriteFile(marker, []byte("x"), 0o644))

	created, err := l.Ensure()
	require.NoError(t, err)
	assert.Equal(t, []string{l.OutputDir}, created)

	_, err = os.Stat(marker)
	assert.NoError(t, err, "existing directory contents must survive")
}

func TestEnsure_FileInTheWay(t *testing.T) {
	l := testLayout(t)
	require.NoError(t, os.WriteFile(l.DocumentsDir, []byte("not a dir"), 0o644))

	_, err := l.Ensure()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestFromConfig(t *testing.T) {
	l := FromConfig(types.WorkspaceConfig{})
	assert.Equal(t, Layout{DocumentsDir: "documents", OutputDir: "output"}, l)

	l = FromConfig(types.WorkspaceConfig{DocumentsDir: "in", OutputDir: "out"})
	assert.Equal(t, Layout{DocumentsDir: "in", OutputDir: "out"}, l)
}

func TestPaths(t *testing.T) {
	l := Layout{DocumentsDir: "documents", OutputDir: "output"}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"default document", l.DocumentPath(""), filepath.Join("documents", "form-dv-test-2.pdf")},
		{"bare name", l.DocumentPath("sample.pdf"), filepath.Join("documents", "sample.pdf")},
		{"relative path kept", l.DocumentPath(filepath.Join("elsewhere", "a.pdf")), filepath.Join("elsewhere", "a.pdf")},
		{"absolute path kept", l.DocumentPath("/tmp/a.pdf"), "/tmp/a.pdf"},
		{"default output", l.OutputPath(""), filepath.Join("output", "parsed_output.json")},
		{"named output", l.OutputPath("x.json"), filepath.Join("output", "x.json")},
		{"metadata sidecar", MetadataPath(filepath.Join("output", "parsed_output.json")), filepath.Join("output", "parsed_output.meta.yaml")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
