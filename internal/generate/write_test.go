package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFilesCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	outputs := []OutputFile{
		{Path: filepath.Join(dir, "a", "b", "x.go"), Content: []byte("package b\n")},
		{Path: filepath.Join(dir, "y.go"), Content: []byte("package y\n")},
	}
	require.NoError(t, WriteFiles(nil, outputs))
	for _, out := range outputs {
		got, err := os.ReadFile(out.Path)
		require.NoError(t, err)
		assert.Equal(t, out.Content, got)
	}
}

func TestWriteFilesReportsPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := WriteFiles(nil, []OutputFile{{Path: filepath.Join(blocker, "x.go")}})
	assert.ErrorContains(t, err, blocker)
}
