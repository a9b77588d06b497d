package modtree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jptrs93/protocompat/internal/generate"
)

func TestDir(t *testing.T) {
	assert.Equal(t, filepath.Join("gen", "acme", "shop"), Dir("gen", "acme.shop"))
	assert.Equal(t, "gen", Dir("gen", ""))
}

func TestPlaceAndWriteDocs(t *testing.T) {
	root := t.TempDir()
	b := &Builder{Exclude: []string{"google.protobuf"}}

	path, ok, err := b.Place(generate.OutputFile{
		Path:      filepath.Join(root, "shop.go"),
		Content:   []byte("package shop\n"),
		Namespace: "acme.shop",
		GoPackage: "shop",
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "acme", "shop", "shop.go"), path)

	_, ok, err = b.Place(generate.OutputFile{
		Path:      filepath.Join(root, "protobuf.go"),
		Namespace: "google.protobuf",
		GoPackage: "protobuf",
	})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoFileExists(t, filepath.Join(root, "google", "protobuf", "protobuf.go"))

	require.NoError(t, os.WriteFile(filepath.Join(root, "acme", "shop", "wrapper_shop.go"), []byte("package shop\n"), 0o644))
	require.NoError(t, b.WriteDocs())

	doc, err := os.ReadFile(filepath.Join(root, "acme", "shop", "doc.go"))
	require.NoError(t, err)
	src := string(doc)
	assert.Contains(t, src, "// Code generated by protocompat. DO NOT EDIT.")
	assert.Contains(t, src, "Package shop holds the generated code of the acme.shop namespace.")
	assert.Contains(t, src, "shop.go: messages and their wire encoding")
	assert.Contains(t, src, "wrapper_shop.go: legacy accessors for shop.go")
	assert.Contains(t, src, "package shop")

	pkgs := b.Packages()
	require.Len(t, pkgs, 1)
	assert.Equal(t, []string{"shop.go"}, pkgs[0].Files)
}

func TestPlaceRejectsAdapterFiles(t *testing.T) {
	b := &Builder{}
	_, _, err := b.Place(generate.OutputFile{Path: filepath.Join(t.TempDir(), "wrapper_shop.go"), Namespace: "shop"})
	assert.Error(t, err)
}

func TestDocOmitsMissingAdapter(t *testing.T) {
	root := t.TempDir()
	b := &Builder{}
	_, _, err := b.Place(generate.OutputFile{Path: filepath.Join(root, "a.go"), Content: []byte("package a\n"), Namespace: "a", GoPackage: "a"})
	require.NoError(t, err)
	require.NoError(t, b.WriteDocs())

	doc, err := os.ReadFile(filepath.Join(root, "a", "doc.go"))
	require.NoError(t, err)
	assert.NotContains(t, string(doc), "wrapper_a.go")
}
