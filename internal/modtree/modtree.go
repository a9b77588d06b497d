// Package modtree lays generated files out as one Go package directory per
// proto namespace and writes a doc.go for each package naming its files.
package modtree

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/jptrs93/protocompat/internal/generate"
	"github.com/jptrs93/protocompat/internal/wrapper"
)

// WrapperPrefix marks adapter files. They belong to the unit they wrap and are
// never placed as units of their own.
const WrapperPrefix = "wrapper_"

// Package is one namespace directory.
type Package struct {
	Dir       string
	Name      string
	Namespace string
	// Files holds the base names of the minimal-style files in placement order.
	Files []string
}

// Builder collects placed files per directory. The zero value is ready to use.
type Builder struct {
	// Exclude skips every namespace containing one of these substrings.
	Exclude []string
	Logger  *slog.Logger

	pkgs  map[string]*Package
	order []string
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return b.Logger
}

// Excluded reports whether namespace matches an exclusion substring.
func (b *Builder) Excluded(namespace string) bool {
	for _, ex := range b.Exclude {
		if ex != "" && strings.Contains(namespace, ex) {
			return true
		}
	}
	return false
}

// Dir returns the package directory of namespace below root: a.b maps to root/a/b.
func Dir(root, namespace string) string {
	return filepath.Join(append([]string{root}, wrapper.SplitNamespace(namespace)...)...)
}

// Place writes out into the directory of its namespace, below the directory
// out.Path names. It returns the written path, or false when the namespace is
// excluded.
func (b *Builder) Place(out generate.OutputFile) (string, bool, error) {
	if b.Excluded(out.Namespace) {
		b.logger().Info("skipping excluded namespace", "namespace", out.Namespace)
		return "", false, nil
	}
	base := filepath.Base(out.Path)
	if strings.HasPrefix(base, WrapperPrefix) {
		return "", false, fmt.Errorf("modtree: %s is an adapter file, not a unit", out.Path)
	}
	dir := Dir(filepath.Dir(out.Path), out.Namespace)
	placed := out
	placed.Path = filepath.Join(dir, base)
	if err := generate.WriteFiles(b.logger(), []generate.OutputFile{placed}); err != nil {
		return "", false, err
	}

	if b.pkgs == nil {
		b.pkgs = make(map[string]*Package)
	}
	pkg, ok := b.pkgs[dir]
	if !ok {
		pkg = &Package{Dir: dir, Name: out.GoPackage, Namespace: out.Namespace}
		b.pkgs[dir] = pkg
		b.order = append(b.order, dir)
	}
	pkg.Files = append(pkg.Files, base)
	return placed.Path, true, nil
}

// Packages returns the placed packages in the order they were first seen.
func (b *Builder) Packages() []Package {
	out := make([]Package, 0, len(b.order))
	for _, dir := range b.order {
		out = append(out, *b.pkgs[dir])
	}
	return out
}

// WriteDocs writes doc.go into every placed package. An adapter is listed next
// to the file it wraps when it exists on disk.
func (b *Builder) WriteDocs() error {
	var docs []generate.OutputFile
	for _, pkg := range b.Packages() {
		content, err := renderDoc(pkg)
		if err != nil {
			return err
		}
		docs = append(docs, generate.OutputFile{Path: filepath.Join(pkg.Dir, "doc.go"), Content: content})
	}
	return generate.WriteFiles(b.logger(), docs)
}

func renderDoc(pkg Package) ([]byte, error) {
	f := jen.NewFile(pkg.Name)
	f.HeaderComment("Code generated by protocompat. DO NOT EDIT.")
	if pkg.Namespace != "" {
		f.PackageComment(fmt.Sprintf("Package %s holds the generated code of the %s namespace.", pkg.Name, pkg.Namespace))
	} else {
		f.PackageComment(fmt.Sprintf("Package %s holds generated protobuf code.", pkg.Name))
	}
	f.PackageComment("")
	f.PackageComment("Files:")
	for _, name := range pkg.Files {
		f.PackageComment(fmt.Sprintf("  - %s: messages and their wire encoding", name))
		adapter := WrapperPrefix + name
		if _, err := os.Stat(filepath.Join(pkg.Dir, adapter)); err == nil {
			f.PackageComment(fmt.Sprintf("  - %s: legacy accessors for %s", adapter, name))
		}
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("modtree: render doc for %s: %w", pkg.Dir, err)
	}
	return buf.Bytes(), nil
}
