package generate

import "github.com/jptrs93/protocompat/internal/ir"

type OutputFile struct {
	Path    string
	Content []byte
	// Namespace is the dotted proto package the file was generated from.
	Namespace string
	GoPackage string
}

type Options struct {
	GoPackage string
	GoOut     string
}

type Generator interface {
	Name() string
	Generate(files []ir.File, options Options) ([]OutputFile, error)
}
