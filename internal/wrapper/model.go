// Package wrapper synthesizes legacy accessor code for minimal-style protobuf
// messages. It loads one generated file, classifies every field of every marked
// message, decides the accessor set per field and renders a sibling adapter file.
package wrapper

import (
	"go/ast"
	"strings"
)

// Marker directives placed on type declarations by the minimal generator.
const (
	MessageMarker = "//cleanproto:message"
	EnumMarker    = "//cleanproto:enum"
)

// TagKey is the struct tag key holding field annotations.
const TagKey = "cleanproto"

// SourceUnit is one parsed input file.
type SourceUnit struct {
	Path      string
	Package   string
	Namespace []string
	Decls     []TypeDeclaration
}

// TypeDeclaration is a *StructType or an *EnumType.
type TypeDeclaration interface {
	DeclName() string
	DeclScope() []string
}

// StructType is a marked message struct.
type StructType struct {
	Name   string
	Scope  []string
	Fields []FieldDecl
}

func (s *StructType) DeclName() string    { return s.Name }
func (s *StructType) DeclScope() []string { return s.Scope }

// EnumType is a marked enum with its variants in declaration order.
type EnumType struct {
	Name     string
	Scope    []string
	Variants []string
}

func (e *EnumType) DeclName() string    { return e.Name }
func (e *EnumType) DeclScope() []string { return e.Scope }

// FieldDecl is one named struct field.
type FieldDecl struct {
	// Name is the Go identifier of the field.
	Name string
	// Display is the de-escaped name used to build method names.
	Display string
	// Type is the declared type expression and TypeText its source form.
	Type     ast.Expr
	TypeText string
	// Tag is the raw value of the cleanproto struct tag.
	Tag string
}

// DisplayName de-escapes a field identifier. The minimal generator appends "_"
// to names that would collide with its own methods; those become Field<Name>.
func DisplayName(ident string) string {
	if trimmed, ok := strings.CutSuffix(ident, "_"); ok && trimmed != "" {
		return "Field" + trimmed
	}
	return ident
}

// SplitNamespace splits a dotted namespace into its segments.
func SplitNamespace(ns string) []string {
	if ns == "" {
		return nil
	}
	var out []string
	for _, seg := range strings.Split(ns, ".") {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}
