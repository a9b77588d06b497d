package wrapper

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// Load reads and parses one minimal-style file found under namespace.
func Load(path string, namespace []string) (*SourceUnit, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Cause: err}
	}
	return Parse(path, src, namespace)
}

// Parse builds a SourceUnit from source text. Unmarked types are skipped.
func Parse(path string, src []byte, namespace []string) (*SourceUnit, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, src, parser.ParseComments)
	if err != nil {
		return nil, &SourceError{Path: path, Cause: err}
	}
	unit := &SourceUnit{
		Path:      path,
		Package:   f.Name.Name,
		Namespace: namespace,
	}
	enums := make(map[string]*EnumType)
	for _, decl := range f.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)
			doc := typeSpec.Doc
			if doc == nil && len(genDecl.Specs) == 1 {
				doc = genDecl.Doc
			}
			kind, scope, found := findMarker(doc)
			if !found {
				continue
			}
			d, err := loadDecl(path, typeSpec, kind, scope)
			if err != nil {
				return nil, err
			}
			if e, ok := d.(*EnumType); ok {
				enums[e.Name] = e
			}
			unit.Decls = append(unit.Decls, d)
		}
	}
	collectVariants(f, enums)
	return unit, nil
}

func loadDecl(path string, spec *ast.TypeSpec, marker string, scope []string) (TypeDeclaration, error) {
	name := spec.Name.Name
	switch marker {
	case MessageMarker:
		st, ok := spec.Type.(*ast.StructType)
		if !ok {
			return nil, &SourceError{Path: path, Message: fmt.Sprintf("message %s is not a struct", name)}
		}
		fields, err := loadFields(path, name, st)
		if err != nil {
			return nil, err
		}
		return &StructType{Name: name, Scope: scope, Fields: fields}, nil
	default:
		if _, ok := spec.Type.(*ast.Ident); !ok {
			return nil, &SourceError{Path: path, Message: fmt.Sprintf("enum %s is not a named integer type", name)}
		}
		return &EnumType{Name: name, Scope: scope}, nil
	}
}

func loadFields(path, typeName string, st *ast.StructType) ([]FieldDecl, error) {
	fields := make([]FieldDecl, 0, len(st.Fields.List))
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			return nil, &SourceError{Path: path, Message: fmt.Sprintf("message %s has an embedded field", typeName)}
		}
		tag, err := fieldTag(field)
		if err != nil {
			return nil, &SourceError{Path: path, Message: fmt.Sprintf("message %s", typeName), Cause: err}
		}
		for _, ident := range field.Names {
			fields = append(fields, FieldDecl{
				Name:     ident.Name,
				Display:  DisplayName(ident.Name),
				Type:     field.Type,
				TypeText: types.ExprString(field.Type),
				Tag:      tag,
			})
		}
	}
	return fields, nil
}

func fieldTag(field *ast.Field) (string, error) {
	if field.Tag == nil {
		return "", nil
	}
	raw, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return "", fmt.Errorf("bad struct tag %s: %w", field.Tag.Value, err)
	}
	return reflect.StructTag(raw).Get(TagKey), nil
}

// findMarker looks for a marker directive and its optional scope=A.B argument.
func findMarker(doc *ast.CommentGroup) (string, []string, bool) {
	if doc == nil {
		return "", nil, false
	}
	for _, c := range doc.List {
		for _, marker := range []string{MessageMarker, EnumMarker} {
			rest, ok := strings.CutPrefix(c.Text, marker)
			if !ok || (rest != "" && rest[0] != ' ' && rest[0] != '\t') {
				continue
			}
			var scope []string
			for _, arg := range strings.Fields(rest) {
				if v, ok := strings.CutPrefix(arg, "scope="); ok {
					scope = SplitNamespace(v)
				}
			}
			return marker, scope, true
		}
	}
	return "", nil, false
}

// collectVariants appends every constant typed as a marked enum, in source
// order. Untyped continuation specs inherit the type of the previous spec.
func collectVariants(f *ast.File, enums map[string]*EnumType) {
	if len(enums) == 0 {
		return
	}
	for _, decl := range f.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.CONST {
			continue
		}
		var current string
		for _, spec := range genDecl.Specs {
			vs := spec.(*ast.ValueSpec)
			switch {
			case vs.Type != nil:
				current = ""
				if ident, ok := vs.Type.(*ast.Ident); ok {
					current = ident.Name
				}
			case len(vs.Values) > 0:
				current = ""
			}
			e, ok := enums[current]
			if !ok {
				continue
			}
			for _, n := range vs.Names {
				if n.Name != "_" {
					e.Variants = append(e.Variants, n.Name)
				}
			}
		}
	}
}
