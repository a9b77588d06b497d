package wrapper

import (
	"fmt"
	"go/ast"
	"go/types"
	"strings"
)

// Classify derives the kind of field, declared in a message nested under scope.
// The highest-precedence kind token wins and optional wraps the result. A field
// whose annotations name no kind, or whose declared type cannot hold the named
// kind, yields a *FieldError.
func Classify(typeName string, field FieldDecl, scope []string) (FieldKind, error) {
	a := ParseAnnotations(field.Tag)
	fail := func(format string, args ...any) error {
		return &FieldError{Type: typeName, Field: field.Name, Tag: field.Tag, Message: fmt.Sprintf(format, args...)}
	}

	tok, ok := a.Primary()
	if !ok {
		if len(a.Unknown) > 0 {
			return nil, fail("no kind annotation among %s", strings.Join(a.Unknown, ","))
		}
		return nil, fail("no kind annotation")
	}

	expr := field.Type
	optional := a.Has(TokOptional)
	if optional && tok != TokOneOf {
		star, ok := expr.(*ast.StarExpr)
		if !ok {
			return nil, fail("optional field must be a pointer, got %s", field.TypeText)
		}
		expr = star.X
	}

	kind, err := kindOf(tok, a, expr, scope)
	if err != nil {
		return nil, fail("%v", err)
	}
	if optional {
		return OptionalKind{Inner: kind}, nil
	}
	return kind, nil
}

func kindOf(tok Token, a Annotations, expr ast.Expr, scope []string) (FieldKind, error) {
	text := types.ExprString(expr)
	switch tok {
	case TokRepeated:
		arr, ok := expr.(*ast.ArrayType)
		if !ok || arr.Len != nil {
			return nil, fmt.Errorf("repeated field must be a slice, got %s", text)
		}
		return repeatedOf(a, arr.Elt, scope), nil
	case TokMap:
		if _, ok := expr.(*ast.MapType); !ok {
			return nil, fmt.Errorf("map field must be a map, got %s", text)
		}
		return MapKind{GoType: text}, nil
	case TokMessage:
		star, boxed := expr.(*ast.StarExpr)
		target := expr
		if boxed {
			target = star.X
		}
		kind := MessageKind{Type: types.ExprString(target), Boxed: boxed}
		if a.Ref != "" {
			r := Resolve(scope, a.Ref)
			kind.Type, kind.Unresolved = r.Name, r.Unresolved
		}
		return kind, nil
	case TokInt:
		return ScalarKind{Class: ScalarInt, GoType: text}, identOnly(expr)
	case TokFloat:
		return ScalarKind{Class: ScalarFloat, GoType: text}, identOnly(expr)
	case TokBool:
		return ScalarKind{Class: ScalarBool, GoType: text}, identOnly(expr)
	case TokBytes:
		if text != "[]byte" {
			return nil, fmt.Errorf("bytes field must be []byte, got %s", text)
		}
		return BytesKind{}, nil
	case TokString:
		if text != "string" {
			return nil, fmt.Errorf("string field must be string, got %s", text)
		}
		return StringKind{}, nil
	case TokOneOf:
		return OneOfKind{Name: a.OneOf}, nil
	case TokEnumeration:
		if text != "int32" {
			return nil, fmt.Errorf("enumeration field must be int32, got %s", text)
		}
		if a.Enumeration == "" {
			return nil, fmt.Errorf("enumeration annotation names no type")
		}
		return EnumerationKind{Enum: a.Enumeration}, nil
	}
	return nil, fmt.Errorf("unsupported annotation")
}

func repeatedOf(a Annotations, elt ast.Expr, scope []string) RepeatedKind {
	if !a.Has(TokMessage) {
		return RepeatedKind{Elem: types.ExprString(elt), Prefix: scope}
	}
	star, boxed := elt.(*ast.StarExpr)
	target := elt
	if boxed {
		target = star.X
	}
	r := Resolved{Name: types.ExprString(target), Prefix: scope}
	if a.Ref != "" {
		r = Resolve(scope, a.Ref)
	}
	elem := r.Name
	if boxed {
		elem = "*" + elem
	}
	return RepeatedKind{Elem: elem, ElemMessage: true, Prefix: r.Prefix, Unresolved: r.Unresolved}
}

func identOnly(expr ast.Expr) error {
	if _, ok := expr.(*ast.Ident); !ok {
		return fmt.Errorf("scalar field must be a named type, got %s", types.ExprString(expr))
	}
	return nil
}
