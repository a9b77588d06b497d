package gogen

import (
	"bytes"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/jptrs93/protocompat/internal/generate"
	"github.com/jptrs93/protocompat/internal/ir"
)

const (
	protowirePath  = "google.golang.org/protobuf/encoding/protowire"
	protowireuPath = "github.com/jptrs93/protocompat/protowireu"
)

// reservedFieldNames are the methods declared on messages by this generator and
// by the legacy adapter. Fields with these names get a trailing underscore.
var reservedFieldNames = map[string]bool{
	"Encode":          true,
	"Reset":           true,
	"String":          true,
	"ProtoMessage":    true,
	"Size":            true,
	"Marshal":         true,
	"MarshalTo":       true,
	"Unmarshal":       true,
	"DefaultInstance": true,
}

type Generator struct{}

func (g Generator) Name() string {
	return "go"
}

// Generate renders one minimal-style Go file per proto package.
func (g Generator) Generate(files []ir.File, options generate.Options) ([]generate.OutputFile, error) {
	index := indexTypes(files)
	var outputs []generate.OutputFile
	for _, file := range mergePackages(files) {
		goOut := options.GoOut
		if goOut == "" {
			goOut = file.GoOut
		}
		if goOut == "" {
			continue
		}
		pkg := options.GoPackage
		if pkg == "" {
			pkg = file.GoPackage
		}
		if pkg == "" {
			return nil, fmt.Errorf("go package name is required for %s (set --go_pkg or option go_package)", file.Path)
		}
		f, err := buildGoFile(file, index, pkg)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := f.Render(&buf); err != nil {
			return nil, fmt.Errorf("render %s: %w", file.Path, err)
		}
		outputs = append(outputs, generate.OutputFile{
			Path:      filepath.Join(goOut, fileName(file)),
			Content:   buf.Bytes(),
			Namespace: file.Package,
			GoPackage: pkg,
		})
	}
	return outputs, nil
}

// mergePackages folds files sharing a proto package into one, keeping the
// order in which packages first appear.
func mergePackages(files []ir.File) []ir.File {
	var out []ir.File
	pos := make(map[string]int)
	for _, file := range files {
		i, ok := pos[file.Package]
		if !ok || file.Package == "" {
			pos[file.Package] = len(out)
			out = append(out, file)
			continue
		}
		merged := &out[i]
		merged.Path += ", " + file.Path
		merged.Enums = append(merged.Enums, file.Enums...)
		merged.Messages = append(merged.Messages, file.Messages...)
		if merged.GoOut == "" {
			merged.GoOut = file.GoOut
		}
	}
	return out
}

func fileName(file ir.File) string {
	if ns := file.Namespace(); len(ns) > 0 {
		return ns[len(ns)-1] + ".go"
	}
	base := path.Base(filepath.ToSlash(file.Path))
	return strings.TrimSuffix(base, path.Ext(base)) + ".go"
}

// typeRef locates a message or enum by its flattened Go name and the path of
// exported segments it was flattened from.
type typeRef struct {
	Name    string
	Path    []string
	Package string
}

func indexTypes(files []ir.File) map[string]typeRef {
	index := make(map[string]typeRef)
	for _, file := range files {
		for _, msg := range file.Messages {
			index[msg.FullName] = newTypeRef(file.Package, msg.Name, msg.Scope, msg.FullName)
		}
		for _, enum := range file.Enums {
			index[enum.FullName] = newTypeRef(file.Package, enum.Name, enum.Scope, enum.FullName)
		}
	}
	return index
}

func newTypeRef(pkg, name string, scope []string, fullName string) typeRef {
	full := ir.SplitFullName(fullName)
	p := append(append([]string(nil), scope...), ir.TypeName(full[len(full)-1]))
	return typeRef{Name: name, Path: p, Package: pkg}
}

func lookup(index map[string]typeRef, fullName, pkg string) (typeRef, error) {
	ref, ok := index[fullName]
	if !ok {
		return typeRef{}, fmt.Errorf("unknown type: %s", fullName)
	}
	if ref.Package != pkg {
		return typeRef{}, fmt.Errorf("cross-package reference to %s is not supported", fullName)
	}
	return ref, nil
}

// relativeRef writes target relative to scope: one "super" per scope segment
// to climb, then the remaining path.
func relativeRef(scope []string, target typeRef) string {
	common := 0
	for common < len(scope) && common < len(target.Path)-1 && scope[common] == target.Path[common] {
		common++
	}
	parts := make([]string, 0, len(scope)-common+len(target.Path)-common)
	for range len(scope) - common {
		parts = append(parts, "super")
	}
	parts = append(parts, target.Path[common:]...)
	return strings.Join(parts, ".")
}

func markerComment(marker string, scope []string) string {
	if len(scope) == 0 {
		return "//cleanproto:" + marker
	}
	return "//cleanproto:" + marker + " scope=" + strings.Join(scope, ".")
}

func buildGoFile(file ir.File, index map[string]typeRef, pkg string) (*jen.File, error) {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by protocompat. DO NOT EDIT.")
	f.HeaderComment("source: " + file.Path)
	f.ImportName(protowirePath, "protowire")
	f.ImportName(protowireuPath, "protowireu")

	for _, enum := range file.Enums {
		buildGoEnum(f, enum)
	}
	for _, msg := range file.Messages {
		fields, err := buildGoFields(msg, index, file.Package)
		if err != nil {
			return nil, err
		}
		buildGoMessage(f, msg, fields)
	}
	return f, nil
}

func buildGoEnum(f *jen.File, enum ir.Enum) {
	f.Line()
	f.Comment(markerComment("enum", enum.Scope))
	f.Type().Id(enum.Name).Int32()
	f.Line()

	defs := make([]jen.Code, 0, len(enum.Values))
	var cases []jen.Code
	seen := make(map[int32]bool)
	for _, v := range enum.Values {
		defs = append(defs, jen.Id(v.Name).Id(enum.Name).Op("=").Lit(int(v.Number)))
		if !seen[v.Number] {
			seen[v.Number] = true
			cases = append(cases, jen.Id(v.Name))
		}
	}
	f.Const().Defs(defs...)
	f.Line()
	f.Func().Id(enum.Name+"FromInt32").Params(jen.Id("v").Int32()).Params(jen.Id(enum.Name), jen.Bool()).Block(
		jen.Switch(jen.Id(enum.Name).Call(jen.Id("v"))).Block(
			jen.Case(cases...).Block(jen.Return(jen.Id(enum.Name).Call(jen.Id("v")), jen.True())),
		),
		jen.Return(jen.Lit(0), jen.False()),
	)
}

// goField is one struct field with everything needed to declare, encode and
// decode it.
type goField struct {
	Name   string
	Type   jen.Code
	Tag    string
	Encode jen.Code
	Decode jen.Code
}

func buildGoFields(msg ir.Message, index map[string]typeRef, pkg string) ([]goField, error) {
	fields := make([]goField, 0, len(msg.Fields))
	for _, field := range msg.Fields {
		name := field.GoName
		if reservedFieldNames[name] {
			name += "_"
		}
		gf, err := buildGoField(msg, field, name, index, pkg)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", msg.FullName, field.Name, err)
		}
		fields = append(fields, gf)
	}
	return fields, nil
}

func buildGoField(msg ir.Message, field ir.Field, name string, index map[string]typeRef, pkg string) (goField, error) {
	num := jen.Lit(field.Number)
	tag := []string{fmt.Sprint(field.Number)}
	target := jen.Id("m").Dot(name)
	gf := goField{Name: name}

	switch {
	case field.IsMap:
		keyType, err := goScalarType(field.MapKeyKind)
		if err != nil {
			return goField{}, err
		}
		keyCodec, err := codecFor(field.MapKeyKind)
		if err != nil {
			return goField{}, err
		}
		var valueType, valueCodec jen.Code
		switch field.MapValueKind {
		case ir.KindMessage:
			ref, err := lookup(index, field.MapValueMessage, pkg)
			if err != nil {
				return goField{}, err
			}
			valueType = jen.Op("*").Id(ref.Name)
			valueCodec = jen.Qual(protowireuPath, "MessageCodec").Call(jen.Id("Decode" + ref.Name))
		default:
			t, err := goScalarType(field.MapValueKind)
			if err != nil {
				return goField{}, err
			}
			c, err := codecFor(field.MapValueKind)
			if err != nil {
				return goField{}, err
			}
			valueType, valueCodec = t, c
		}
		gf.Type = jen.Map(keyType).Add(valueType)
		tag = append(tag, "map")
		gf.Encode = jen.Qual(protowireuPath, "AppendMap").Call(jen.Id("b"), num, keyCodec, valueCodec, target)
		gf.Decode = jen.Qual(protowireuPath, "ConsumeMapEntry").Call(jen.Id("b"), jen.Id("typ"), keyCodec, valueCodec, jen.Op("&").Add(target))

	case field.Kind == ir.KindMessage:
		ref, err := lookup(index, field.MessageFullName, pkg)
		if err != nil {
			return goField{}, err
		}
		rel := "ref=" + relativeRef(msg.Scope, ref)
		decode := jen.Id("Decode" + ref.Name)
		if field.IsRepeated {
			gf.Type = jen.Index().Op("*").Id(ref.Name)
			tag = append(tag, "repeated", "message", rel)
			gf.Encode = jen.Qual(protowireuPath, "AppendRepeatedMessage").Call(jen.Id("b"), num, target)
			gf.Decode = jen.Qual(protowireuPath, "ConsumeRepeatedMessage").Call(jen.Id("b"), jen.Id("typ"), decode, jen.Op("&").Add(target))
		} else {
			gf.Type = jen.Op("*").Id(ref.Name)
			tag = append(tag, "message", rel)
			gf.Encode = jen.Qual(protowireuPath, "AppendMessage").Call(jen.Id("b"), num, target)
			gf.Decode = jen.Qual(protowireuPath, "ConsumeMessage").Call(jen.Id("b"), jen.Id("typ"), decode, jen.Op("&").Add(target))
		}

	default:
		base, err := goScalarType(field.Kind)
		if err != nil {
			return goField{}, err
		}
		codec, err := codecFor(field.Kind)
		if err != nil {
			return goField{}, err
		}
		token := field.Kind.String()
		if field.Kind == ir.KindEnum {
			ref, err := lookup(index, field.EnumFullName, pkg)
			if err != nil {
				return goField{}, err
			}
			token = "enumeration=" + ref.Name
		}
		switch {
		case field.IsRepeated:
			gf.Type = jen.Index().Add(base)
			tag = append(tag, "repeated", token)
			gf.Encode = jen.Qual(protowireuPath, "AppendRepeated").Call(jen.Id("b"), num, codec, target)
			gf.Decode = jen.Qual(protowireuPath, "ConsumeRepeated").Call(jen.Id("b"), jen.Id("typ"), codec, jen.Op("&").Add(target))
		case field.IsOptional:
			gf.Type = jen.Op("*").Add(base)
			tag = append(tag, "optional", token)
			gf.Encode = jen.Qual(protowireuPath, "AppendOptional").Call(jen.Id("b"), num, codec, target)
			gf.Decode = jen.Qual(protowireuPath, "ConsumeOptional").Call(jen.Id("b"), jen.Id("typ"), codec, jen.Op("&").Add(target))
		default:
			gf.Type = base
			tag = append(tag, token)
			gf.Encode = jen.Qual(protowireuPath, "AppendField").Call(jen.Id("b"), num, codec, target)
			gf.Decode = jen.Qual(protowireuPath, "ConsumeField").Call(jen.Id("b"), jen.Id("typ"), codec, jen.Op("&").Add(target))
		}
	}
	gf.Tag = strings.Join(tag, ",")
	return gf, nil
}

func buildGoMessage(f *jen.File, msg ir.Message, fields []goField) {
	structFields := make([]jen.Code, 0, len(fields))
	encode := []jen.Code{
		jen.If(jen.Id("m").Op("==").Nil()).Block(jen.Return(jen.Nil())),
		jen.Var().Id("b").Index().Byte(),
	}
	cases := make([]jen.Code, 0, len(fields)+1)
	for i, field := range fields {
		structFields = append(structFields, jen.Id(field.Name).Add(field.Type).Tag(map[string]string{"cleanproto": field.Tag}))
		encode = append(encode, jen.Id("b").Op("=").Add(field.Encode))
		cases = append(cases, jen.Case(jen.Lit(msg.Fields[i].Number)).Block(
			jen.List(jen.Id("n"), jen.Err()).Op("=").Add(field.Decode),
		))
	}
	encode = append(encode, jen.Return(jen.Id("b")))
	cases = append(cases, jen.Default().Block(
		jen.List(jen.Id("n"), jen.Err()).Op("=").Qual(protowireuPath, "SkipField").Call(jen.Id("b"), jen.Id("num"), jen.Id("typ")),
	))

	f.Line()
	f.Comment(markerComment("message", msg.Scope))
	f.Type().Id(msg.Name).Struct(structFields...)
	f.Line()
	f.Func().Params(jen.Id("m").Op("*").Id(msg.Name)).Id("Encode").Params().Index().Byte().Block(encode...)
	f.Line()
	f.Func().Id("Decode"+msg.Name).Params(jen.Id("b").Index().Byte()).Params(jen.Op("*").Id(msg.Name), jen.Error()).Block(
		jen.Id("m").Op(":=").Op("&").Id(msg.Name).Values(),
		jen.For(jen.Len(jen.Id("b")).Op(">").Lit(0)).Block(
			jen.List(jen.Id("num"), jen.Id("typ"), jen.Id("n")).Op(":=").Qual(protowirePath, "ConsumeTag").Call(jen.Id("b")),
			jen.If(jen.Id("n").Op("<").Lit(0)).Block(
				jen.Return(jen.Nil(), jen.Qual(protowirePath, "ParseError").Call(jen.Id("n"))),
			),
			jen.Id("b").Op("=").Id("b").Index(jen.Id("n"), jen.Empty()),
			jen.Var().Err().Error(),
			jen.Switch(jen.Id("num")).Block(cases...),
			jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
			jen.Id("b").Op("=").Id("b").Index(jen.Id("n"), jen.Empty()),
		),
		jen.Return(jen.Id("m"), jen.Nil()),
	)
}

func goScalarType(kind ir.Kind) (jen.Code, error) {
	switch kind {
	case ir.KindBool:
		return jen.Bool(), nil
	case ir.KindInt32, ir.KindSint32, ir.KindSfixed32, ir.KindEnum:
		return jen.Int32(), nil
	case ir.KindInt64, ir.KindSint64, ir.KindSfixed64:
		return jen.Int64(), nil
	case ir.KindUint32, ir.KindFixed32:
		return jen.Uint32(), nil
	case ir.KindUint64, ir.KindFixed64:
		return jen.Uint64(), nil
	case ir.KindFloat:
		return jen.Float32(), nil
	case ir.KindDouble:
		return jen.Float64(), nil
	case ir.KindString:
		return jen.String(), nil
	case ir.KindBytes:
		return jen.Index().Byte(), nil
	default:
		return nil, fmt.Errorf("unsupported scalar kind: %v", kind)
	}
}

var codecNames = map[ir.Kind]string{
	ir.KindBool:     "Bool",
	ir.KindInt32:    "Int32",
	ir.KindInt64:    "Int64",
	ir.KindUint32:   "Uint32",
	ir.KindUint64:   "Uint64",
	ir.KindSint32:   "Sint32",
	ir.KindSint64:   "Sint64",
	ir.KindFixed32:  "Fixed32",
	ir.KindFixed64:  "Fixed64",
	ir.KindSfixed32: "Sfixed32",
	ir.KindSfixed64: "Sfixed64",
	ir.KindFloat:    "Float",
	ir.KindDouble:   "Double",
	ir.KindString:   "String",
	ir.KindBytes:    "Bytes",
	ir.KindEnum:     "Int32",
}

func codecFor(kind ir.Kind) (jen.Code, error) {
	name, ok := codecNames[kind]
	if !ok {
		return nil, fmt.Errorf("no codec for kind %v", kind)
	}
	return jen.Qual(protowireuPath, name), nil
}
