package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jptrs93/protocompat/internal/ir"

	"github.com/bufbuild/protocompile"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

type Parser struct {
	ImportPaths []string
}

func (p *Parser) compile(ctx context.Context, filePaths []string) ([]protoreflect.FileDescriptor, error) {
	resolver := &protocompile.SourceResolver{
		ImportPaths: p.ImportPaths,
		Accessor: func(path string) (io.ReadCloser, error) {
			if path == optionsProtoPath || strings.HasSuffix(path, string(os.PathSeparator)+optionsProtoPath) {
				return io.NopCloser(strings.NewReader(optionsProtoSource)), nil
			}
			return os.Open(path)
		},
	}
	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(resolver),
	}
	files, err := compiler.Compile(ctx, filePaths...)
	if err != nil {
		return nil, err
	}
	result := make([]protoreflect.FileDescriptor, 0, len(files))
	for _, file := range files {
		result = append(result, file)
	}
	return result, nil
}

func (p *Parser) Parse(ctx context.Context, filePaths []string) ([]ir.File, error) {
	files, err := p.compile(ctx, filePaths)
	if err != nil {
		return nil, err
	}

	var result []ir.File
	for _, file := range files {
		irFile, err := fileToIR(file)
		if err != nil {
			return nil, err
		}
		result = append(result, irFile)
	}
	return result, nil
}

// DescriptorSet compiles filePaths and returns them with all their imports as
// a self-contained set. Every file follows its dependencies.
func (p *Parser) DescriptorSet(ctx context.Context, filePaths []string) (*descriptorpb.FileDescriptorSet, error) {
	files, err := p.compile(ctx, filePaths)
	if err != nil {
		return nil, err
	}
	set := &descriptorpb.FileDescriptorSet{}
	seen := make(map[string]bool)
	var add func(fd protoreflect.FileDescriptor)
	add = func(fd protoreflect.FileDescriptor) {
		if seen[fd.Path()] {
			return
		}
		seen[fd.Path()] = true
		imports := fd.Imports()
		for i := 0; i < imports.Len(); i++ {
			add(imports.Get(i).FileDescriptor)
		}
		set.File = append(set.File, protodesc.ToFileDescriptorProto(fd))
	}
	for _, fd := range files {
		add(fd)
	}
	return set, nil
}

func fileToIR(file protoreflect.FileDescriptor) (ir.File, error) {
	if file.Syntax() != protoreflect.Proto3 {
		return ir.File{}, fmt.Errorf("only proto3 is supported: %s", file.Path())
	}
	goPkg := goPackageFromOptions(file)
	if ns := ir.SplitFullName(string(file.Package())); goPkg == "" && len(ns) > 0 {
		goPkg = ns[len(ns)-1]
	}
	out := ir.File{
		Path:      file.Path(),
		Package:   string(file.Package()),
		GoPackage: goPkg,
		GoOut:     goOutFromOptions(file),
		Enums:     collectEnums(file.Enums(), nil),
	}
	msgs, enums, err := collectMessages(file.Messages(), nil)
	if err != nil {
		return ir.File{}, err
	}
	out.Messages = msgs
	out.Enums = append(out.Enums, enums...)
	return out, nil
}

func collectEnums(enums protoreflect.EnumDescriptors, scope []string) []ir.Enum {
	var result []ir.Enum
	for i := 0; i < enums.Len(); i++ {
		enum := enums.Get(i)
		name := ir.TypeName(append(scope, string(enum.Name()))...)
		irEnum := ir.Enum{
			Name:     name,
			FullName: string(enum.FullName()),
			Scope:    scope,
		}
		values := enum.Values()
		for j := 0; j < values.Len(); j++ {
			v := values.Get(j)
			irEnum.Values = append(irEnum.Values, ir.EnumValue{
				Name:   name + "_" + string(v.Name()),
				Number: int32(v.Number()),
			})
		}
		result = append(result, irEnum)
	}
	return result
}

func collectMessages(messages protoreflect.MessageDescriptors, scope []string) ([]ir.Message, []ir.Enum, error) {
	var result []ir.Message
	var enums []ir.Enum
	for i := 0; i < messages.Len(); i++ {
		msg := messages.Get(i)
		if msg.IsMapEntry() {
			continue
		}
		irMsg := ir.Message{
			Name:     ir.TypeName(append(scope, string(msg.Name()))...),
			FullName: string(msg.FullName()),
			Scope:    scope,
		}
		fields, err := collectFields(msg.Fields())
		if err != nil {
			return nil, nil, err
		}
		irMsg.Fields = fields
		result = append(result, irMsg)

		inner := append(append([]string(nil), scope...), ir.TypeName(string(msg.Name())))
		enums = append(enums, collectEnums(msg.Enums(), inner)...)
		nested, nestedEnums, err := collectMessages(msg.Messages(), inner)
		if err != nil {
			return nil, nil, err
		}
		result = append(result, nested...)
		enums = append(enums, nestedEnums...)
	}
	return result, enums, nil
}

func collectFields(fields protoreflect.FieldDescriptors) ([]ir.Field, error) {
	var result []ir.Field
	for i := 0; i < fields.Len(); i++ {
		field := fields.Get(i)
		if oneof := field.ContainingOneof(); oneof != nil && !oneof.IsSynthetic() {
			return nil, fmt.Errorf("oneof is not supported: %s", field.FullName())
		}
		kind, err := kindFromField(field)
		if err != nil {
			return nil, err
		}
		f := ir.Field{
			Name:       string(field.Name()),
			GoName:     ir.GoName(string(field.Name())),
			Number:     int(field.Number()),
			Kind:       kind,
			IsRepeated: field.IsList(),
			IsOptional: field.HasPresence() && !field.IsList() && !field.IsMap() && field.Kind() != protoreflect.MessageKind,
			IsPacked:   field.IsPacked(),
		}
		switch {
		case field.IsMap():
			f.IsMap = true
			if f.MapKeyKind, err = kindFromField(field.MapKey()); err != nil {
				return nil, err
			}
			if f.MapValueKind, err = kindFromField(field.MapValue()); err != nil {
				return nil, err
			}
			switch f.MapValueKind {
			case ir.KindMessage:
				f.MapValueMessage = string(field.MapValue().Message().FullName())
			case ir.KindEnum:
				f.MapValueEnum = string(field.MapValue().Enum().FullName())
			}
		case kind == ir.KindMessage:
			f.MessageFullName = string(field.Message().FullName())
		case kind == ir.KindEnum:
			f.EnumFullName = string(field.Enum().FullName())
		}
		result = append(result, f)
	}
	return result, nil
}

func kindFromField(field protoreflect.FieldDescriptor) (ir.Kind, error) {
	switch field.Kind() {
	case protoreflect.BoolKind:
		return ir.KindBool, nil
	case protoreflect.Int32Kind:
		return ir.KindInt32, nil
	case protoreflect.Int64Kind:
		return ir.KindInt64, nil
	case protoreflect.Uint32Kind:
		return ir.KindUint32, nil
	case protoreflect.Uint64Kind:
		return ir.KindUint64, nil
	case protoreflect.Sint32Kind:
		return ir.KindSint32, nil
	case protoreflect.Sint64Kind:
		return ir.KindSint64, nil
	case protoreflect.Fixed32Kind:
		return ir.KindFixed32, nil
	case protoreflect.Fixed64Kind:
		return ir.KindFixed64, nil
	case protoreflect.Sfixed32Kind:
		return ir.KindSfixed32, nil
	case protoreflect.Sfixed64Kind:
		return ir.KindSfixed64, nil
	case protoreflect.FloatKind:
		return ir.KindFloat, nil
	case protoreflect.DoubleKind:
		return ir.KindDouble, nil
	case protoreflect.StringKind:
		return ir.KindString, nil
	case protoreflect.BytesKind:
		return ir.KindBytes, nil
	case protoreflect.MessageKind:
		return ir.KindMessage, nil
	case protoreflect.EnumKind:
		return ir.KindEnum, nil
	default:
		return 0, fmt.Errorf("unsupported field kind: %s", field.Kind())
	}
}
