package gogen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jptrs93/protocompat/internal/generate"
	"github.com/jptrs93/protocompat/internal/ir"
	"github.com/jptrs93/protocompat/internal/parser"
	"github.com/jptrs93/protocompat/internal/wrapper"
)

func generateShop(t *testing.T, out string) generate.OutputFile {
	t.Helper()
	p := parser.Parser{ImportPaths: []string{"testdata"}}
	files, err := p.Parse(context.Background(), []string{"shop.proto"})
	require.NoError(t, err)

	outputs, err := Generator{}.Generate(files, generate.Options{GoOut: out})
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	return outputs[0]
}

func TestGenerateMinimalFile(t *testing.T) {
	out := generateShop(t, "gen")
	assert.Equal(t, filepath.Join("gen", "shop.go"), out.Path)
	assert.Equal(t, "shop", out.Namespace)
	assert.Equal(t, "sample", out.GoPackage)

	src := string(out.Content)
	assert.Contains(t, src, "// Code generated by protocompat. DO NOT EDIT.")
	assert.Contains(t, src, "//cleanproto:message scope=Order\ntype Order_Item struct")
	assert.Contains(t, src, "func DecodeOrder_Item(b []byte) (*Order_Item, error)")
	assert.Contains(t, src, "func StatusFromInt32(v int32) (Status, bool)")
	assert.Contains(t, src, "protowireu.AppendRepeatedMessage(b, 5, m.Items)")
	assert.Contains(t, src, `cleanproto:"10,string"`)
}

func TestGeneratedFileLoadsAsMinimalStyle(t *testing.T) {
	out := generateShop(t, "gen")
	unit, err := wrapper.Parse(out.Path, out.Content, wrapper.SplitNamespace(out.Namespace))
	require.NoError(t, err)
	require.Len(t, unit.Decls, 4)

	var names []string
	for _, d := range unit.Decls {
		names = append(names, d.DeclName())
	}
	assert.Equal(t, []string{"Status", "Order", "Order_Item", "Note"}, names)

	item := unit.Decls[2].(*wrapper.StructType)
	assert.Equal(t, []string{"Order"}, item.Scope)
	kind, err := wrapper.Classify(item.Name, item.Fields[2], item.Scope)
	require.NoError(t, err)
	assert.Equal(t, wrapper.RepeatedKind{Elem: "*Note", ElemMessage: true, Prefix: []string{}}, kind)

	order := unit.Decls[1].(*wrapper.StructType)
	assert.Equal(t, "Encode_", order.Fields[9].Name)
}

// The committed sample package was produced from testdata/shop.proto. Running
// both steps again must give the same adapter.
func TestProtoToAdapterMatchesSample(t *testing.T) {
	dir := t.TempDir()
	out := generateShop(t, dir)
	require.NoError(t, generate.WriteFiles(nil, []generate.OutputFile{out}))

	adapter, err := wrapper.Generator{Opt: wrapper.All}.GenerateFile(out.Path, nil)
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join("..", "..", "wrapper", "sample", "wrapper_shop.go"))
	require.NoError(t, err)
	assert.Equal(t, strings.Fields(string(want)), strings.Fields(string(adapter.Content)))
}

func TestRelativeRef(t *testing.T) {
	tests := []struct {
		scope []string
		path  []string
		want  string
	}{
		{path: []string{"Note"}, want: "Note"},
		{path: []string{"Order", "Item"}, want: "Order.Item"},
		{scope: []string{"Order"}, path: []string{"Note"}, want: "super.Note"},
		{scope: []string{"Order"}, path: []string{"Order", "Item"}, want: "Item"},
		{scope: []string{"A", "B"}, path: []string{"A", "C", "D"}, want: "super.C.D"},
		{scope: []string{"A"}, path: []string{"A"}, want: "super.A"},
	}
	for _, tc := range tests {
		ref := relativeRef(tc.scope, typeRef{Path: tc.path})
		assert.Equal(t, tc.want, ref)
		resolved := wrapper.Resolve(tc.scope, ref)
		assert.Equal(t, strings.Join(tc.path, "_"), resolved.Name)
		assert.Zero(t, resolved.Unresolved)
	}
}

func TestGenerateRejectsCrossPackageReference(t *testing.T) {
	files := []ir.File{
		{Path: "a.proto", Package: "a", GoPackage: "a", Messages: []ir.Message{{
			Name: "A", FullName: "a.A",
			Fields: []ir.Field{{Name: "b", GoName: "B", Number: 1, Kind: ir.KindMessage, MessageFullName: "b.B"}},
		}}},
		{Path: "b.proto", Package: "b", GoPackage: "b", Messages: []ir.Message{{Name: "B", FullName: "b.B"}}},
	}
	_, err := Generator{}.Generate(files, generate.Options{GoOut: "gen"})
	assert.ErrorContains(t, err, "cross-package reference to b.B")
}

func TestGenerateMergesFilesOfOnePackage(t *testing.T) {
	files := []ir.File{
		{Path: "a.proto", Package: "acme.shop", GoPackage: "shop", Messages: []ir.Message{{Name: "A", FullName: "acme.shop.A"}}},
		{Path: "b.proto", Package: "acme.shop", GoPackage: "shop", Messages: []ir.Message{{Name: "B", FullName: "acme.shop.B"}}},
	}
	outputs, err := Generator{}.Generate(files, generate.Options{GoOut: "gen"})
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, filepath.Join("gen", "shop.go"), outputs[0].Path)
	assert.Contains(t, string(outputs[0].Content), "// source: a.proto, b.proto")
	assert.Contains(t, string(outputs[0].Content), "type B struct")
}

func TestGenerateEscapesReservedFieldNames(t *testing.T) {
	files := []ir.File{{Path: "r.proto", Package: "r", GoPackage: "r", Messages: []ir.Message{{
		Name: "R", FullName: "r.R",
		Fields: []ir.Field{
			{Name: "size", GoName: "Size", Number: 1, Kind: ir.KindInt32},
			{Name: "string", GoName: "String", Number: 2, Kind: ir.KindString},
		},
	}}}}
	outputs, err := Generator{}.Generate(files, generate.Options{GoOut: "gen"})
	require.NoError(t, err)
	src := string(outputs[0].Content)
	assert.Contains(t, src, "Size_ ")
	assert.Contains(t, src, "String_ ")
}
