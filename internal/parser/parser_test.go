package parser

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jptrs93/protocompat/internal/ir"
)

const shopProto = `syntax = "proto3";

package acme.shop;

import "cleanproto/options.proto";

option (cleanproto.go_out) = "gen/shop";

enum Status {
  STATUS_UNKNOWN = 0;
  STATUS_OPEN = 1;
}

message Order {
  message Item {
    enum Size {
      SIZE_UNKNOWN = 0;
      SIZE_LARGE = 2;
    }
    string sku = 1;
    Size size = 2;
  }
  int32 id = 1;
  optional string name = 2;
  repeated Item items = 3;
  map<string, Item> by_sku = 4;
  Status status = 5;
}
`

func writeProto(t *testing.T, name, src string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	return dir
}

func TestParse(t *testing.T) {
	dir := writeProto(t, "shop.proto", shopProto)
	p := Parser{ImportPaths: []string{dir}}
	files, err := p.Parse(context.Background(), []string{"shop.proto"})
	require.NoError(t, err)
	require.Len(t, files, 1)

	f := files[0]
	assert.Equal(t, "acme.shop", f.Package)
	assert.Equal(t, "shop", f.GoPackage)

	require.Len(t, f.Messages, 2)
	assert.Equal(t, "Order", f.Messages[0].Name)
	assert.Empty(t, f.Messages[0].Scope)
	assert.Equal(t, "Order_Item", f.Messages[1].Name)
	assert.Equal(t, []string{"Order"}, f.Messages[1].Scope)

	require.Len(t, f.Enums, 2)
	assert.Equal(t, "Status", f.Enums[0].Name)
	assert.Equal(t, []ir.EnumValue{{Name: "Status_STATUS_UNKNOWN", Number: 0}, {Name: "Status_STATUS_OPEN", Number: 1}}, f.Enums[0].Values)
	assert.Equal(t, "Order_Item_Size", f.Enums[1].Name)
	assert.Equal(t, []string{"Order", "Item"}, f.Enums[1].Scope)

	fields := f.Messages[0].Fields
	require.Len(t, fields, 5)
	assert.Equal(t, "ID", fields[0].GoName)
	assert.True(t, fields[1].IsOptional)
	assert.True(t, fields[2].IsRepeated)
	assert.Equal(t, "acme.shop.Order.Item", fields[2].MessageFullName)
	assert.True(t, fields[3].IsMap)
	assert.Equal(t, ir.KindString, fields[3].MapKeyKind)
	assert.Equal(t, "acme.shop.Order.Item", fields[3].MapValueMessage)
	assert.Equal(t, "acme.shop.Status", fields[4].EnumFullName)
}

func TestParseRejectsOneof(t *testing.T) {
	dir := writeProto(t, "o.proto", `syntax = "proto3";
package o;
message M {
  oneof kind {
    string a = 1;
    int32 b = 2;
  }
}
`)
	p := Parser{ImportPaths: []string{dir}}
	_, err := p.Parse(context.Background(), []string{"o.proto"})
	assert.ErrorContains(t, err, "oneof is not supported")
}

func TestParseRejectsProto2(t *testing.T) {
	dir := writeProto(t, "p2.proto", "syntax = \"proto2\";\npackage p;\nmessage M { optional int32 a = 1; }\n")
	p := Parser{ImportPaths: []string{dir}}
	_, err := p.Parse(context.Background(), []string{"p2.proto"})
	assert.ErrorContains(t, err, "only proto3")
}

func TestDescriptorSetIncludesImportsFirst(t *testing.T) {
	dir := writeProto(t, "shop.proto", shopProto)
	p := Parser{ImportPaths: []string{dir}}
	set, err := p.DescriptorSet(context.Background(), []string{"shop.proto"})
	require.NoError(t, err)

	var names []string
	for _, f := range set.GetFile() {
		names = append(names, f.GetName())
	}
	assert.Equal(t, []string{"google/protobuf/descriptor.proto", "cleanproto/options.proto", "shop.proto"}, names)

	shop := set.GetFile()[2]
	assert.Equal(t, "acme.shop", shop.GetPackage())
	require.Len(t, shop.GetMessageType(), 1)
	assert.Equal(t, "Order", shop.GetMessageType()[0].GetName())
	assert.Equal(t, "Item", shop.GetMessageType()[0].GetNestedType()[0].GetName())
}
