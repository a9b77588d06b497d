package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/jptrs93/protocompat/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetOut(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stderr.String(), err
}

func protoDir(t *testing.T) string {
	t.Helper()
	src, err := os.ReadFile(filepath.Join("..", "generate", "go", "testdata", "shop.proto"))
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shop.proto"), src, 0o644))
	return dir
}

func TestCompile(t *testing.T) {
	protos := protoDir(t)
	out := filepath.Join(t.TempDir(), "gen")
	desc := filepath.Join(t.TempDir(), "desc", "shop.binpb")

	logs, err := execute(t, "compile", "--log-level", "info",
		"--proto_path", protos, "--out", out, "--descriptor_set_out", desc, "shop.proto")
	require.NoError(t, err, logs)
	assert.Contains(t, logs, "generated package")

	pkg := filepath.Join(out, "shop")
	assert.FileExists(t, filepath.Join(pkg, "shop.go"))
	assert.FileExists(t, filepath.Join(pkg, "doc.go"))

	adapter, err := os.ReadFile(filepath.Join(pkg, "wrapper_shop.go"))
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join("..", "wrapper", "sample", "wrapper_shop.go"))
	require.NoError(t, err)
	assert.Equal(t, strings.Fields(string(want)), strings.Fields(string(adapter)))

	data, err := os.ReadFile(desc)
	require.NoError(t, err)
	var set descriptorpb.FileDescriptorSet
	require.NoError(t, proto.Unmarshal(data, &set))
	files := set.GetFile()
	require.NotEmpty(t, files)
	assert.Equal(t, "shop.proto", files[len(files)-1].GetName())
}

func TestCompileGenAndAdapterFlags(t *testing.T) {
	protos := protoDir(t)
	out := filepath.Join(t.TempDir(), "gen")

	_, err := execute(t, "compile", "-I", protos, "-o", out, "--gen", "no-message-no-new", "shop.proto")
	require.NoError(t, err)
	adapter, err := os.ReadFile(filepath.Join(out, "shop", "wrapper_shop.go"))
	require.NoError(t, err)
	assert.NotContains(t, string(adapter), "func NewOrder()")
	assert.NotContains(t, string(adapter), "ProtoMessage")

	_, err = execute(t, "compile", "-I", protos, "-o", out, "--adapter", "gogo", "shop.proto")
	require.NoError(t, err)
	adapter, err = os.ReadFile(filepath.Join(out, "shop", "wrapper_shop.go"))
	require.NoError(t, err)
	assert.Contains(t, string(adapter), "MarshalTo")
}

func TestCompileConfigFileAndOverrides(t *testing.T) {
	protos := protoDir(t)
	root := t.TempDir()
	cfg := config.Config{
		Version:    config.CurrentConfigVersion,
		ProtoPaths: []string{protos},
		Out:        filepath.Join(root, "from-config"),
		Gen:        "get",
		Exclude:    []string{"shop"},
	}
	cfgPath := filepath.Join(root, config.FileName)
	require.NoError(t, cfg.Save(cfgPath))

	_, err := execute(t, "compile", "--config", cfgPath, "shop.proto")
	require.NoError(t, err)
	assert.NoDirExists(t, filepath.Join(root, "from-config", "shop"))

	override := filepath.Join(root, "from-flag")
	_, err = execute(t, "compile", "--config", cfgPath, "--exclude", "google", "--out", override, "shop.proto")
	require.NoError(t, err)
	adapter, err := os.ReadFile(filepath.Join(override, "shop", "wrapper_shop.go"))
	require.NoError(t, err)
	assert.Contains(t, string(adapter), "func (m *Order) GetID() int32")
	assert.NotContains(t, string(adapter), "func (m *Order) SetID(")
}

func TestCompileClean(t *testing.T) {
	protos := protoDir(t)
	out := filepath.Join(t.TempDir(), "gen")
	stale := filepath.Join(out, "stale", "old.go")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("package stale\n"), 0o644))

	_, err := execute(t, "compile", "-I", protos, "-o", out, "--clean", "shop.proto")
	require.NoError(t, err)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(out, "shop", "shop.go"))
}

func TestCompileErrors(t *testing.T) {
	protos := protoDir(t)

	_, err := execute(t, "compile", "-I", protos, "shop.proto")
	assert.ErrorContains(t, err, "--out")

	_, err = execute(t, "compile", "-I", protos, "-o", t.TempDir(), "--gen", "get|fly", "shop.proto")
	assert.ErrorContains(t, err, `unknown gen option "fly"`)

	_, err = execute(t, "compile", "-I", protos, "-o", t.TempDir(), "--adapter", "prost", "shop.proto")
	assert.ErrorContains(t, err, `unknown adapter "prost"`)

	_, err = execute(t, "compile", "--log-level", "loud", "-I", protos, "-o", t.TempDir(), "shop.proto")
	assert.ErrorContains(t, err, "invalid --log-level")

	_, err = execute(t, "compile", "-o", t.TempDir())
	assert.Error(t, err)
}

func TestRemoveOutputRefusesWorkingDirectory(t *testing.T) {
	assert.ErrorContains(t, removeOutput("."), "refusing to clean")
	assert.ErrorContains(t, removeOutput(".."), "refusing to clean")
}

func copySample(t *testing.T) string {
	t.Helper()
	src, err := os.ReadFile(filepath.Join("..", "wrapper", "sample", "shop.go"))
	require.NoError(t, err)
	dir := t.TempDir()
	path := filepath.Join(dir, "shop.go")
	require.NoError(t, os.WriteFile(path, src, 0o644))
	return path
}

func TestWrap(t *testing.T) {
	path := copySample(t)

	_, err := execute(t, "wrap", path)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(filepath.Dir(path), "wrapper_shop.go"))
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join("..", "wrapper", "sample", "wrapper_shop.go"))
	require.NoError(t, err)
	assert.Equal(t, strings.Fields(string(want)), strings.Fields(string(got)))
}

func TestWrapErrors(t *testing.T) {
	path := copySample(t)

	_, err := execute(t, "wrap", "--gen", "sideways", path)
	assert.ErrorContains(t, err, "unknown gen option")

	adapter := filepath.Join(filepath.Dir(path), "wrapper_shop.go")
	_, err = execute(t, "wrap", adapter)
	assert.ErrorContains(t, err, "is an adapter file")

	_, err = execute(t, "wrap", filepath.Join(t.TempDir(), "missing.go"))
	assert.Error(t, err)
}
