package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/proto"

	"github.com/jptrs93/protocompat/internal/config"
	"github.com/jptrs93/protocompat/internal/generate"
	gogen "github.com/jptrs93/protocompat/internal/generate/go"
	"github.com/jptrs93/protocompat/internal/modtree"
	"github.com/jptrs93/protocompat/internal/parser"
	"github.com/jptrs93/protocompat/internal/wrapper"
)

type compileOptions struct {
	root             *rootOptions
	configPath       string
	protoPaths       []string
	out              string
	goPkg            string
	gen              string
	adapter          string
	exclude          []string
	clean            bool
	descriptorSetOut string
}

func newCompileCmd(root *rootOptions) *cobra.Command {
	opts := &compileOptions{root: root}

	cmd := &cobra.Command{
		Use:   "compile [flags] <file.proto>...",
		Short: "Compile proto files into minimal Go packages with adapters",
		Long: `Compile proto3 files into one Go package per proto namespace. Every package
gets the minimal-style messages, a wrapper_ adapter file next to them and a
doc.go listing both. Flags override values from protocompat.yaml.`,
		Example: `  protocompat compile --proto_path proto --out gen shop.proto
  protocompat compile --gen "get|set|has" --adapter gogo --exclude google shop.proto
  protocompat compile --config build/protocompat.yaml --clean shop.proto`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runCompile(cmd.Context(), opts.root, cfg, args)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to protocompat.yaml (default ./protocompat.yaml when present)")
	cmd.Flags().StringArrayVarP(&opts.protoPaths, "proto_path", "I", nil, "Proto import path (repeatable)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output root directory")
	cmd.Flags().StringVar(&opts.goPkg, "go_pkg", "", "Go package name for every generated package")
	cmd.Flags().StringVar(&opts.gen, "gen", "all", "Generated categories: a preset or a | separated list")
	cmd.Flags().StringVar(&opts.adapter, "adapter", "legacy", "Message contract of the adapter (legacy or gogo)")
	cmd.Flags().StringArrayVar(&opts.exclude, "exclude", nil, "Skip namespaces containing this substring (repeatable)")
	cmd.Flags().BoolVar(&opts.clean, "clean", false, "Remove the output root before generating")
	cmd.Flags().StringVar(&opts.descriptorSetOut, "descriptor_set_out", "", "Also write a binary FileDescriptorSet to this path")

	return cmd
}

// loadConfig reads the config file and applies every flag set on the command
// line over it.
func loadConfig(cmd *cobra.Command, opts *compileOptions) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		if _, err := os.Stat(config.FileName); err == nil {
			path = config.FileName
		}
	}
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("proto_path") {
		cfg.ProtoPaths = opts.protoPaths
	}
	if flags.Changed("out") {
		cfg.Out = opts.out
	}
	if flags.Changed("go_pkg") {
		cfg.GoPackage = opts.goPkg
	}
	if flags.Changed("gen") {
		cfg.Gen = opts.gen
	}
	if flags.Changed("adapter") {
		cfg.Adapter = opts.adapter
	}
	if flags.Changed("exclude") {
		cfg.Exclude = opts.exclude
	}
	if flags.Changed("clean") {
		cfg.Clean = opts.clean
	}
	if flags.Changed("descriptor_set_out") {
		cfg.DescriptorSetOut = opts.descriptorSetOut
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runCompile(ctx context.Context, root *rootOptions, cfg *config.Config, protoFiles []string) error {
	log := root.logger
	opt, err := cfg.GenOpt()
	if err != nil {
		return err
	}
	adapter, err := cfg.AdapterMode()
	if err != nil {
		return err
	}

	importPaths := cfg.ProtoPaths
	if len(importPaths) == 0 {
		importPaths = []string{"."}
	}
	p := parser.Parser{ImportPaths: importPaths}
	files, err := p.Parse(ctx, protoFiles)
	if err != nil {
		return err
	}

	out := cleanPath(cfg.Out)
	if out == "" {
		hasOut := false
		for _, file := range files {
			if file.GoOut != "" {
				hasOut = true
				break
			}
		}
		if !hasOut {
			return errors.New("one of --out, out in protocompat.yaml or the cleanproto.go_out file option is required")
		}
	}
	if cfg.Clean && out != "" {
		if err := removeOutput(out); err != nil {
			return err
		}
		log.Info("removed output root", "dir", out)
	}

	outputs, err := gogen.Generator{}.Generate(files, generate.Options{GoPackage: cfg.GoPackage, GoOut: out})
	if err != nil {
		return err
	}

	tree := modtree.Builder{Exclude: cfg.Exclude, Logger: log}
	var jobs []wrapper.Job
	for _, output := range outputs {
		path, placed, err := tree.Place(output)
		if err != nil {
			return err
		}
		if placed {
			jobs = append(jobs, wrapper.Job{Path: path, Namespace: wrapper.SplitNamespace(output.Namespace)})
		}
	}
	wrap := wrapper.Generator{Opt: opt, Adapter: adapter, Logger: log}
	adapters, err := wrap.Run(jobs)
	if err != nil {
		return err
	}
	for i, a := range adapters {
		log.Info("generated package", "file", jobs[i].Path, "adapter", a.Path)
	}
	if err := tree.WriteDocs(); err != nil {
		return err
	}

	if cfg.DescriptorSetOut != "" {
		if err := writeDescriptorSet(ctx, &p, protoFiles, cfg.DescriptorSetOut); err != nil {
			return err
		}
		log.Info("wrote descriptor set", "file", cfg.DescriptorSetOut)
	}
	return nil
}

func writeDescriptorSet(ctx context.Context, p *parser.Parser, protoFiles []string, path string) error {
	set, err := p.DescriptorSet(ctx, protoFiles)
	if err != nil {
		return err
	}
	data, err := proto.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to encode descriptor set: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// removeOutput deletes the output root. The working directory and its
// parents are never removed.
func removeOutput(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	if rel, err := filepath.Rel(abs, cwd); err == nil && (rel == "." || filepath.IsLocal(rel)) {
		return fmt.Errorf("refusing to clean %s: it contains the working directory", dir)
	}
	return os.RemoveAll(dir)
}

func cleanPath(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}
