package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jptrs93/protocompat/internal/modtree"
	"github.com/jptrs93/protocompat/internal/wrapper"
)

type wrapOptions struct {
	root      *rootOptions
	namespace string
	gen       string
	adapter   string
}

func newWrapCmd(root *rootOptions) *cobra.Command {
	opts := &wrapOptions{root: root}

	cmd := &cobra.Command{
		Use:   "wrap [flags] <file.go>...",
		Short: "Generate adapters for existing minimal-style Go files",
		Long: `Generate the wrapper_ adapter for each minimal-style Go file. The adapter is
written next to its input and replaces any earlier version.`,
		Example: `  protocompat wrap gen/acme/shop/shop.go
  protocompat wrap --gen no-message --namespace acme.shop shop.go`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrap(opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.namespace, "namespace", "n", "", "Dotted namespace of the inputs")
	cmd.Flags().StringVar(&opts.gen, "gen", "all", "Generated categories: a preset or a | separated list")
	cmd.Flags().StringVar(&opts.adapter, "adapter", "legacy", "Message contract of the adapter (legacy or gogo)")

	return cmd
}

func runWrap(opts *wrapOptions, paths []string) error {
	opt, err := wrapper.ParseGenOpt(opts.gen)
	if err != nil {
		return err
	}
	adapter, err := wrapper.ParseAdapter(opts.adapter)
	if err != nil {
		return err
	}

	g := wrapper.Generator{Opt: opt, Adapter: adapter, Logger: opts.root.logger}
	ns := wrapper.SplitNamespace(opts.namespace)
	jobs := make([]wrapper.Job, 0, len(paths))
	for _, path := range paths {
		if strings.HasPrefix(filepath.Base(path), modtree.WrapperPrefix) {
			return fmt.Errorf("%s is an adapter file", path)
		}
		jobs = append(jobs, wrapper.Job{Path: path, Namespace: ns})
	}
	outs, err := g.Run(jobs)
	if err != nil {
		return err
	}
	for i, out := range outs {
		opts.root.logger.Info("generated adapter", "file", jobs[i].Path, "adapter", out.Path)
	}
	return nil
}
