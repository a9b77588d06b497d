// Package commands contains all CLI command definitions.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel string
	logger   *slog.Logger
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "protocompat",
		Short: "Generate minimal Go protobuf code with legacy accessor adapters",
		Long: `protocompat compiles proto3 files into minimal Go structs with hand-rolled
wire encoding, then generates wrapper_ files giving those structs the
accessor API and message contract of legacy protobuf runtimes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level %q", opts.logLevel)
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn or error)")

	registerCompileCmd(rootCmd, opts)
	registerWrapCmd(rootCmd, opts)

	return rootCmd
}

func registerCompileCmd(parent *cobra.Command, root *rootOptions) {
	parent.AddCommand(newCompileCmd(root))
}

func registerWrapCmd(parent *cobra.Command, root *rootOptions) {
	parent.AddCommand(newWrapCmd(root))
}
