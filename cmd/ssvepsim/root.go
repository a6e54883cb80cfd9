// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/ssvepcca/config"
	"github.com/spf13/cobra"
)

// version is set at link time with -ldflags "-X main.version=...".
var version = "dev"

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:          "ssvepsim",
		Short:        "Synthetic SSVEP recognition experiments",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log at debug level")
	root.AddCommand(newRunCmd(flags), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "ssvepsim", version)
		},
	}
}

// newLogger builds the slog handler described by cfg; verbose forces debug.
func newLogger(w io.Writer, cfg config.Log, verbose bool) *slog.Logger {
	level := cfg.Level.Level()
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
