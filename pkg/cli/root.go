/*
Copyright © 2025 the archpath authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/archpath/archpath/pkg/logging"
	"github.com/archpath/archpath/pkg/serializer"
)

const name = "archpath"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Flag constructors used by multiple commands. Flags carry parse state, so
// every command (and every New call) must get its own instances.

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
		Value: string(serializer.FormatYAML),
	}
}

func overrideFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "subdir-override",
		Usage:   "Force a specific stack subdirectory, bypassing CPU detection (trusted verbatim)",
		Sources: cli.EnvVars("ARCHPATH_SUBDIR_OVERRIDE"),
	}
}

func chainMapFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "cpu-map",
		Usage:   "YAML file replacing the built-in CPU compatibility chains",
		Sources: cli.EnvVars("ARCHPATH_CPU_MAP"),
	}
}

// New assembles the archpath command tree.
func New() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Resolve CPU-optimized software stack subdirectories",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				// Default to warn: resolve's stdout is consumed by shell
				// glue, so routine logs stay out of the way.
				Value: "warn",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			resolveCmd(),
			detectCmd(),
			listCmd(),
			checkCmd(),
			envCmd(),
		},
	}
}

// Run executes the CLI with the given arguments. This is the entry point
// used by main.
func Run(ctx context.Context, args []string) error {
	return New().Run(ctx, args)
}
