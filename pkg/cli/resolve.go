/*
Copyright © 2025 the archpath authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/archpath/archpath/pkg/errors"
)

func resolveCmd() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Print the best-matching stack subdirectory for this host",
		ArgsUsage: "<stack-root>",
		Description: `Determine which microarchitecture-specific subdirectory of the software
stack this host should use, e.g. x86_64/intel/haswell.

The host CPU's compatibility chain is walked from the most specific
microarchitecture to the most generic baseline; the first subdirectory
that exists under the stack root wins. Setting ARCHPATH_SUBDIR_OVERRIDE
(or --subdir-override) bypasses detection entirely and is trusted
verbatim.

On success exactly one line is written to stdout. When no compatible
subdirectory exists the command writes nothing to stdout and exits
non-zero, so calling shell glue can abort setup.`,
		Flags: []cli.Flag{
			overrideFlag(),
			chainMapFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			root, err := stackRootArg(cmd)
			if err != nil {
				return err
			}

			override := cmd.String("subdir-override")

			var candidates []string
			if override == "" {
				info, err := hostInfo(cmd)
				if err != nil {
					return err
				}
				candidates = info.CandidatePaths()
			}

			subdir, ok := newResolver().Resolve(root, candidates, override)
			if !ok {
				return errors.NewWithContext(errors.ErrCodeNotFound,
					"no compatible software stack subdirectory found",
					map[string]any{"root": root})
			}

			fmt.Fprintln(stdout(cmd), subdir)
			return nil
		},
	}
}
