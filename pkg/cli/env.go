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

func envCmd() *cli.Command {
	return &cli.Command{
		Name:      "env",
		Usage:     "Print shell export lines for the resolved stack paths",
		ArgsUsage: "<stack-root>",
		Description: `Resolve the stack subdirectory for this host and emit export lines for
consumption by shell init glue:

  eval "$(archpath env /cvmfs/stack)"

Exports ARCHPATH_ROOT, ARCHPATH_SUBDIR, ARCHPATH_SOFTWARE_PATH, and
MODULEPATH. The derived software path is validated to exist before
anything is printed; resolution failure produces no output and a
non-zero exit.`,
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

			// The derived software path is what the shell actually uses,
			// so it must exist even when the subdirectory was overridden.
			software := softwarePath(root, subdir)
			if !dirExists(software) {
				return errors.NewWithContext(errors.ErrCodeNotFound,
					"software tree for resolved subdirectory not found",
					map[string]any{"path": software})
			}

			out := stdout(cmd)
			fmt.Fprintf(out, "export ARCHPATH_ROOT=%q\n", root)
			fmt.Fprintf(out, "export ARCHPATH_SUBDIR=%q\n", subdir)
			fmt.Fprintf(out, "export ARCHPATH_SOFTWARE_PATH=%q\n", software)
			fmt.Fprintf(out, "export MODULEPATH=%q\n", modulePath(root, subdir))
			return nil
		},
	}
}
