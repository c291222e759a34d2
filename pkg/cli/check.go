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

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Verify every prerequisite for activating the stack on this host",
		ArgsUsage: "<stack-root>",
		Description: `Run the chain of checks environment-setup glue depends on, in order:

  1. the stack root exists
  2. the compatibility layer exists (<root>/compat/linux/<arch>)
  3. a stack subdirectory resolves for this host
  4. the software tree exists (<root>/software/linux/<subdir>)
  5. the module tree exists (<software>/modules/all)

The first failing check aborts with a diagnostic naming exactly what is
missing, so failures in a chained setup are attributable.`,
		Flags: []cli.Flag{
			overrideFlag(),
			chainMapFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			root, err := stackRootArg(cmd)
			if err != nil {
				return err
			}

			out := stdout(cmd)
			pass := func(check, path string) {
				fmt.Fprintf(out, "ok\t%s\t%s\n", check, path)
			}
			fail := func(check, path string) error {
				return errors.NewWithContext(errors.ErrCodeNotFound,
					fmt.Sprintf("check failed: %s", check),
					map[string]any{"path": path})
			}

			if !dirExists(root) {
				return fail("stack root", root)
			}
			pass("stack root", root)

			info, err := hostInfo(cmd)
			if err != nil {
				return err
			}

			compat := compatPath(root, info.Arch)
			if !dirExists(compat) {
				return fail("compatibility layer", compat)
			}
			pass("compatibility layer", compat)

			override := cmd.String("subdir-override")
			subdir, ok := newResolver().ResolveHost(root, info, override)
			if !ok {
				return fail("stack subdirectory", root)
			}
			pass("stack subdirectory", subdir)

			software := softwarePath(root, subdir)
			if !dirExists(software) {
				return fail("software tree", software)
			}
			pass("software tree", software)

			modules := modulePath(root, subdir)
			if !dirExists(modules) {
				return fail("module tree", modules)
			}
			pass("module tree", modules)

			return nil
		},
	}
}
