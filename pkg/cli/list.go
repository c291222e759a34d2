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
	"github.com/archpath/archpath/pkg/report"
	"github.com/archpath/archpath/pkg/serializer"
	"github.com/archpath/archpath/pkg/stack"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List the variant subdirectories present under a stack root",
		ArgsUsage: "<stack-root>",
		Description: `Discover which microarchitecture variants the stack actually ships by
listing the filesystem under the given root.

By default one variant is printed per line. With --format a full layout
report (including the root and a report id) is emitted instead.`,
		Flags: []cli.Flag{
			outputFlag(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Usage:   "Emit a layout report instead of plain lines (json, yaml, table)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			root, err := stackRootArg(cmd)
			if err != nil {
				return err
			}

			layout, err := stack.DiscoverLayout(ctx, stackFS, root)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, "failed to discover stack layout", err)
			}

			if raw := cmd.String("format"); raw != "" {
				format := serializer.Format(raw)
				if format.IsUnknown() {
					return errors.New(errors.ErrCodeInvalidRequest,
						fmt.Sprintf("unknown output format %q", raw))
				}
				w := reportWriter(cmd, format)
				defer w.Close()
				if err := w.Serialize(ctx, report.NewLayout(*layout)); err != nil {
					return errors.Wrap(errors.ErrCodeInternal, "failed to write layout report", err)
				}
				return nil
			}

			out := stdout(cmd)
			for _, v := range layout.Variants {
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
}
