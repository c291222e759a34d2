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
)

func detectCmd() *cli.Command {
	return &cli.Command{
		Name:  "detect",
		Usage: "Show the detected host CPU and its compatibility chain",
		Description: `Report the host CPU identification used for stack resolution:
  - architecture baseline (x86_64, aarch64, ppc64le)
  - vendor (intel, amd, arm, power, unknown)
  - microarchitecture generation (e.g. haswell, zen2, neoverse_n1)
  - ordered compatibility chain down to the generic baseline

The report can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
			chainMapFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := serializer.Format(cmd.String("format"))
			if format.IsUnknown() {
				return errors.New(errors.ErrCodeInvalidRequest,
					fmt.Sprintf("unknown output format %q", format))
			}

			info, err := hostInfo(cmd)
			if err != nil {
				return err
			}

			w := reportWriter(cmd, format)
			defer w.Close()

			if err := w.Serialize(ctx, report.NewDetection(info)); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, "failed to write detection report", err)
			}
			return nil
		},
	}
}
