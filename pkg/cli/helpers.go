/*
Copyright © 2025 the archpath authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/archpath/archpath/pkg/cpu"
	"github.com/archpath/archpath/pkg/errors"
	"github.com/archpath/archpath/pkg/serializer"
	"github.com/archpath/archpath/pkg/stack"
)

// stackOS names the operating-system segment of the layered stack tree
// (compat/<os>/<arch>, software/<os>/<subdir>). The stacks this tool
// targets ship Linux builds only.
const stackOS = "linux"

// stackFS is the filesystem all commands resolve against.
// Tests swap it for an in-memory filesystem.
var stackFS afero.Fs = afero.NewOsFs()

func newResolver() *stack.Resolver {
	return &stack.Resolver{FS: stackFS}
}

// stdout returns the writer command output should go to, honoring writer
// injection on the root command during tests.
func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// reportWriter builds a serializer for the command's --output flag. Without
// an output path the report goes to the same writer as regular command
// output, so writer injection covers reports too.
func reportWriter(cmd *cli.Command, format serializer.Format) *serializer.Writer {
	if path := cmd.String("output"); strings.TrimSpace(path) != "" {
		return serializer.NewFileWriterOrStdout(format, path)
	}
	return serializer.NewWriter(format, stdout(cmd))
}

// stackRootArg extracts the mandatory stack root positional argument.
func stackRootArg(cmd *cli.Command) (string, error) {
	root := strings.TrimSpace(cmd.Args().First())
	if root == "" {
		return "", errors.New(errors.ErrCodeInvalidRequest, "stack root argument is required")
	}
	return root, nil
}

// hostInfo queries the host CPU, applying the chain map override when one
// is configured. A failed CPU query is the one condition treated as a hard
// error: it points at a broken host, not an unsupported one.
func hostInfo(cmd *cli.Command) (cpu.Info, error) {
	info, err := cpu.Detect()
	if err != nil {
		return cpu.Info{}, errors.Wrap(errors.ErrCodeDetectionFailed,
			"failed to read host CPU information", err)
	}

	if path := cmd.String("cpu-map"); path != "" {
		m, err := cpu.LoadChainMap(stackFS, path)
		if err != nil {
			return cpu.Info{}, errors.Wrap(errors.ErrCodeInvalidRequest,
				"failed to load CPU chain map", err)
		}
		info = info.WithChainMap(m)
	}
	return info, nil
}

// Derived paths of the layered stack tree.

func compatPath(root, arch string) string {
	return filepath.Join(root, "compat", stackOS, arch)
}

func softwarePath(root, subdir string) string {
	return filepath.Join(root, "software", stackOS, filepath.FromSlash(subdir))
}

func modulePath(root, subdir string) string {
	return filepath.Join(softwarePath(root, subdir), "modules", "all")
}

func dirExists(path string) bool {
	ok, err := afero.DirExists(stackFS, path)
	return err == nil && ok
}
