// Copyright (c) 2025, the archpath authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stack

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/archpath/archpath/pkg/cpu"
)

// Resolver picks the best-matching, existing stack subdirectory for a host.
// The filesystem is injected so resolution can be tested without touching
// a real stack mount.
type Resolver struct {
	FS     afero.Fs
	Logger *slog.Logger
}

// NewResolver creates a Resolver backed by the OS filesystem.
func NewResolver() *Resolver {
	return &Resolver{FS: afero.NewOsFs()}
}

// Resolve returns the relative subdirectory under root that the host should
// use, walking the CPU compatibility chain from most specific to most
// generic and returning the first candidate that exists on disk.
//
// A non-empty override wins unconditionally and is returned verbatim,
// without existence validation; a warning is logged when the directory is
// missing so operators can spot typos. A missing or non-directory root is
// treated the same as an empty one: no candidates, not a distinct error.
//
// The second return value is false when nothing matched; the returned path
// is empty in that case. Resolution is a pure function of the filesystem
// snapshot, the CPU info, and the override.
func (r *Resolver) Resolve(root string, candidates []string, override string) (string, bool) {
	logger := r.logger()

	if override != "" {
		if exists, _ := afero.DirExists(r.fs(), filepath.Join(root, override)); !exists {
			logger.Warn("override subdirectory does not exist under stack root, using it anyway",
				"override", override, "root", root)
		}
		logger.Debug("using subdirectory override", "override", override)
		return override, true
	}

	for _, rel := range candidates {
		target := filepath.Join(root, rel)
		exists, err := afero.DirExists(r.fs(), target)
		if err != nil {
			logger.Debug("skipping unreadable candidate", "path", target, "error", err)
			continue
		}
		if exists {
			logger.Debug("matched stack subdirectory", "subdir", rel)
			return rel, true
		}
		logger.Debug("candidate does not exist", "path", target)
	}

	logger.Debug("no compatible stack subdirectory found", "root", root, "candidates", len(candidates))
	return "", false
}

// ResolveHost resolves using the candidate paths derived from the CPU's
// compatibility chain.
func (r *Resolver) ResolveHost(root string, info cpu.Info, override string) (string, bool) {
	return r.Resolve(root, info.CandidatePaths(), override)
}

func (r *Resolver) fs() afero.Fs {
	if r.FS == nil {
		return afero.NewOsFs()
	}
	return r.FS
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}
