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
	"context"
	"path"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/archpath/archpath/pkg/cpu"
)

// Layout describes the variant subdirectories that actually exist under a
// stack root. Variants are discovered by listing the filesystem, never
// hardcoded.
type Layout struct {
	// Root is the stack root path the layout was discovered under.
	Root string `json:"root" yaml:"root"`

	// Variants lists every resolvable relative subdirectory, sorted:
	// <arch>, <arch>/generic, and <arch>/<vendor>/<microarch>.
	Variants []string `json:"variants" yaml:"variants"`
}

// DiscoverLayout lists the variants present under root. A missing or
// unreadable root yields an empty layout, mirroring the resolver's
// treatment of a bad root as "no candidates". Vendor directories are
// scanned concurrently.
func DiscoverLayout(ctx context.Context, fsys afero.Fs, root string) (*Layout, error) {
	layout := &Layout{Root: root, Variants: []string{}}

	archEntries, err := afero.ReadDir(fsys, root)
	if err != nil {
		return layout, nil
	}

	var (
		mu sync.Mutex
		g  *errgroup.Group
	)
	g, ctx = errgroup.WithContext(ctx)

	for _, archEntry := range archEntries {
		if !archEntry.IsDir() {
			continue
		}
		arch := archEntry.Name()

		mu.Lock()
		layout.Variants = append(layout.Variants, arch)
		mu.Unlock()

		vendorEntries, err := afero.ReadDir(fsys, filepath.Join(root, arch))
		if err != nil {
			continue
		}

		for _, vendorEntry := range vendorEntries {
			if !vendorEntry.IsDir() {
				continue
			}
			vendor := vendorEntry.Name()

			if vendor == cpu.Generic {
				mu.Lock()
				layout.Variants = append(layout.Variants, path.Join(arch, vendor))
				mu.Unlock()
				continue
			}

			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				uarchEntries, err := afero.ReadDir(fsys, filepath.Join(root, arch, vendor))
				if err != nil {
					return nil
				}
				for _, uarchEntry := range uarchEntries {
					if !uarchEntry.IsDir() {
						continue
					}
					mu.Lock()
					layout.Variants = append(layout.Variants, path.Join(arch, vendor, uarchEntry.Name()))
					mu.Unlock()
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(layout.Variants)
	return layout, nil
}
