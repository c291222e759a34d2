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

package cpu

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Generations ordered newest to oldest. A generation is binary compatible
// with every entry that follows it.
var (
	intelGenerations = []string{
		"icelake",
		"skylake_avx512",
		"haswell",
		"sandybridge",
		"nehalem",
	}
	amdGenerations = []string{
		"zen4",
		"zen3",
		"zen2",
		"zen",
	}
	powerGenerations = []string{
		"power10le",
		"power9le",
	}
)

// ARM parts do not form a single linear family; each part carries its own
// list of binary-compatible ancestors.
var armAncestors = map[string][]string{
	"neoverse_v1": {"neoverse_n1"},
	"neoverse_n2": {"neoverse_n1"},
	"neoverse_n1": nil,
	"a64fx":       nil,
	"thunderx2":   nil,
	"cortex_a72":  nil,
}

// Chain builds the ordered compatibility chain for the given architecture,
// vendor, and microarchitecture, from most specific to most generic. Every
// chain ends with the generic flavor and the bare architecture baseline.
// Unknown vendors or microarchitectures degrade to the generic entries
// rather than failing.
func Chain(arch string, vendor Vendor, uarch string) []string {
	base := []string{Generic, arch}
	if uarch == "" || uarch == Generic || vendor == VendorUnknown {
		return base
	}

	var specific []string
	switch vendor {
	case VendorIntel:
		specific = suffixFrom(intelGenerations, uarch)
	case VendorAMD:
		specific = suffixFrom(amdGenerations, uarch)
	case VendorPower:
		specific = suffixFrom(powerGenerations, uarch)
	case VendorARM:
		ancestors, ok := armAncestors[uarch]
		if !ok {
			specific = []string{uarch}
			break
		}
		specific = append([]string{uarch}, ancestors...)
	default:
		return base
	}

	return append(specific, base...)
}

// suffixFrom returns the tail of generations starting at uarch. When uarch is
// not a known generation, the exact name is still probed before the generic
// fallbacks.
func suffixFrom(generations []string, uarch string) []string {
	for i, g := range generations {
		if g == uarch {
			out := make([]string, len(generations)-i)
			copy(out, generations[i:])
			return out
		}
	}
	return []string{uarch}
}

// ChainMap is an operator-supplied replacement for the built-in chain
// tables, keyed by architecture, vendor, and microarchitecture. It allows
// stacks with a different microarchitecture taxonomy to reuse detection.
type ChainMap map[string]map[string]map[string][]string

// LoadChainMap reads a ChainMap from a YAML file:
//
//	x86_64:
//	  intel:
//	    haswell: [haswell, generic, x86_64]
func LoadChainMap(fsys afero.Fs, path string) (ChainMap, error) {
	raw, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain map %q: %w", path, err)
	}

	var m ChainMap
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to parse chain map %q: %w", path, err)
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("chain map %q contains no entries", path)
	}
	return m, nil
}

// Lookup returns the mapped chain for the triple, if present.
func (m ChainMap) Lookup(arch string, vendor Vendor, uarch string) ([]string, bool) {
	vendors, ok := m[arch]
	if !ok {
		return nil, false
	}
	chains, ok := vendors[string(vendor)]
	if !ok {
		return nil, false
	}
	chain, ok := chains[uarch]
	if !ok || len(chain) == 0 {
		return nil, false
	}
	return chain, true
}

// WithChainMap returns a copy of the Info with its chain replaced by the
// mapped chain when the map has an entry for this CPU. Without a matching
// entry the Info is returned unchanged.
func (i Info) WithChainMap(m ChainMap) Info {
	if m == nil {
		return i
	}
	chain, ok := m.Lookup(i.Arch, i.Vendor, i.Microarch)
	if !ok {
		return i
	}
	out := i
	out.Chain = chain
	return out
}
