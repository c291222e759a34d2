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

import "path"

// Vendor identifies a CPU vendor as used in the stack directory layout.
type Vendor string

const (
	// VendorIntel identifies Intel x86-64 CPUs.
	VendorIntel Vendor = "intel"
	// VendorAMD identifies AMD x86-64 CPUs.
	VendorAMD Vendor = "amd"
	// VendorARM identifies 64-bit ARM CPUs regardless of implementer.
	VendorARM Vendor = "arm"
	// VendorPower identifies IBM POWER CPUs.
	VendorPower Vendor = "power"
	// VendorUnknown is used when the vendor cannot be determined. Hosts with
	// an unknown vendor still resolve through the generic baseline entries.
	VendorUnknown Vendor = "unknown"
)

// Architecture names as they appear at the top of the stack tree.
const (
	ArchX86_64  = "x86_64"
	ArchAArch64 = "aarch64"
	ArchPPC64LE = "ppc64le"
)

// Generic names the vendor-neutral build flavor present in every
// architecture tree (e.g. x86_64/generic).
const Generic = "generic"

// Info describes the host CPU as far as stack resolution is concerned.
type Info struct {
	// Arch is the instruction set architecture baseline, e.g. "x86_64".
	Arch string `json:"arch" yaml:"arch"`

	// Vendor is the CPU vendor, or VendorUnknown.
	Vendor Vendor `json:"vendor" yaml:"vendor"`

	// Microarch is the detected microarchitecture generation, e.g. "haswell".
	// Set to Generic when no specific generation could be determined.
	Microarch string `json:"microarch" yaml:"microarch"`

	// Chain is the ordered compatibility chain, from the most specific
	// microarchitecture to the most generic, always terminated by the
	// generic flavor and the bare architecture baseline.
	Chain []string `json:"chain" yaml:"chain"`
}

// CandidatePaths maps the compatibility chain onto relative stack
// subdirectories, preserving chain order. Named generations get a vendor
// segment; the generic flavor and the architecture baseline do not.
func (i Info) CandidatePaths() []string {
	paths := make([]string, 0, len(i.Chain))
	for _, uarch := range i.Chain {
		paths = append(paths, i.candidatePath(uarch))
	}
	return paths
}

func (i Info) candidatePath(uarch string) string {
	switch uarch {
	case i.Arch:
		return i.Arch
	case Generic:
		return path.Join(i.Arch, Generic)
	default:
		return path.Join(i.Arch, string(i.Vendor), uarch)
	}
}
