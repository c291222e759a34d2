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
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// Detect queries the host CPU and returns its identification together with
// the compatibility chain. Detection never fails for an unsupported or
// unrecognized CPU; those degrade to the generic baseline. An error is
// returned only when CPU information cannot be read at all (e.g. an
// unreadable /proc/cpuinfo), which indicates a broken host.
func Detect() (Info, error) {
	return detect(runtime.GOARCH)
}

func detect(goarch string) (Info, error) {
	switch goarch {
	case "amd64":
		return detectX86(&cpuid.CPU), nil
	case "arm64":
		return detectFromProcfs(ArchAArch64)
	case "ppc64le":
		return detectFromProcfs(ArchPPC64LE)
	default:
		// No stack flavor exists for this architecture family; report the
		// Go architecture name with generic entries only.
		return Info{
			Arch:      goarch,
			Vendor:    VendorUnknown,
			Microarch: Generic,
			Chain:     Chain(goarch, VendorUnknown, Generic),
		}, nil
	}
}

// detectX86 classifies an x86-64 CPU from its CPUID feature flags and,
// for AMD, family/model numbers.
func detectX86(c *cpuid.CPUInfo) Info {
	var (
		vendor Vendor
		uarch  string
	)

	switch c.VendorID {
	case cpuid.Intel:
		vendor = VendorIntel
		uarch = intelMicroarch(c)
	case cpuid.AMD, cpuid.Hygon:
		vendor = VendorAMD
		uarch = amdMicroarch(c)
	default:
		vendor = VendorUnknown
		uarch = Generic
	}

	return Info{
		Arch:      ArchX86_64,
		Vendor:    vendor,
		Microarch: uarch,
		Chain:     Chain(ArchX86_64, vendor, uarch),
	}
}

// intelMicroarch maps feature flags onto the oldest Intel generation that
// carries them. Generations the stack does not distinguish (e.g. broadwell)
// fold into their feature-compatible ancestor.
func intelMicroarch(c *cpuid.CPUInfo) string {
	switch {
	case c.Supports(cpuid.AVX512F, cpuid.AVX512VNNI, cpuid.AVX512VL):
		return "icelake"
	case c.Supports(cpuid.AVX512F, cpuid.AVX512BW, cpuid.AVX512CD, cpuid.AVX512DQ, cpuid.AVX512VL):
		return "skylake_avx512"
	case c.Supports(cpuid.AVX2, cpuid.FMA3, cpuid.BMI2):
		return "haswell"
	case c.Supports(cpuid.AVX):
		return "sandybridge"
	case c.Supports(cpuid.SSE42):
		return "nehalem"
	default:
		return Generic
	}
}

// amdMicroarch classifies Zen generations by CPU family. Feature flags alone
// cannot tell zen from zen2, so the family/model split mirrors what the
// kernel uses: family 0x17 models 0x30+ are zen2, family 0x19 is zen3
// (zen4 once AVX-512 shows up), family 0x1a runs zen4 binaries.
func amdMicroarch(c *cpuid.CPUInfo) string {
	switch c.Family {
	case 0x17:
		if c.Model >= 0x30 {
			return "zen2"
		}
		return "zen"
	case 0x19:
		if c.Supports(cpuid.AVX512F) {
			return "zen4"
		}
		return "zen3"
	case 0x1a:
		return "zen4"
	default:
		if c.Supports(cpuid.AVX2) {
			return "zen"
		}
		return Generic
	}
}
