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
	"os"
	"strings"
)

// procCpuinfoPath is a variable so tests can point it at fixture files.
var procCpuinfoPath = "/proc/cpuinfo"

// ARM implementer/part codes from the first processor block of
// /proc/cpuinfo, mapped onto stack microarchitecture names.
var armParts = map[string]map[string]string{
	// ARM Ltd.
	"0x41": {
		"0xd08": "cortex_a72",
		"0xd0c": "neoverse_n1",
		"0xd40": "neoverse_v1",
		"0xd49": "neoverse_n2",
	},
	// Cavium/Marvell
	"0x43": {
		"0x0af": "thunderx2",
	},
	// Fujitsu
	"0x46": {
		"0x001": "a64fx",
	},
}

// detectFromProcfs identifies aarch64 and ppc64le hosts from /proc/cpuinfo.
// CPUID is an x86 facility; on these architectures the kernel's view is the
// portable source of implementer/part (ARM) and processor model (POWER).
func detectFromProcfs(arch string) (Info, error) {
	raw, err := os.ReadFile(procCpuinfoPath)
	if err != nil {
		return Info{}, fmt.Errorf("failed to read CPU information from %s: %w", procCpuinfoPath, err)
	}

	fields := parseCpuinfo(string(raw))

	switch arch {
	case ArchAArch64:
		return classifyARM(fields), nil
	case ArchPPC64LE:
		return classifyPower(fields), nil
	default:
		return Info{}, fmt.Errorf("unsupported procfs architecture %q", arch)
	}
}

// parseCpuinfo extracts key/value fields from the first processor block.
// Later blocks repeat the same identification on every supported platform.
func parseCpuinfo(content string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			// End of the first processor block.
			if len(fields) > 0 {
				break
			}
			continue
		}

		kv := strings.SplitN(line, ":", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		if _, seen := fields[key]; seen {
			continue
		}
		fields[key] = strings.TrimSpace(kv[1])
	}
	return fields
}

func classifyARM(fields map[string]string) Info {
	uarch := Generic
	if parts, ok := armParts[fields["CPU implementer"]]; ok {
		if name, ok := parts[fields["CPU part"]]; ok {
			uarch = name
		}
	}

	return Info{
		Arch:      ArchAArch64,
		Vendor:    VendorARM,
		Microarch: uarch,
		Chain:     Chain(ArchAArch64, VendorARM, uarch),
	}
}

func classifyPower(fields map[string]string) Info {
	// The "cpu" field reads e.g. "POWER9 (architected), altivec supported".
	model := strings.ToUpper(fields["cpu"])
	uarch := Generic
	switch {
	case strings.HasPrefix(model, "POWER10"):
		uarch = "power10le"
	case strings.HasPrefix(model, "POWER9"):
		uarch = "power9le"
	}

	return Info{
		Arch:      ArchPPC64LE,
		Vendor:    VendorPower,
		Microarch: uarch,
		Chain:     Chain(ArchPPC64LE, VendorPower, uarch),
	}
}
