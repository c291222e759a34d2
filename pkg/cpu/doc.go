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

// Package cpu detects the host CPU's vendor and microarchitecture and builds
// the ordered compatibility chain used to pick a software stack variant.
//
// # Detection sources
//
// On x86-64 the package classifies the CPU from CPUID feature flags (and,
// for AMD, family/model numbers) via github.com/klauspost/cpuid. On aarch64
// and ppc64le it reads the first processor block of /proc/cpuinfo: ARM
// implementer/part codes and the POWER processor model respectively.
//
// # Compatibility chains
//
// A chain lists microarchitecture names from the exact host match down to
// the generic baseline, e.g. for a Cascade Lake host:
//
//	[skylake_avx512, haswell, sandybridge, nehalem, generic, x86_64]
//
// Named generations map onto <arch>/<vendor>/<name> stack subdirectories;
// the trailing generic and baseline entries map onto <arch>/generic and
// <arch>. Unknown vendors and microarchitectures degrade to the generic
// entries, never to an error.
//
// The built-in chain tables can be replaced per-CPU with a YAML ChainMap for
// stacks using a different microarchitecture taxonomy.
package cpu
