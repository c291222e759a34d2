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

// Package stack resolves which microarchitecture-specific subdirectory of a
// read-only software stack a host should activate.
//
// The stack tree is organized as <root>/<arch>/<vendor>/<microarch>, with
// vendor-neutral fallbacks at <root>/<arch>/generic and <root>/<arch>.
// Resolution walks the host CPU's compatibility chain from most specific to
// most generic and returns the first subdirectory that exists; an operator
// override bypasses the walk entirely.
//
// Missing candidates, an unknown CPU, and a missing root are all expected
// conditions: the resolver reports "not found" through its boolean return
// and never errors for them.
package stack
