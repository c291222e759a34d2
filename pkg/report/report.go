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

// Package report wraps command output in a versioned, identifiable envelope
// so downstream tooling can archive and correlate detection runs.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/archpath/archpath/pkg/cpu"
	"github.com/archpath/archpath/pkg/stack"
)

// APIVersion identifies the report schema.
const APIVersion = "archpath.dev/v1"

// Report kinds.
const (
	KindDetection = "CPUDetection"
	KindLayout    = "StackLayout"
)

// Header carries report identity and provenance metadata.
type Header struct {
	Kind       string            `json:"kind" yaml:"kind"`
	APIVersion string            `json:"apiVersion" yaml:"apiVersion"`
	ID         string            `json:"id" yaml:"id"`
	Created    time.Time         `json:"created" yaml:"created"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// NewHeader creates a Header of the given kind with a fresh ID and a UTC
// creation timestamp.
func NewHeader(kind string) Header {
	return Header{
		Kind:       kind,
		APIVersion: APIVersion,
		ID:         uuid.NewString(),
		Created:    time.Now().UTC(),
	}
}

// Detection is the envelope for CPU detection output.
type Detection struct {
	Header `json:",inline" yaml:",inline"`

	CPU cpu.Info `json:"cpu" yaml:"cpu"`
}

// NewDetection wraps the detected CPU info in a report envelope.
func NewDetection(info cpu.Info) *Detection {
	return &Detection{
		Header: NewHeader(KindDetection),
		CPU:    info,
	}
}

// LayoutReport is the envelope for stack layout listings.
type LayoutReport struct {
	Header `json:",inline" yaml:",inline"`

	Layout stack.Layout `json:"layout" yaml:"layout"`
}

// NewLayout wraps a discovered stack layout in a report envelope.
func NewLayout(layout stack.Layout) *LayoutReport {
	return &LayoutReport{
		Header: NewHeader(KindLayout),
		Layout: layout,
	}
}
