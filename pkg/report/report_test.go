package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archpath/archpath/pkg/cpu"
	"github.com/archpath/archpath/pkg/stack"
)

func TestNewHeader(t *testing.T) {
	h := NewHeader(KindDetection)

	assert.Equal(t, KindDetection, h.Kind)
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.WithinDuration(t, time.Now().UTC(), h.Created, time.Minute)

	_, err := uuid.Parse(h.ID)
	require.NoError(t, err)

	// IDs are unique per report.
	assert.NotEqual(t, h.ID, NewHeader(KindDetection).ID)
}

func TestNewDetection(t *testing.T) {
	info := cpu.Info{
		Arch:      cpu.ArchX86_64,
		Vendor:    cpu.VendorIntel,
		Microarch: "haswell",
		Chain:     []string{"haswell", "generic", "x86_64"},
	}

	d := NewDetection(info)
	assert.Equal(t, KindDetection, d.Kind)
	assert.Equal(t, info, d.CPU)
}

func TestNewLayout(t *testing.T) {
	l := NewLayout(stack.Layout{Root: "/stack", Variants: []string{"x86_64"}})
	assert.Equal(t, KindLayout, l.Kind)
	assert.Equal(t, "/stack", l.Layout.Root)
}
