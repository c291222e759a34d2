package cpu

import (
	"runtime"
	"testing"

	"github.com/klauspost/cpuid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intelCPU(features ...cpuid.FeatureID) *cpuid.CPUInfo {
	c := &cpuid.CPUInfo{VendorID: cpuid.Intel}
	c.Enable(features...)
	return c
}

func TestIntelMicroarch(t *testing.T) {
	tests := []struct {
		name     string
		features []cpuid.FeatureID
		want     string
	}{
		{
			name: "icelake",
			features: []cpuid.FeatureID{
				cpuid.SSE42, cpuid.AVX, cpuid.AVX2, cpuid.FMA3, cpuid.BMI2,
				cpuid.AVX512F, cpuid.AVX512BW, cpuid.AVX512CD, cpuid.AVX512DQ,
				cpuid.AVX512VL, cpuid.AVX512VNNI,
			},
			want: "icelake",
		},
		{
			name: "skylake_avx512",
			features: []cpuid.FeatureID{
				cpuid.SSE42, cpuid.AVX, cpuid.AVX2, cpuid.FMA3, cpuid.BMI2,
				cpuid.AVX512F, cpuid.AVX512BW, cpuid.AVX512CD, cpuid.AVX512DQ,
				cpuid.AVX512VL,
			},
			want: "skylake_avx512",
		},
		{
			name:     "haswell",
			features: []cpuid.FeatureID{cpuid.SSE42, cpuid.AVX, cpuid.AVX2, cpuid.FMA3, cpuid.BMI2},
			want:     "haswell",
		},
		{
			name:     "sandybridge",
			features: []cpuid.FeatureID{cpuid.SSE42, cpuid.AVX},
			want:     "sandybridge",
		},
		{
			name:     "nehalem",
			features: []cpuid.FeatureID{cpuid.SSE42},
			want:     "nehalem",
		},
		{
			name:     "ancient cpu degrades to generic",
			features: nil,
			want:     Generic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intelMicroarch(intelCPU(tt.features...)))
		})
	}
}

func TestAMDMicroarch(t *testing.T) {
	zen := &cpuid.CPUInfo{VendorID: cpuid.AMD, Family: 0x17, Model: 0x01}
	assert.Equal(t, "zen", amdMicroarch(zen))

	zen2 := &cpuid.CPUInfo{VendorID: cpuid.AMD, Family: 0x17, Model: 0x31}
	assert.Equal(t, "zen2", amdMicroarch(zen2))

	zen3 := &cpuid.CPUInfo{VendorID: cpuid.AMD, Family: 0x19, Model: 0x01}
	assert.Equal(t, "zen3", amdMicroarch(zen3))

	zen4 := &cpuid.CPUInfo{VendorID: cpuid.AMD, Family: 0x19, Model: 0x61}
	zen4.Enable(cpuid.AVX512F)
	assert.Equal(t, "zen4", amdMicroarch(zen4))

	zen5 := &cpuid.CPUInfo{VendorID: cpuid.AMD, Family: 0x1a}
	assert.Equal(t, "zen4", amdMicroarch(zen5))

	oldFamily := &cpuid.CPUInfo{VendorID: cpuid.AMD, Family: 0x15}
	assert.Equal(t, Generic, amdMicroarch(oldFamily))
}

func TestDetectX86(t *testing.T) {
	c := intelCPU(cpuid.SSE42, cpuid.AVX, cpuid.AVX2, cpuid.FMA3, cpuid.BMI2)
	info := detectX86(c)

	assert.Equal(t, ArchX86_64, info.Arch)
	assert.Equal(t, VendorIntel, info.Vendor)
	assert.Equal(t, "haswell", info.Microarch)
	assert.Equal(t, []string{"haswell", "sandybridge", "nehalem", "generic", "x86_64"}, info.Chain)
}

func TestDetectX86_UnknownVendor(t *testing.T) {
	c := &cpuid.CPUInfo{VendorID: cpuid.VIA}
	info := detectX86(c)

	assert.Equal(t, VendorUnknown, info.Vendor)
	assert.Equal(t, Generic, info.Microarch)
	assert.Equal(t, []string{"generic", "x86_64"}, info.Chain)
}

func TestDetect_UnsupportedArch(t *testing.T) {
	info, err := detect("riscv64")
	require.NoError(t, err)

	assert.Equal(t, "riscv64", info.Arch)
	assert.Equal(t, VendorUnknown, info.Vendor)
	assert.Equal(t, []string{"generic", "riscv64"}, info.Chain)
}

func TestDetect_Host(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skipf("host detection test only meaningful on amd64, running on %s", runtime.GOARCH)
	}

	info, err := Detect()
	require.NoError(t, err)

	assert.Equal(t, ArchX86_64, info.Arch)
	require.NotEmpty(t, info.Chain)
	assert.Equal(t, ArchX86_64, info.Chain[len(info.Chain)-1])
}
