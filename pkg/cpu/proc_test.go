package cpu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gravitonCpuinfo = `processor	: 0
BogoMIPS	: 243.75
Features	: fp asimd evtstrm aes pmull sha1 sha2 crc32 atomics fphp asimdhp cpuid asimdrdm lrcpc dcpop ssbs
CPU implementer	: 0x41
CPU architecture: 8
CPU variant	: 0x3
CPU part	: 0xd0c
CPU revision	: 1

processor	: 1
CPU implementer	: 0x41
CPU part	: 0xd0c
`

const power9Cpuinfo = `processor	: 0
cpu		: POWER9 (architected), altivec supported
clock		: 2200.000000MHz
revision	: 2.2 (pvr 004e 1202)
`

func TestParseCpuinfo(t *testing.T) {
	fields := parseCpuinfo(gravitonCpuinfo)

	assert.Equal(t, "0x41", fields["CPU implementer"])
	assert.Equal(t, "0xd0c", fields["CPU part"])
	assert.Equal(t, "8", fields["CPU architecture"])
}

func TestParseCpuinfo_FirstBlockWins(t *testing.T) {
	content := "CPU part\t: 0xd0c\n\nCPU part\t: 0xd40\n"
	fields := parseCpuinfo(content)
	assert.Equal(t, "0xd0c", fields["CPU part"])
}

func TestParseCpuinfo_Empty(t *testing.T) {
	assert.Empty(t, parseCpuinfo(""))
	assert.Empty(t, parseCpuinfo("\n\n\n"))
}

func TestClassifyARM(t *testing.T) {
	tests := []struct {
		name        string
		implementer string
		part        string
		want        string
	}{
		{"neoverse n1", "0x41", "0xd0c", "neoverse_n1"},
		{"neoverse v1", "0x41", "0xd40", "neoverse_v1"},
		{"a64fx", "0x46", "0x001", "a64fx"},
		{"thunderx2", "0x43", "0x0af", "thunderx2"},
		{"unknown part", "0x41", "0xfff", Generic},
		{"unknown implementer", "0x99", "0xd0c", Generic},
		{"missing fields", "", "", Generic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := map[string]string{}
			if tt.implementer != "" {
				fields["CPU implementer"] = tt.implementer
				fields["CPU part"] = tt.part
			}
			info := classifyARM(fields)
			assert.Equal(t, ArchAArch64, info.Arch)
			assert.Equal(t, VendorARM, info.Vendor)
			assert.Equal(t, tt.want, info.Microarch)
			assert.Equal(t, ArchAArch64, info.Chain[len(info.Chain)-1])
		})
	}
}

func TestClassifyPower(t *testing.T) {
	p9 := classifyPower(map[string]string{"cpu": "POWER9 (architected), altivec supported"})
	assert.Equal(t, "power9le", p9.Microarch)
	assert.Equal(t, []string{"power9le", "generic", "ppc64le"}, p9.Chain)

	p10 := classifyPower(map[string]string{"cpu": "POWER10 (raw), altivec supported"})
	assert.Equal(t, "power10le", p10.Microarch)
	assert.Equal(t, []string{"power10le", "power9le", "generic", "ppc64le"}, p10.Chain)

	p8 := classifyPower(map[string]string{"cpu": "POWER8 (raw)"})
	assert.Equal(t, Generic, p8.Microarch)
}

func TestDetectFromProcfs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpuinfo")
	require.NoError(t, os.WriteFile(path, []byte(gravitonCpuinfo), 0o644))

	orig := procCpuinfoPath
	procCpuinfoPath = path
	t.Cleanup(func() { procCpuinfoPath = orig })

	info, err := detectFromProcfs(ArchAArch64)
	require.NoError(t, err)
	assert.Equal(t, "neoverse_n1", info.Microarch)
	assert.Equal(t, []string{"neoverse_n1", "generic", "aarch64"}, info.Chain)
}

func TestDetectFromProcfs_Power(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpuinfo")
	require.NoError(t, os.WriteFile(path, []byte(power9Cpuinfo), 0o644))

	orig := procCpuinfoPath
	procCpuinfoPath = path
	t.Cleanup(func() { procCpuinfoPath = orig })

	info, err := detectFromProcfs(ArchPPC64LE)
	require.NoError(t, err)
	assert.Equal(t, "power9le", info.Microarch)
}

func TestDetectFromProcfs_UnreadableIsAnError(t *testing.T) {
	orig := procCpuinfoPath
	procCpuinfoPath = filepath.Join(t.TempDir(), "does-not-exist")
	t.Cleanup(func() { procCpuinfoPath = orig })

	_, err := detectFromProcfs(ArchAArch64)
	assert.Error(t, err)
}
