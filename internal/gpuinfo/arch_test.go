package gpuinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		renderer string
		want     Architecture
	}{
		{name: "utgard 450", renderer: "Mali-450 MP", want: ArchLegacyTiled},
		{name: "utgard 400", renderer: "Mali-400 MP2", want: ArchLegacyTiled},
		{name: "midgard", renderer: "Mali-T880", want: ArchMidGeneration},
		{name: "midgard t760", renderer: "Mali-T760 MP8", want: ArchMidGeneration},
		{name: "bifrost g52", renderer: "Mali-G52 MC2", want: ArchModernTiledA},
		{name: "bifrost g76", renderer: "Mali-G76 MP10", want: ArchModernTiledA},
		{name: "valhall g78", renderer: "Mali-G78 MP14", want: ArchModernTiledB},
		{name: "valhall g710 not g71", renderer: "Mali-G710 MC10", want: ArchModernTiledB},
		{name: "valhall g310 not g31", renderer: "Mali-G310", want: ArchModernTiledB},
		{name: "valhall g720 not g72", renderer: "Mali-G720-Immortalis MC12", want: ArchModernTiledB},
		{name: "unlisted mali number", renderer: "Mali-G999", want: ArchUnknown},
		{name: "unlisted g725 not g72", renderer: "Mali-G725 MC7", want: ArchUnknown},
		{name: "unlisted g315 not g31", renderer: "Mali-G315", want: ArchUnknown},
		{name: "unlisted g525 not g52", renderer: "Mali-G525", want: ArchUnknown},
		{name: "unlisted g1200 not 200", renderer: "Mali-G1200", want: ArchUnknown},
		{name: "model number at end", renderer: "ARM Mali-G715", want: ArchModernTiledB},
		{name: "other vendor", renderer: "Adreno 640", want: ArchUnknown},
		{name: "other vendor with legacy number", renderer: "Adreno (TM) 450", want: ArchUnknown},
		{name: "empty", renderer: "", want: ArchUnknown},
		{name: "failure sentinel", renderer: "Detection Failed", want: ArchUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.renderer))
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Classify("mali-g78"), Classify("MALI-G78"))
	assert.Equal(t, ArchModernTiledB, Classify("MALI-G78"))
}

func TestArchitectureFlags(t *testing.T) {
	tests := []struct {
		arch     Architecture
		te       bool
		compress bool
	}{
		{ArchUnknown, false, false},
		{ArchLegacyTiled, false, false},
		{ArchMidGeneration, true, false},
		{ArchModernTiledA, true, true},
		{ArchModernTiledB, true, true},
		{Architecture(42), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.arch.String(), func(t *testing.T) {
			assert.Equal(t, tt.te, tt.arch.SupportsTileTransactionElimination())
			assert.Equal(t, tt.compress, tt.arch.SupportsFrameCompression())
		})
	}
}

func TestLegacyHasNoTileElimination(t *testing.T) {
	for _, r := range []string{"Mali-200", "Mali-300", "Mali-400 MP", "Mali-450 MP4", "Mali-470"} {
		arch := Classify(r)
		assert.Equal(t, ArchLegacyTiled, arch, r)
		assert.False(t, arch.SupportsTileTransactionElimination(), r)
	}
}

func TestArchitectureString(t *testing.T) {
	assert.Equal(t, "MODERN_TILED_B", ArchModernTiledB.String())
	assert.Equal(t, "Valhall", ArchModernTiledB.Codename())
	assert.Equal(t, "Architecture(42)", Architecture(42).String())
	assert.Equal(t, "Unknown", Architecture(42).Codename())

	text, err := ArchMidGeneration.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "MID_GENERATION", string(text))
}

func TestArchitectureUnmarshalText(t *testing.T) {
	var a Architecture
	assert.NoError(t, a.UnmarshalText([]byte("MODERN_TILED_A")))
	assert.Equal(t, ArchModernTiledA, a)
	assert.Error(t, a.UnmarshalText([]byte("TERASCALE")))

	var v Vendor
	assert.NoError(t, v.UnmarshalText([]byte("Intel")))
	assert.Equal(t, VendorIntel, v)
	assert.Error(t, v.UnmarshalText([]byte("Imagination")))
}

func TestContainsModel(t *testing.T) {
	assert.True(t, containsModel("mali-g52 mc2", "g52"))
	assert.True(t, containsModel("mali-g52", "g52"))
	assert.False(t, containsModel("mali-g525", "g52"))
	assert.True(t, containsModel("mali-g525 / mali-g52", "g52"))
	assert.False(t, containsModel("mali-1450", "450"))
	assert.True(t, containsModel("mali-t760", "mali-t"))
}
