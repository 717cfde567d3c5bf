package gpuinfo

import (
	"testing"

	"github.com/emufront/gpucaps/internal/domain"
	"github.com/emufront/gpucaps/internal/platform"
	"github.com/stretchr/testify/assert"
)

func TestVendorOf(t *testing.T) {
	tests := []struct {
		name string
		id   domain.Identity
		want Vendor
	}{
		{name: "arm vendor", id: domain.Identity{Vendor: "ARM", Renderer: "Mali-G78"}, want: VendorARM},
		{name: "vendor string wins", id: domain.Identity{Vendor: "Qualcomm", Renderer: "Mali-G78"}, want: VendorQualcomm},
		{name: "renderer fallback", id: domain.Identity{Vendor: "Unknown", Renderer: "Adreno (TM) 640"}, want: VendorQualcomm},
		{name: "intel", id: domain.Identity{Vendor: "Intel", Renderer: "Mesa Intel(R) UHD Graphics 620"}, want: VendorIntel},
		{name: "mali renderer", id: domain.Identity{Vendor: "", Renderer: "mali-t880"}, want: VendorARM},
		{name: "nvidia", id: domain.Identity{Vendor: "NVIDIA Corporation", Renderer: "NVIDIA GeForce RTX 3080"}, want: VendorUnknown},
		{name: "failure sentinel", id: domain.FailedIdentity(), want: VendorUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VendorOf(tt.id))
		})
	}
}

func TestSupportsTileTransactionElimination(t *testing.T) {
	assert.True(t, SupportsTileTransactionElimination(domain.Identity{Renderer: "Mali-G710"}))
	assert.True(t, SupportsTileTransactionElimination(domain.Identity{Renderer: "Mali-T628"}))
	assert.False(t, SupportsTileTransactionElimination(domain.Identity{Renderer: "Mali-450 MP"}))
	assert.False(t, SupportsTileTransactionElimination(domain.FailedIdentity()))
}

func TestSupportsFrameCompression(t *testing.T) {
	token := DefaultCompressionExtension

	t.Run("architecture only", func(t *testing.T) {
		id := domain.Identity{Renderer: "Mali-G710", Extensions: "GL_OES_EGL_image GL_EXT_color_buffer_float"}
		assert.True(t, SupportsFrameCompression(id, token))
	})

	t.Run("extension only", func(t *testing.T) {
		id := domain.Identity{Renderer: "Mali-T880", Extensions: "GL_OES_EGL_image " + token + " GL_KHR_debug"}
		assert.False(t, Classify(id.Renderer).SupportsFrameCompression())
		assert.True(t, SupportsFrameCompression(id, token))
	})

	t.Run("extension on non mali", func(t *testing.T) {
		id := domain.Identity{Renderer: "Adreno 740", Extensions: token}
		assert.True(t, SupportsFrameCompression(id, token))
	})

	t.Run("neither", func(t *testing.T) {
		id := domain.Identity{Renderer: "Mali-450 MP", Extensions: "GL_OES_EGL_image"}
		assert.False(t, SupportsFrameCompression(id, token))
	})

	t.Run("prefix of another extension is not a match", func(t *testing.T) {
		id := domain.Identity{Renderer: "Mali-450 MP", Extensions: token + "_v2"}
		assert.False(t, SupportsFrameCompression(id, token))
	})

	t.Run("failure sentinel", func(t *testing.T) {
		assert.False(t, SupportsFrameCompression(domain.FailedIdentity(), token))
	})
}

func TestHasExtension_EmptyToken(t *testing.T) {
	assert.False(t, HasExtension("GL_A GL_B", ""))
	assert.False(t, HasExtension("", "GL_A"))
}

func TestSupportsModernGraphicsAPI(t *testing.T) {
	assert.True(t, SupportsModernGraphicsAPI(platform.Info{SDKLevel: 33}))
	assert.False(t, SupportsModernGraphicsAPI(platform.Info{SDKLevel: 21}))
	assert.False(t, SupportsModernGraphicsAPI(platform.Info{}))
}
