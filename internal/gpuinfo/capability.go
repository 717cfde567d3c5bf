package gpuinfo

import (
	"strings"

	"github.com/emufront/gpucaps/internal/domain"
	"github.com/emufront/gpucaps/internal/platform"
)

// DefaultCompressionExtension is the extension that advertises fixed-rate
// framebuffer compression independently of the architecture table.
const DefaultCompressionExtension = "GL_EXT_texture_storage_compression"

// SupportsTileTransactionElimination answers from the architecture table only
func SupportsTileTransactionElimination(id domain.Identity) bool {
	return Classify(id.Renderer).SupportsTileTransactionElimination()
}

// SupportsFrameCompression is true when either the architecture supports it or
// the driver lists token among its extensions.
func SupportsFrameCompression(id domain.Identity, token string) bool {
	if Classify(id.Renderer).SupportsFrameCompression() {
		return true
	}
	return HasExtension(id.Extensions, token)
}

// HasExtension reports whether token is one entry of the space-delimited list
func HasExtension(extensions, token string) bool {
	if token == "" {
		return false
	}
	for _, ext := range strings.Fields(extensions) {
		if ext == token {
			return true
		}
	}
	return false
}

// SupportsModernGraphicsAPI is gated on the platform release, not the GPU
func SupportsModernGraphicsAPI(info platform.Info) bool {
	return info.SupportsVulkan()
}
