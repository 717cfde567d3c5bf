//go:build nogpu || cgo

package wgpu

import (
	"errors"

	"github.com/emufront/gpucaps/internal/domain"
)

// ErrNoAdapter is returned when the instance exposes no adapter
var ErrNoAdapter = errors.New("wgpu: no GPU adapter available")

// Backend stub - used with the nogpu tag or with cgo enabled (goffi, under
// the Vulkan HAL, builds only with CGO_ENABLED=0)
type Backend struct{}

func NewBackend() *Backend {
	return &Backend{}
}

func (b *Backend) Name() string {
	return "wgpu"
}

func (b *Backend) Open(rel domain.Releaser) (domain.GraphicsContext, error) {
	return nil, errors.New("wgpu not available (built with nogpu tag or CGO_ENABLED=1)")
}

// Compile-time interface check
var _ domain.GraphicsBackend = (*Backend)(nil)
