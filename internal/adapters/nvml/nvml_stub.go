//go:build nonvml || !cgo
// +build nonvml !cgo

package nvml

import (
	"fmt"

	"github.com/emufront/gpucaps/internal/domain"
)

// NVMLBackend stub - used with the nonvml tag or when cgo is disabled
type NVMLBackend struct{}

func NewNVMLBackend(index int) *NVMLBackend {
	return &NVMLBackend{}
}

func (b *NVMLBackend) Name() string {
	return "nvml"
}

func (b *NVMLBackend) Open(rel domain.Releaser) (domain.GraphicsContext, error) {
	return nil, fmt.Errorf("NVML not available (built with nonvml tag or CGO_ENABLED=0)")
}

// Compile-time interface check
var _ domain.GraphicsBackend = (*NVMLBackend)(nil)
