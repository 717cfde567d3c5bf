//go:build !nonvml && cgo
// +build !nonvml,cgo

package nvml

import (
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/emufront/gpucaps/internal/domain"
)

const vendorNVIDIA = "NVIDIA Corporation"

// NVMLBackend identifies the first NVIDIA device through NVML
type NVMLBackend struct {
	index int
}

// NewNVMLBackend probes the device at index (0 for the primary GPU)
func NewNVMLBackend(index int) *NVMLBackend {
	return &NVMLBackend{index: index}
}

func (b *NVMLBackend) Name() string {
	return "nvml"
}

func (b *NVMLBackend) Open(rel domain.Releaser) (domain.GraphicsContext, error) {
	ret := nvml.Init()
	if ret != nvml.SUCCESS {
		return nil, fmt.Errorf("NVML init failed: %v", nvml.ErrorString(ret))
	}
	rel.Defer("nvml", func() error {
		if ret := nvml.Shutdown(); ret != nvml.SUCCESS {
			return fmt.Errorf("NVML shutdown failed: %v", nvml.ErrorString(ret))
		}
		return nil
	})

	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return nil, fmt.Errorf("failed to get device count: %v", nvml.ErrorString(ret))
	}
	if b.index >= count {
		return nil, fmt.Errorf("device index %d out of range (%d devices)", b.index, count)
	}

	device, ret := nvml.DeviceGetHandleByIndex(b.index)
	if ret != nvml.SUCCESS {
		return nil, fmt.Errorf("failed to get device %d: %v", b.index, nvml.ErrorString(ret))
	}
	return &nvmlContext{device: device}, nil
}

type nvmlContext struct {
	device nvml.Device
}

func (c *nvmlContext) Renderer() (string, error) {
	name, ret := c.device.GetName()
	if ret != nvml.SUCCESS {
		return "", fmt.Errorf("failed to get device name: %v", nvml.ErrorString(ret))
	}
	return name, nil
}

func (c *nvmlContext) Vendor() (string, error) {
	return vendorNVIDIA, nil
}

// Extensions is empty: NVML has no notion of API extensions
func (c *nvmlContext) Extensions() (string, error) {
	return "", nil
}

// Compile-time interface check
var _ domain.GraphicsBackend = (*NVMLBackend)(nil)
