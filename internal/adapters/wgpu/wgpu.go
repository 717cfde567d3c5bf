//go:build !nogpu && !cgo

// Package wgpu identifies the GPU through a transient Vulkan device opened
// with the pure Go wgpu HAL.
package wgpu

import (
	"errors"
	"fmt"

	"github.com/emufront/gpucaps/internal/domain"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// ErrNoAdapter is returned when the instance exposes no adapter
var ErrNoAdapter = errors.New("wgpu: no GPU adapter available")

// Backend opens instance, adapter and device, in that order
type Backend struct{}

func NewBackend() *Backend {
	return &Backend{}
}

func (b *Backend) Name() string {
	return "wgpu"
}

func (b *Backend) Open(rel domain.Releaser) (domain.GraphicsContext, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	rel.Defer("instance", func() error {
		instance.Destroy()
		return nil
	})

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return nil, ErrNoAdapter
	}
	selected := selectAdapter(adapters)

	// A device proves the adapter can actually host a context, the adapter
	// list alone also contains unusable entries.
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return nil, fmt.Errorf("open device: %w", err)
	}
	rel.Defer("device", func() error {
		openDev.Device.Destroy()
		return nil
	})

	return &adapterContext{info: selected.Info}, nil
}

// selectAdapter prefers real GPUs over software rasterizers
func selectAdapter(adapters []hal.ExposedAdapter) *hal.ExposedAdapter {
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			return &adapters[i]
		}
	}
	return &adapters[0]
}

type adapterContext struct {
	info gputypes.AdapterInfo
}

func (c *adapterContext) Renderer() (string, error) {
	return c.info.Name, nil
}

func (c *adapterContext) Vendor() (string, error) {
	return c.info.Vendor, nil
}

// Extensions is empty: Vulkan adapters report features, not a GL extension list
func (c *adapterContext) Extensions() (string, error) {
	return "", nil
}

// Compile-time interface check
var _ domain.GraphicsBackend = (*Backend)(nil)
