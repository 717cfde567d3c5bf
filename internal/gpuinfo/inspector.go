package gpuinfo

import (
	"github.com/emufront/gpucaps/internal/domain"
	"github.com/emufront/gpucaps/internal/platform"
)

// Report is the capability summary shown to users
type Report struct {
	Backend                            string        `json:"backend"`
	Status                             string        `json:"status"`
	Renderer                           string        `json:"renderer"`
	Vendor                             string        `json:"vendor"`
	Extensions                         string        `json:"extensions"`
	VendorClass                        Vendor        `json:"vendor_class"`
	Architecture                       Architecture  `json:"architecture"`
	Codename                           string        `json:"codename"`
	SupportsTileTransactionElimination bool          `json:"supports_tile_transaction_elimination"`
	SupportsFrameCompression           bool          `json:"supports_frame_compression"`
	SupportsModernGraphicsAPI          bool          `json:"supports_modern_graphics_api"`
	Platform                           platform.Info `json:"platform"`
}

// Inspector answers capability queries against the cached identity
type Inspector struct {
	cache                *Cache
	backend              string
	platform             platform.Info
	compressionExtension string
}

// InspectorOption customizes an Inspector
type InspectorOption func(*Inspector)

// WithCompressionExtension overrides DefaultCompressionExtension
func WithCompressionExtension(token string) InspectorOption {
	return func(i *Inspector) {
		i.compressionExtension = token
	}
}

// WithBackendName labels reports with the backend that produced them
func WithBackendName(name string) InspectorOption {
	return func(i *Inspector) {
		i.backend = name
	}
}

func NewInspector(cache *Cache, info platform.Info, opts ...InspectorOption) *Inspector {
	i := &Inspector{
		cache:                cache,
		platform:             info,
		compressionExtension: DefaultCompressionExtension,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Inspector) Identity() domain.Identity {
	return i.cache.Get()
}

func (i *Inspector) Vendor() Vendor {
	return VendorOf(i.Identity())
}

func (i *Inspector) Architecture() Architecture {
	return Classify(i.Identity().Renderer)
}

func (i *Inspector) SupportsTileTransactionElimination() bool {
	return SupportsTileTransactionElimination(i.Identity())
}

func (i *Inspector) SupportsFrameCompression() bool {
	return SupportsFrameCompression(i.Identity(), i.compressionExtension)
}

func (i *Inspector) SupportsModernGraphicsAPI() bool {
	return SupportsModernGraphicsAPI(i.platform)
}

// Report builds the full summary from a single cache read
func (i *Inspector) Report() Report {
	res := i.cache.Result()
	id := res.Identity
	arch := Classify(id.Renderer)
	return Report{
		Backend:                            i.backend,
		Status:                             res.Status.String(),
		Renderer:                           id.Renderer,
		Vendor:                             id.Vendor,
		Extensions:                         id.Extensions,
		VendorClass:                        VendorOf(id),
		Architecture:                       arch,
		Codename:                           arch.Codename(),
		SupportsTileTransactionElimination: arch.SupportsTileTransactionElimination(),
		SupportsFrameCompression:           SupportsFrameCompression(id, i.compressionExtension),
		SupportsModernGraphicsAPI:          SupportsModernGraphicsAPI(i.platform),
		Platform:                           i.platform,
	}
}

// Reprobe invalidates the cache and returns a fresh report
func (i *Inspector) Reprobe() Report {
	i.cache.Invalidate()
	return i.Report()
}
