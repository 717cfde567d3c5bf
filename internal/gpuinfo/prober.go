package gpuinfo

import (
	"errors"
	"fmt"

	"github.com/emufront/gpucaps/internal/domain"
	"github.com/emufront/gpucaps/internal/logger"
)

// ErrNoBackend is the failure cause when the prober has nothing to open
var ErrNoBackend = errors.New("no graphics backend configured")

// ContextProber reads the identity strings from a transient graphics context
type ContextProber struct {
	backend domain.GraphicsBackend
}

var _ domain.Prober = (*ContextProber)(nil)

// NewContextProber creates a prober on top of backend
func NewContextProber(backend domain.GraphicsBackend) *ContextProber {
	return &ContextProber{backend: backend}
}

// Probe never fails: any error or panic while the context is open turns into
// the detection-failed result after all acquired resources are released.
func (p *ContextProber) Probe() domain.ProbeResult {
	if p.backend == nil {
		return domain.DetectionFailed(ErrNoBackend)
	}
	name := p.backend.Name()

	id, err := p.query()
	if err != nil {
		logger.Warn("probe_graphics_context", map[string]string{"backend": name}, err)
		return domain.DetectionFailed(err)
	}
	logger.Info("probe_graphics_context", map[string]string{
		"backend":  name,
		"renderer": id.Renderer,
		"vendor":   id.Vendor,
	})
	return domain.Detected(id)
}

func (p *ContextProber) query() (id domain.Identity, err error) {
	s := newScope(p.backend.Name())
	defer s.Close()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("graphics backend panicked: %v", r)
		}
	}()

	ctx, err := p.backend.Open(s)
	if err != nil {
		return id, fmt.Errorf("open context: %w", err)
	}
	if ctx == nil {
		return id, errors.New("open context: backend returned no context")
	}

	renderer, err := ctx.Renderer()
	if err != nil {
		return id, fmt.Errorf("query renderer: %w", err)
	}
	vendor, err := ctx.Vendor()
	if err != nil {
		return id, fmt.Errorf("query vendor: %w", err)
	}
	extensions, err := ctx.Extensions()
	if err != nil {
		return id, fmt.Errorf("query extensions: %w", err)
	}

	return domain.Identity{
		Renderer:   orUnknown(renderer),
		Vendor:     orUnknown(vendor),
		Extensions: extensions,
	}, nil
}

func orUnknown(s string) string {
	if s == "" {
		return domain.UnknownValue
	}
	return s
}
