// Package static provides a graphics backend that reports fixed strings.
// It pins the identity on hosts where the real stack is emulated and doubles
// as the backend for tests.
package static

import (
	"fmt"
	"sync"

	"github.com/emufront/gpucaps/internal/domain"
)

// stages acquired by Open, in order
var stages = []string{"display", "surface", "context"}

// Backend reports fixed identity strings
type Backend struct {
	Renderer   string
	Vendor     string
	Extensions string

	// FailAt makes Open fail when it reaches the named stage
	FailAt string
	// QueryErr is returned by every context query
	QueryErr error
	// PanicOnQuery makes the renderer query panic
	PanicOnQuery bool

	mu       sync.Mutex
	opens    int
	released []string
}

func NewBackend(renderer, vendor, extensions string) *Backend {
	return &Backend{Renderer: renderer, Vendor: vendor, Extensions: extensions}
}

func (b *Backend) Name() string {
	return "static"
}

func (b *Backend) Open(rel domain.Releaser) (domain.GraphicsContext, error) {
	b.mu.Lock()
	b.opens++
	b.mu.Unlock()

	for _, stage := range stages {
		if stage == b.FailAt {
			return nil, fmt.Errorf("acquire %s: unavailable", stage)
		}
		stage := stage
		rel.Defer(stage, func() error {
			b.mu.Lock()
			b.released = append(b.released, stage)
			b.mu.Unlock()
			return nil
		})
	}
	return &staticContext{b: b}, nil
}

// Opens returns how many times Open was called
func (b *Backend) Opens() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.opens
}

// Released returns the stages released so far, in release order
func (b *Backend) Released() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.released...)
}

type staticContext struct {
	b *Backend
}

func (c *staticContext) Renderer() (string, error) {
	if c.b.PanicOnQuery {
		panic("renderer query crashed")
	}
	return c.b.Renderer, c.b.QueryErr
}

func (c *staticContext) Vendor() (string, error) {
	return c.b.Vendor, c.b.QueryErr
}

func (c *staticContext) Extensions() (string, error) {
	return c.b.Extensions, c.b.QueryErr
}

// Compile-time interface check
var _ domain.GraphicsBackend = (*Backend)(nil)
