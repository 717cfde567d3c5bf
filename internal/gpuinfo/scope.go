package gpuinfo

import (
	"github.com/emufront/gpucaps/internal/domain"
	"github.com/emufront/gpucaps/internal/logger"
)

type release struct {
	name string
	fn   func() error
}

// scope releases registered resources in reverse order of registration
type scope struct {
	backend  string
	releases []release
}

var _ domain.Releaser = (*scope)(nil)

func newScope(backend string) *scope {
	return &scope{backend: backend}
}

func (s *scope) Defer(name string, fn func() error) {
	if fn == nil {
		return
	}
	s.releases = append(s.releases, release{name: name, fn: fn})
}

// Close runs every release even if an earlier one fails or panics
func (s *scope) Close() {
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.run(s.releases[i])
	}
	s.releases = nil
}

func (s *scope) run(r release) {
	defer func() {
		if p := recover(); p != nil {
			logger.Error("release_graphics_resource", map[string]interface{}{"backend": s.backend, "resource": r.name, "panic": p}, nil)
		}
	}()
	if err := r.fn(); err != nil {
		logger.Warn("release_graphics_resource", map[string]string{"backend": s.backend, "resource": r.name}, err)
	}
}
