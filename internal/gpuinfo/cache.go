package gpuinfo

import (
	"sync"

	"github.com/emufront/gpucaps/internal/domain"
)

// Cache memoizes the first probe result. The mutex is held for the duration
// of the probe so concurrent first callers wait for one probe instead of
// racing their own.
type Cache struct {
	mu     sync.Mutex
	prober domain.Prober
	result *domain.ProbeResult
}

// NewCache creates an empty cache; nothing is probed until the first Get
func NewCache(prober domain.Prober) *Cache {
	return &Cache{prober: prober}
}

// Get returns the cached identity, probing on first use
func (c *Cache) Get() domain.Identity {
	return c.Result().Identity
}

// Result returns the cached probe result including its status
func (c *Cache) Result() domain.ProbeResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.result == nil {
		var r domain.ProbeResult
		if c.prober == nil {
			r = domain.DetectionFailed(ErrNoBackend)
		} else {
			r = c.prober.Probe()
		}
		c.result = &r
	}
	return *c.result
}

// Invalidate drops the cached result; the next Get probes again
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.result = nil
	c.mu.Unlock()
}

// Cached reports whether a result is stored, without probing
func (c *Cache) Cached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result != nil
}
