package gpuinfo

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/emufront/gpucaps/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProber counts probes and optionally blocks until released
type countingProber struct {
	calls  atomic.Int32
	result domain.ProbeResult
	gate   chan struct{}
}

func (p *countingProber) Probe() domain.ProbeResult {
	p.calls.Add(1)
	if p.gate != nil {
		<-p.gate
	}
	return p.result
}

func TestCache_ProbesOnce(t *testing.T) {
	prober := &countingProber{result: domain.Detected(domain.Identity{Renderer: "Mali-G52", Vendor: "ARM"})}
	cache := NewCache(prober)

	assert.False(t, cache.Cached())
	first := cache.Get()
	second := cache.Get()

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), prober.calls.Load())
	assert.True(t, cache.Cached())
}

func TestCache_InvalidateReprobes(t *testing.T) {
	prober := &countingProber{result: domain.Detected(domain.Identity{Renderer: "Mali-G52", Vendor: "ARM"})}
	cache := NewCache(prober)

	cache.Get()
	cache.Invalidate()
	assert.False(t, cache.Cached())
	cache.Get()

	assert.Equal(t, int32(2), prober.calls.Load())
}

func TestCache_FailureIsCached(t *testing.T) {
	prober := &countingProber{result: domain.DetectionFailed(errors.New("no display"))}
	cache := NewCache(prober)

	for i := 0; i < 3; i++ {
		assert.Equal(t, domain.FailedIdentity(), cache.Get())
	}
	assert.Equal(t, int32(1), prober.calls.Load())
	assert.Equal(t, domain.ProbeFailed, cache.Result().Status)
}

func TestCache_ConcurrentFirstAccessProbesOnce(t *testing.T) {
	prober := &countingProber{
		result: domain.Detected(domain.Identity{Renderer: "Mali-G710", Vendor: "ARM"}),
		gate:   make(chan struct{}),
	}
	cache := NewCache(prober)

	const callers = 16
	results := make([]domain.Identity, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = cache.Get()
		}(i)
	}

	require.Eventually(t, func() bool { return prober.calls.Load() == 1 }, time.Second, time.Millisecond)
	close(prober.gate)
	wg.Wait()

	assert.Equal(t, int32(1), prober.calls.Load())
	for _, r := range results {
		assert.Equal(t, "Mali-G710", r.Renderer)
	}
}

func TestCache_NilProber(t *testing.T) {
	cache := NewCache(nil)
	res := cache.Result()
	assert.ErrorIs(t, res.Err, ErrNoBackend)
}
