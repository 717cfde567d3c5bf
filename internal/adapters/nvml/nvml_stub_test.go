//go:build nonvml || !cgo
// +build nonvml !cgo

package nvml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type noopReleaser struct{ n int }

func (r *noopReleaser) Defer(name string, release func() error) { r.n++ }

func TestStubNVMLBackend_OpenFails(t *testing.T) {
	rel := &noopReleaser{}
	ctx, err := NewNVMLBackend(0).Open(rel)

	assert.Error(t, err)
	assert.Nil(t, ctx)
	assert.Zero(t, rel.n)
}
