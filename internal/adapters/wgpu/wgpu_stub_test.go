//go:build nogpu || cgo

package wgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type noopReleaser struct{ n int }

func (r *noopReleaser) Defer(name string, release func() error) { r.n++ }

func TestStubBackend_OpenFails(t *testing.T) {
	rel := &noopReleaser{}
	ctx, err := NewBackend().Open(rel)

	assert.Error(t, err)
	assert.Nil(t, ctx)
	assert.Zero(t, rel.n)
}
