package wgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackend_Name(t *testing.T) {
	assert.Equal(t, "wgpu", NewBackend().Name())
}
