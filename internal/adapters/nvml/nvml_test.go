package nvml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNVMLBackend_Name(t *testing.T) {
	assert.Equal(t, "nvml", NewNVMLBackend(0).Name())
}
