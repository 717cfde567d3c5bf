package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	errOut = &buf
	defer func() { errOut = os.Stderr }()

	PrintError("load config: missing renderer")

	assert.Equal(t, "\nError: load config: missing renderer\n", buf.String())
}
