package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "build.prop")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ParsesBuildProp(t *testing.T) {
	path := writeProp(t, `# begin build properties
ro.build.id=UP1A.231005.007
ro.build.version.sdk=34
ro.build.version.release=14
ro.hardware.gralloc=ranchu
`)

	info, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 34, info.SDKLevel)
	assert.Equal(t, "14", info.Release)
}

func TestLoad_MissingFile(t *testing.T) {
	info, err := Load(filepath.Join(t.TempDir(), "nope.prop"))
	require.NoError(t, err)
	assert.Equal(t, Info{}, info)
}

func TestLoad_EmptyPath(t *testing.T) {
	info, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Info{}, info)
}

func TestLoad_BadSDK(t *testing.T) {
	path := writeProp(t, "ro.build.version.sdk=tiramisu\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestOverride(t *testing.T) {
	base := Info{SDKLevel: 23, Release: "6.0"}
	assert.Equal(t, Info{SDKLevel: 30, Release: "6.0"}, base.Override(Info{SDKLevel: 30}))
	assert.Equal(t, base, base.Override(Info{}))
}

func TestSupportsVulkan(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want bool
	}{
		{name: "unknown", info: Info{}, want: false},
		{name: "marshmallow", info: Info{SDKLevel: 23}, want: false},
		{name: "nougat", info: Info{SDKLevel: 24}, want: true},
		{name: "sdk wins over release", info: Info{SDKLevel: 23, Release: "14"}, want: false},
		{name: "release only new", info: Info{Release: "7.0"}, want: true},
		{name: "release only major", info: Info{Release: "14"}, want: true},
		{name: "release only old", info: Info{Release: "6.0.1"}, want: false},
		{name: "release garbage", info: Info{Release: "UpsideDownCake"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.SupportsVulkan())
		})
	}
}
