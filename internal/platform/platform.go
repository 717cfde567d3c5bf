// Package platform reads the Android release information that gates
// API-level features.
package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-ini/ini"
)

const (
	keySDK     = "ro.build.version.sdk"
	keyRelease = "ro.build.version.release"

	// VulkanMinSDK is API level 24 (Android 7.0), the first release with Vulkan
	VulkanMinSDK = 24
)

var vulkanMinRelease = mustConstraint(">= 7.0")

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// Info is the platform version. Zero values mean unknown.
type Info struct {
	SDKLevel int    `json:"sdk_level"`
	Release  string `json:"release"`
}

// Load reads a build.prop style key=value file. A missing file yields a zero
// Info and no error since most desktop hosts have none.
func Load(path string) (Info, error) {
	var info Info
	if path == "" {
		return info, nil
	}
	cfg, err := ini.LoadSources(ini.LoadOptions{
		Loose:                   true,
		IgnoreInlineComment:     true,
		SkipUnrecognizableLines: true,
	}, path)
	if err != nil {
		return info, fmt.Errorf("load %s: %w", path, err)
	}

	section := cfg.Section("")
	info.Release = strings.TrimSpace(section.Key(keyRelease).String())
	if sdk := strings.TrimSpace(section.Key(keySDK).String()); sdk != "" {
		level, err := strconv.Atoi(sdk)
		if err != nil {
			return info, fmt.Errorf("parse %s=%q: %w", keySDK, sdk, err)
		}
		info.SDKLevel = level
	}
	return info, nil
}

// Override replaces fields that are set in o
func (i Info) Override(o Info) Info {
	if o.SDKLevel > 0 {
		i.SDKLevel = o.SDKLevel
	}
	if o.Release != "" {
		i.Release = o.Release
	}
	return i
}

// SupportsVulkan reports whether the platform release ships Vulkan. The API
// level wins when known; otherwise the release string is compared.
func (i Info) SupportsVulkan() bool {
	if i.SDKLevel > 0 {
		return i.SDKLevel >= VulkanMinSDK
	}
	if i.Release == "" {
		return false
	}
	v, err := semver.NewVersion(i.Release)
	if err != nil {
		return false
	}
	return vulkanMinRelease.Check(v)
}
