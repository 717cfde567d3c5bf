package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/emufront/gpucaps/internal/gpuinfo"
	"github.com/go-ini/ini"
)

const (
	// EnvConfigPath overrides the default config location
	EnvConfigPath = "GPUCAPS_CONFIG"
	// DefaultConfigPath is used when neither flag nor env is set
	DefaultConfigPath = "/etc/gpucaps.conf"

	BackendWgpu   = "wgpu"
	BackendNVML   = "nvml"
	BackendStatic = "static"
)

// LogConfig holds logger settings
type LogConfig struct {
	// Level is a logrus level name. Default: "info"
	Level string
	// Format is "text" or "json". Default: "text"
	Format string
}

// ProbeConfig selects the graphics backend
type ProbeConfig struct {
	// Backend is one of wgpu, nvml, static. Default: "wgpu"
	Backend string
	// DeviceIndex selects the NVML device. Default: 0
	DeviceIndex int
	// CompressionExtension is the extension that signals framebuffer compression
	CompressionExtension string
}

// StaticConfig pins the identity strings for the static backend
type StaticConfig struct {
	Renderer   string
	Vendor     string
	Extensions string
}

// PlatformConfig locates the platform release information
type PlatformConfig struct {
	// BuildProp is an Android build.prop. Default: "/system/build.prop"
	BuildProp string
	// SDKLevel and Release override values read from BuildProp
	SDKLevel int
	Release  string
}

// SettingsConfig locates the preference file
type SettingsConfig struct {
	// Path of the ini file holding the hardware tweak toggles
	Path string
}

// APIConfig holds the local HTTP API settings
type APIConfig struct {
	// Listen address. Default: "127.0.0.1:18090"
	Listen string
}

// Config is the whole gpucaps configuration
type Config struct {
	Log      LogConfig
	Probe    ProbeConfig
	Static   StaticConfig
	Platform PlatformConfig
	Settings SettingsConfig
	API      APIConfig
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Probe: ProbeConfig{
			Backend:              BackendWgpu,
			CompressionExtension: gpuinfo.DefaultCompressionExtension,
		},
		Platform: PlatformConfig{BuildProp: "/system/build.prop"},
		Settings: SettingsConfig{Path: defaultSettingsPath()},
		API:      APIConfig{Listen: "127.0.0.1:18090"},
	}
}

func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".gpucaps", "settings.ini")
	}
	return filepath.Join(dir, "gpucaps", "settings.ini")
}

// ResolvePath picks the config path: explicit flag, then env, then default
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	return DefaultConfigPath
}

// Load reads path on top of DefaultConfig. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	file, err := ini.LoadSources(ini.LoadOptions{Loose: true}, path)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	logSection := file.Section("log")
	cfg.Log.Level = logSection.Key("level").MustString(cfg.Log.Level)
	cfg.Log.Format = logSection.Key("format").MustString(cfg.Log.Format)

	probe := file.Section("probe")
	cfg.Probe.Backend = probe.Key("backend").MustString(cfg.Probe.Backend)
	cfg.Probe.DeviceIndex = probe.Key("device_index").MustInt(cfg.Probe.DeviceIndex)
	cfg.Probe.CompressionExtension = probe.Key("compression_extension").MustString(cfg.Probe.CompressionExtension)

	static := file.Section("static")
	cfg.Static.Renderer = static.Key("renderer").String()
	cfg.Static.Vendor = static.Key("vendor").String()
	cfg.Static.Extensions = static.Key("extensions").String()

	plat := file.Section("platform")
	cfg.Platform.BuildProp = plat.Key("build_prop").MustString(cfg.Platform.BuildProp)
	cfg.Platform.SDKLevel = plat.Key("sdk_level").MustInt(0)
	cfg.Platform.Release = plat.Key("release").String()

	cfg.Settings.Path = file.Section("settings").Key("path").MustString(cfg.Settings.Path)
	cfg.API.Listen = file.Section("api").Key("listen").MustString(cfg.API.Listen)

	return cfg, cfg.Validate()
}

// Validate checks that the config is usable
func (c *Config) Validate() error {
	switch c.Probe.Backend {
	case BackendWgpu, BackendNVML:
	case BackendStatic:
		if c.Static.Renderer == "" {
			return errors.New("static backend requires [static] renderer")
		}
	default:
		return fmt.Errorf("unknown probe backend %q", c.Probe.Backend)
	}
	if c.Probe.DeviceIndex < 0 {
		return fmt.Errorf("device_index must not be negative, got %d", c.Probe.DeviceIndex)
	}
	if c.Platform.SDKLevel < 0 {
		return fmt.Errorf("sdk_level must not be negative, got %d", c.Platform.SDKLevel)
	}
	if c.Settings.Path == "" {
		return errors.New("settings path is required")
	}
	return nil
}
