package main

import (
	"fmt"
	"os"

	"github.com/emufront/gpucaps/internal/adapters/nvml"
	"github.com/emufront/gpucaps/internal/adapters/static"
	"github.com/emufront/gpucaps/internal/adapters/wgpu"
	"github.com/emufront/gpucaps/internal/cli"
	"github.com/emufront/gpucaps/internal/config"
	"github.com/emufront/gpucaps/internal/domain"
	"github.com/emufront/gpucaps/internal/gpuinfo"
	"github.com/emufront/gpucaps/internal/logger"
	"github.com/emufront/gpucaps/internal/platform"
	"github.com/emufront/gpucaps/internal/settings"
	"github.com/spf13/cobra"
)

// Version is the current version of gpucaps
var Version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "gpucaps",
	Short: "Identify the GPU and report its hardware tweak capabilities",
	Long: `gpucaps opens a short-lived graphics context, reads the renderer,
vendor and extension strings and classifies the GPU architecture.

The result decides which hardware tweaks (tile transaction elimination,
frame buffer compression) the emulator settings can offer.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $"+config.EnvConfigPath+" or "+config.DefaultConfigPath+")")
	rootCmd.AddCommand(showCmd, classifyCmd, settingsCmd, serveCmd, doctorCmd)
}

// app holds the components shared by the subcommands
type app struct {
	cfg       config.Config
	inspector *gpuinfo.Inspector
	store     settings.Store
}

func newBackend(cfg config.Config) domain.GraphicsBackend {
	switch cfg.Probe.Backend {
	case config.BackendNVML:
		return nvml.NewNVMLBackend(cfg.Probe.DeviceIndex)
	case config.BackendStatic:
		return static.NewBackend(cfg.Static.Renderer, cfg.Static.Vendor, cfg.Static.Extensions)
	default:
		return wgpu.NewBackend()
	}
}

func loadApp() (*app, error) {
	cfg, err := config.Load(config.ResolvePath(configPath))
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return nil, fmt.Errorf("configure logger: %w", err)
	}

	info, err := platform.Load(cfg.Platform.BuildProp)
	if err != nil {
		// platform gating degrades to "unknown", same as a missing file
		logger.Warn("load_platform_info", cfg.Platform.BuildProp, err)
	}
	info = info.Override(platform.Info{SDKLevel: cfg.Platform.SDKLevel, Release: cfg.Platform.Release})

	backend := newBackend(cfg)
	cache := gpuinfo.NewCache(gpuinfo.NewContextProber(backend))
	inspector := gpuinfo.NewInspector(cache, info,
		gpuinfo.WithBackendName(backend.Name()),
		gpuinfo.WithCompressionExtension(cfg.Probe.CompressionExtension),
	)

	return &app{
		cfg:       cfg,
		inspector: inspector,
		store:     settings.NewIniStore(cfg.Settings.Path),
	}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
