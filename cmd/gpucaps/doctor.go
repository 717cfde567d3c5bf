package main

import (
	"fmt"

	"github.com/emufront/gpucaps/internal/cli"
	"github.com/emufront/gpucaps/internal/config"
	"github.com/emufront/gpucaps/internal/setup"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the graphics stack the probe backends depend on",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(config.ResolvePath(configPath))
		if err != nil {
			return err
		}
		cli.PrintHeader("Graphics stack")
		result := setup.RunPreflight(setup.DefaultPaths(cfg.Platform.BuildProp))
		result.PrintStatus()
		fmt.Printf("  Configured backend: %s\n", cfg.Probe.Backend)
		if missing := result.MissingComponents(); len(missing) > 0 {
			fmt.Printf("\n%d component(s) missing, probing may fall back to %q\n", len(missing), "Detection Failed")
		}
		return nil
	},
}
