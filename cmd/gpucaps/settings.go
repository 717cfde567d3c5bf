package main

import (
	"fmt"
	"strconv"

	"github.com/emufront/gpucaps/internal/cli"
	"github.com/emufront/gpucaps/internal/settings"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the hardware tweak toggles offered for this GPU",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		page, err := settings.BuildPage(a.inspector.Report(), a.store)
		if err != nil {
			return err
		}
		cli.PrintSettingsPage(page)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <true|false>",
	Short: "Change a hardware tweak toggle",
	Long: `Change a hardware tweak toggle. Only toggles supported by the
detected GPU can be changed.

Keys:
  ` + settings.KeyTileTransactionElimination + `
  ` + settings.KeyFrameCompression,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[1], err)
		}
		a, err := loadApp()
		if err != nil {
			return err
		}
		if err := settings.Apply(a.inspector.Report(), a.store, args[0], value); err != nil {
			return err
		}
		fmt.Printf("%s = %t\n", args[0], value)
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}
