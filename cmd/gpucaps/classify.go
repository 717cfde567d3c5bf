package main

import (
	"github.com/emufront/gpucaps/internal/cli"
	"github.com/emufront/gpucaps/internal/gpuinfo"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <renderer>...",
	Short: "Classify renderer strings without touching the GPU",
	Long: `Classify one or more renderer strings into an architecture family.

Examples:
  gpucaps classify "Mali-G710 MC10"
  gpucaps classify "Mali-450 MP" "Mali-T880" "Adreno 640"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, renderer := range args {
			cli.PrintClassification(renderer, gpuinfo.Classify(renderer))
		}
	},
}
