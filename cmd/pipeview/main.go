package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pipeview/version"
)

var rootCmd = &cobra.Command{
	Use:   "pipeview",
	Short: "3D viewer and editor for underground utility networks",
	Long: `pipeview renders underground utility network data (pipes, valves, arcs)
from GeoJSON into an interactive 3D scene and re-exports edited networks.`,
	Version: version.Version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
