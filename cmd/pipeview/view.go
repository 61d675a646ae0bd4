package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pipeview/internal/app"
)

var viewCmd = &cobra.Command{
	Use:   "view <file.geojson>",
	Short: "Open a network in the interactive 3D viewer",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := app.Run(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
