package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pipeview/internal/app"
	"pipeview/pkg/network"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <file.geojson>",
	Short: "Re-export a network document as GeoJSON",
	Long: `Assemble a network document and write it back out as GeoJSON.
The round trip normalizes polylines into per-segment LineString features
while preserving every attribute verbatim.`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) {
	doc, err := app.LoadDocument(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	container, _ := network.Assemble(doc)
	if container == nil {
		fmt.Fprintln(os.Stderr, "No data to export.")
		os.Exit(1)
	}

	raw, err := json.MarshalIndent(network.ExportGeoJSON(container), "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if exportOutput == "" {
		fmt.Println(string(raw))
		return
	}
	if err := os.WriteFile(exportOutput, raw, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d primitives to %s\n", container.Len(), exportOutput)
}
