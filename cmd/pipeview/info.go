package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"pipeview/internal/app"
	"pipeview/pkg/network"
)

var infoCmd = &cobra.Command{
	Use:   "info <file.geojson>",
	Short: "Display statistics about a network document",
	Long:  "Show primitive counts, layers, spatial bounds, total pipe length and recorded burial depths.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	doc, err := app.LoadDocument(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	container, bounds := network.Assemble(doc)
	if container == nil {
		fmt.Println("No data to display.")
		return
	}

	var tubes, arcs, disks int
	var totalLength float64
	minDepth := math.Inf(1)
	maxDepth := math.Inf(-1)
	perLayer := make(map[string]int)

	for _, p := range container.Primitives {
		perLayer[p.Layer]++
		switch shape := p.Shape.(type) {
		case *network.Tube:
			tubes++
			totalLength += shape.Length()
			start, end := network.SegmentDepths(p.Properties)
			minDepth = math.Min(minDepth, math.Min(start, end))
			maxDepth = math.Max(maxDepth, math.Max(start, end))
		case *network.ArcStroke:
			arcs++
		case *network.Disk:
			disks++
		}
	}

	fmt.Println("Network Information")
	fmt.Println("===================")
	fmt.Printf("File: %s\n\n", args[0])

	fmt.Println("Primitives:")
	fmt.Printf("  Pipe segments: %d\n", tubes)
	fmt.Printf("  Arcs: %d\n", arcs)
	fmt.Printf("  Circles: %d\n", disks)
	fmt.Printf("  Total pipe length: %.2f m\n\n", totalLength)

	fmt.Println("Layers:")
	for _, layer := range container.Layers() {
		name := layer
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("  %s: %d\n", name, perLayer[layer])
	}
	fmt.Println()

	fmt.Println("Bounds:")
	fmt.Printf("  Min: (%.2f, %.2f)\n", bounds.Min.X, bounds.Min.Z)
	fmt.Printf("  Max: (%.2f, %.2f)\n", bounds.Max.X, bounds.Max.Z)
	fmt.Printf("  Extent: %.2f x %.2f\n", bounds.Size().X, bounds.Size().Z)

	if tubes > 0 {
		fmt.Println()
		fmt.Println("Recorded depths:")
		fmt.Printf("  Min: %.2f m\n", minDepth)
		fmt.Printf("  Max: %.2f m\n", maxDepth)
	}
}
