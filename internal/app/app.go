// Package app implements the interactive 3D viewer for assembled utility
// networks. It renders the primitives produced by pkg/network; all domain
// logic stays in that package.
package app

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"pipeview/pkg/network"
)

// LoadDocument reads and decodes a GeoJSON file into the value Assemble
// expects
func LoadDocument(path string) (interface{}, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Run loads a GeoJSON file, assembles the network and enters the viewer loop
func Run(path string) error {
	doc, err := LoadDocument(path)
	if err != nil {
		return err
	}

	container, bounds := network.Assemble(doc)
	if container == nil {
		fmt.Println("No data to display.")
		return nil
	}

	app := &App{sourceFile: path}
	app.Scene.container = container
	app.Scene.bounds = *bounds
	app.Scene.layers = container.Layers()
	app.View.layerSolo = -1
	app.View.showGrid = true
	app.View.showLegend = true
	app.Interaction.selected = -1

	rl.InitWindow(1400, 900, "pipeview - "+path)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyQ)

	app.setupCamera()

	for !rl.WindowShouldClose() {
		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		if app.View.showGrid {
			app.drawGround()
		}
		app.drawPrimitives()
		rl.EndMode3D()

		app.drawOverlay()
		rl.EndDrawing()
	}

	return nil
}

// setupCamera frames the whole network
func (app *App) setupCamera() {
	center := app.Scene.bounds.Center()
	size := app.Scene.bounds.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim == 0 {
		maxDim = 1
	}

	app.Scene.center = rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)}
	app.Scene.size = float32(maxDim)

	app.Camera.distance = float32(maxDim * 1.5)
	app.Camera.angleX = 0.6
	app.Camera.angleY = 0.4
	app.Camera.defaultDist = app.Camera.distance
	app.Camera.defaultAngleX = app.Camera.angleX
	app.Camera.defaultAngleY = app.Camera.angleY
	app.Camera.target = app.Scene.center

	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 0, Z: app.Camera.distance},
		Target:     app.Camera.target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}
