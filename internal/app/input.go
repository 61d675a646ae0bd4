package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes user input
func (app *App) handleInput() {
	if rl.IsKeyPressed(rl.KeyHome) || rl.IsKeyPressed(rl.KeyR) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyG) {
		app.View.showGrid = !app.View.showGrid
	}
	if rl.IsKeyPressed(rl.KeyI) {
		app.View.showLegend = !app.View.showLegend
	}

	// L cycles layer solo mode: all layers, then each layer in turn
	if rl.IsKeyPressed(rl.KeyL) && len(app.Scene.layers) > 0 {
		app.View.layerSolo++
		if app.View.layerSolo >= len(app.Scene.layers) {
			app.View.layerSolo = -1
		}
	}

	// Tab cycles the selected primitive, Escape clears it
	if rl.IsKeyPressed(rl.KeyTab) {
		app.Interaction.selected++
		if app.Interaction.selected >= app.Scene.container.Len() {
			app.Interaction.selected = -1
		}
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		app.Interaction.selected = -1
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.mouseDownPos = rl.GetMousePosition()
		shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		app.Interaction.isPanning = shiftPressed
	}

	if (rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Interaction.isPanning) ||
		rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.doPan(delta)
		}
	} else if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		app.Camera.angleY -= delta.X * 0.005
		app.Camera.angleX += delta.Y * 0.005
		if app.Camera.angleX > 1.55 {
			app.Camera.angleX = 1.55
		}
		if app.Camera.angleX < -1.55 {
			app.Camera.angleX = -1.55
		}
	}

	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		app.Camera.distance -= wheel * app.Camera.distance * 0.1
		minDist := app.Scene.size * 0.01
		if app.Camera.distance < minDist {
			app.Camera.distance = minDist
		}
	}
}
