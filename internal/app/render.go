package app

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"pipeview/pkg/geometry"
	"pipeview/pkg/network"
)

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// layerVisible applies the solo filter
func (app *App) layerVisible(layer string) bool {
	if app.View.layerSolo < 0 || app.View.layerSolo >= len(app.Scene.layers) {
		return true
	}
	return layer == app.Scene.layers[app.View.layerSolo]
}

// drawGround draws a reference grid on the ground plane under the network
func (app *App) drawGround() {
	bounds := app.Scene.bounds
	step := niceStep(float64(app.Scene.size) / 20)

	minX := math.Floor(bounds.Min.X/step) * step
	maxX := math.Ceil(bounds.Max.X/step) * step
	minZ := math.Floor(bounds.Min.Z/step) * step
	maxZ := math.Ceil(bounds.Max.Z/step) * step

	gridColor := rl.NewColor(60, 65, 75, 255)
	for x := minX; x <= maxX; x += step {
		rl.DrawLine3D(
			rl.Vector3{X: float32(x), Y: 0, Z: float32(minZ)},
			rl.Vector3{X: float32(x), Y: 0, Z: float32(maxZ)},
			gridColor,
		)
	}
	for z := minZ; z <= maxZ; z += step {
		rl.DrawLine3D(
			rl.Vector3{X: float32(minX), Y: 0, Z: float32(z)},
			rl.Vector3{X: float32(maxX), Y: 0, Z: float32(z)},
			gridColor,
		)
	}
}

// niceStep rounds a raw spacing to a 1/2/5 power-of-ten step
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	power := math.Pow(10, math.Floor(math.Log10(raw)))
	normalized := raw / power
	switch {
	case normalized < 1.5:
		return power
	case normalized < 3.5:
		return 2 * power
	case normalized < 7.5:
		return 5 * power
	}
	return 10 * power
}

// drawPrimitives renders the container. Opaque shapes go first, translucent
// tubes last so they blend over the grid and each other.
func (app *App) drawPrimitives() {
	for i, p := range app.Scene.container.Primitives {
		if !app.layerVisible(p.Layer) {
			continue
		}
		switch shape := p.Shape.(type) {
		case *network.ArcStroke:
			drawArcStroke(shape, toColor(p.Color))
		case *network.Disk:
			drawDisk(shape, toColor(p.Color))
		}
		if i == app.Interaction.selected {
			app.drawSelection(p)
		}
	}

	for _, p := range app.Scene.container.Primitives {
		if !app.layerVisible(p.Layer) {
			continue
		}
		if tube, ok := p.Shape.(*network.Tube); ok {
			rl.DrawCylinderEx(
				toRaylib(tube.Start), toRaylib(tube.End),
				float32(tube.Radius), float32(tube.Radius),
				24, toColor(p.Color),
			)
		}
	}
}

// drawArcStroke renders the sampled arc as chained thin cylinders so the
// stroke keeps its width at any zoom
func drawArcStroke(arc *network.ArcStroke, col rl.Color) {
	half := float32(arc.Width / 2)
	for i := 0; i+1 < len(arc.Points); i++ {
		rl.DrawCylinderEx(toRaylib(arc.Points[i]), toRaylib(arc.Points[i+1]), half, half, 6, col)
	}
}

func drawDisk(disk *network.Disk, col rl.Color) {
	pos := toRaylib(disk.Center)
	rl.DrawCylinder(pos, float32(disk.Radius), float32(disk.Radius), 0.005, int32(disk.Sides), col)
}

// drawSelection outlines the selected primitive
func (app *App) drawSelection(p *network.Primitive) {
	highlight := rl.Yellow
	switch shape := p.Shape.(type) {
	case *network.Tube:
		rl.DrawCylinderWiresEx(
			toRaylib(shape.Start), toRaylib(shape.End),
			float32(shape.Radius*1.05), float32(shape.Radius*1.05),
			12, highlight,
		)
	case *network.ArcStroke:
		for i := 0; i+1 < len(shape.Points); i++ {
			rl.DrawLine3D(toRaylib(shape.Points[i]), toRaylib(shape.Points[i+1]), highlight)
		}
	case *network.Disk:
		rl.DrawCircle3D(toRaylib(shape.Center), float32(shape.Radius*1.05),
			rl.Vector3{X: 1, Y: 0, Z: 0}, 90, highlight)
	}
}

// drawOverlay draws the 2D UI: status line, layer legend and the selected
// primitive's attributes
func (app *App) drawOverlay() {
	textColor := rl.RayWhite
	y := int32(10)

	rl.DrawText(fmt.Sprintf("%s  |  %d primitives", app.sourceFile, app.Scene.container.Len()),
		10, y, 18, textColor)
	y += 24

	soloLabel := "all layers"
	if app.View.layerSolo >= 0 && app.View.layerSolo < len(app.Scene.layers) {
		soloLabel = labelOrUnnamed(app.Scene.layers[app.View.layerSolo])
	}
	rl.DrawText("Layer [L]: "+soloLabel, 10, y, 16, textColor)
	y += 26

	if app.View.showLegend {
		y = app.drawLegend(y)
	}

	rl.DrawText("drag: orbit  shift+drag: pan  wheel: zoom  Tab: select  T: top  G: grid  R: reset  Q: quit",
		10, int32(rl.GetScreenHeight())-28, 14, rl.Gray)

	if app.Interaction.selected >= 0 && app.Interaction.selected < app.Scene.container.Len() {
		app.drawInfoPanel(app.Scene.container.Primitives[app.Interaction.selected])
	}
}

func labelOrUnnamed(layer string) string {
	if layer == "" {
		return "(unnamed)"
	}
	return layer
}

func (app *App) drawLegend(y int32) int32 {
	for _, layer := range app.Scene.layers {
		var sample color.RGBA
		for _, p := range app.Scene.container.Primitives {
			if p.Layer == layer {
				sample = p.Color
				break
			}
		}
		rl.DrawRectangle(10, y, 14, 14, rl.NewColor(sample.R, sample.G, sample.B, 255))
		rl.DrawText(labelOrUnnamed(layer), 30, y, 14, rl.LightGray)
		y += 20
	}
	return y + 6
}

// drawInfoPanel shows the selected primitive's provenance and attribute bag
func (app *App) drawInfoPanel(p *network.Primitive) {
	lines := []string{describeShape(p)}
	if p.Layer != "" {
		lines = append(lines, "layer: "+p.Layer)
	}
	if p.Endpoints != nil {
		start, end := network.SegmentDepths(p.Properties)
		lines = append(lines, fmt.Sprintf("depth: %.2f - %.2f", start, end))
	}

	keys := make([]string, 0, len(p.Properties))
	for k := range p.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", k, p.Properties[k]))
	}

	panelWidth := int32(320)
	lineHeight := int32(20)
	panelHeight := int32(len(lines))*lineHeight + 20
	x := int32(rl.GetScreenWidth()) - panelWidth - 10

	rl.DrawRectangle(x, 10, panelWidth, panelHeight, rl.NewColor(0, 0, 0, 180))
	ty := int32(20)
	for _, line := range lines {
		rl.DrawText(line, x+12, ty, 14, rl.RayWhite)
		ty += lineHeight
	}
}

func describeShape(p *network.Primitive) string {
	switch shape := p.Shape.(type) {
	case *network.Tube:
		return fmt.Sprintf("pipe segment  r=%.3fm  len=%.2fm", shape.Radius, shape.Length())
	case *network.ArcStroke:
		return fmt.Sprintf("arc  r=%.3fm", p.Arc.Radius)
	case *network.Disk:
		return fmt.Sprintf("circle  r=%.3fm", shape.Radius)
	}
	return "primitive"
}
