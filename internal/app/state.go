package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"pipeview/pkg/geometry"
	"pipeview/pkg/network"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3
	defaultDist   float32
	defaultAngleX float32
	defaultAngleY float32
}

// SceneData holds the assembled network and its derived info
type SceneData struct {
	container *network.Container
	bounds    geometry.BoundingBox
	center    rl.Vector3
	size      float32
	layers    []string
}

// ViewSettings holds display settings
type ViewSettings struct {
	showGrid   bool
	layerSolo  int // -1 = show all layers, otherwise index into SceneData.layers
	showLegend bool
}

// InteractionState holds mouse and selection state
type InteractionState struct {
	mouseDownPos rl.Vector2
	isPanning    bool
	selected     int // -1 = nothing selected
}

// App is the interactive viewer
type App struct {
	Camera      CameraState
	Scene       SceneData
	View        ViewSettings
	Interaction InteractionState
	sourceFile  string
}
