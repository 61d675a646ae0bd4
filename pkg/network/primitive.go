package network

import (
	"image/color"

	"pipeview/pkg/geometry"
)

// Shape is the renderable geometry of a primitive. Exactly one variant is
// installed at a time; the rebuilder matches on the concrete type.
type Shape interface {
	// Extend folds the shape's world-space extent into a bounding box
	Extend(bbox *geometry.BoundingBox)
}

// Tube is a cylindrical pipe segment. Start and End are world positions,
// already lifted to y = Radius so the tube rests on the ground plane.
type Tube struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Radius float64
}

// Length returns the axis length of the tube
func (t *Tube) Length() float64 {
	return t.Start.Distance(t.End)
}

// Center returns the midpoint of the tube axis
func (t *Tube) Center() geometry.Vector3 {
	return t.Start.Midpoint(t.End)
}

func (t *Tube) Extend(bbox *geometry.BoundingBox) {
	r := geometry.NewVector3(t.Radius, t.Radius, t.Radius)
	bbox.Extend(t.Start.Sub(r))
	bbox.Extend(t.Start.Add(r))
	bbox.Extend(t.End.Sub(r))
	bbox.Extend(t.End.Add(r))
}

// ArcStroke is an angle-bounded arc rendered as a thick polyline
type ArcStroke struct {
	Points []geometry.Vector3
	Width  float64
}

func (a *ArcStroke) Extend(bbox *geometry.BoundingBox) {
	for _, p := range a.Points {
		bbox.Extend(p)
	}
}

// Disk is a flat filled circle resting just above the ground plane
type Disk struct {
	Center geometry.Vector3
	Radius float64
	Sides  int
}

func (d *Disk) Extend(bbox *geometry.BoundingBox) {
	bbox.Extend(d.Center.Add(geometry.NewVector3(d.Radius, 0, d.Radius)))
	bbox.Extend(d.Center.Sub(geometry.NewVector3(d.Radius, 0, d.Radius)))
}

// Endpoints records the original source-plane coordinates of a segment.
// These are authoritative for rebuild and export and are never recomputed
// from the rendered position.
type Endpoints struct {
	X1, Y1 float64
	X2, Y2 float64
}

// ArcData records the resolved parameters of an angle-bounded arc. It is
// absent in disk mode; its presence is what distinguishes the two modes.
type ArcData struct {
	StartAngle float64
	EndAngle   float64
	Radius     float64
}

// ReleaseFunc is invoked with the shape being discarded before a replacement
// is installed. The renderer uses it to free any buffers it derived from the
// old shape. At most one shape is ever reachable from a primitive.
type ReleaseFunc func(p *Primitive, old Shape)

// Primitive is one renderable object plus the provenance that makes it
// editable and re-exportable. Geometry is always derived from Properties and
// the stamped coordinates, never the other way around.
type Primitive struct {
	// Properties is the live attribute bag, the editable source of truth
	Properties PropertyBag

	// Layer is the classification label copied from properties.layer
	Layer string

	// Endpoints is set for segment primitives
	Endpoints *Endpoints

	// Center is the source-plane center, set for arc and disk primitives
	Center *[2]float64

	// Arc is set only while the primitive is in angle-bounded arc mode
	Arc *ArcData

	// Shape is the currently installed shape buffer
	Shape Shape

	// Color is the current classification color
	Color color.RGBA

	release ReleaseFunc
}

// SetReleaseFunc installs a hook called with the old shape whenever a rebuild
// replaces it
func (p *Primitive) SetReleaseFunc(fn ReleaseFunc) {
	p.release = fn
}

// install discards the previous shape, then swaps in the new one
func (p *Primitive) install(shape Shape) {
	old := p.Shape
	if old != nil && p.release != nil {
		p.release(p, old)
	}
	p.Shape = shape
}

// Container is the ordered collection of primitives built from one document
type Container struct {
	Primitives []*Primitive
}

// Add appends a primitive to the container
func (c *Container) Add(p *Primitive) {
	c.Primitives = append(c.Primitives, p)
}

// Len returns the number of primitives in the container
func (c *Container) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Primitives)
}

// Layers returns the distinct layer labels in first-seen order
func (c *Container) Layers() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]bool)
	var layers []string
	for _, p := range c.Primitives {
		if !seen[p.Layer] {
			seen[p.Layer] = true
			layers = append(layers, p.Layer)
		}
	}
	return layers
}
