package network

import (
	"math"

	"pipeview/pkg/geometry"
)

// Rebuild regenerates a primitive's shape and color from its current property
// bag after an edit. Only the shape, color and arc data change; provenance
// stays untouched. The previous shape buffer is released before the new one is
// installed. A primitive without provenance is left alone.
//
// An edit that leaves a segment without a usable radius or length aborts the
// rebuild with the prior shape intact, so a half-typed value never destroys
// the visible object. Arc primitives instead flip to disk mode when their
// angles become invalid, and back again when they are restored.
func Rebuild(p *Primitive) {
	if p == nil {
		return
	}
	switch {
	case p.Center != nil:
		rebuildArc(p)
	case p.Endpoints != nil:
		rebuildSegment(p)
	}
}

func rebuildArc(p *Primitive) {
	radius := ResolveRadius(p.Properties)
	if !(radius > 0) {
		return
	}

	cx, cy := p.Center[0], p.Center[1]
	start := p.Properties.Float("startAngle")
	end := p.Properties.Float("endAngle")

	if validAngles(start, end) {
		p.install(arcStroke(cx, cy, radius, start, end))
		p.Arc = &ArcData{StartAngle: start, EndAngle: end, Radius: radius}
	} else {
		p.install(&Disk{
			Center: geometry.NewVector3(cx, diskLift, cy),
			Radius: radius,
			Sides:  diskSides,
		})
		p.Arc = nil
	}
	p.Color = ResolveColor(p.Properties)
}

func rebuildSegment(p *Primitive) {
	radius := ResolveRadius(p.Properties)
	if !(radius > 0) {
		return
	}

	e := p.Endpoints
	dx := e.X2 - e.X1
	dz := e.Y2 - e.Y1
	if math.Hypot(dx, dz) == 0 {
		return
	}

	p.install(&Tube{
		Start:  geometry.NewVector3(e.X1, radius, e.Y1),
		End:    geometry.NewVector3(e.X2, radius, e.Y2),
		Radius: radius,
	})

	col := ResolveColor(p.Properties)
	col.A = tubeAlpha
	p.Color = col
}
