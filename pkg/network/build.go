package network

import (
	"math"
	"strings"

	"pipeview/pkg/geometry"
)

const (
	// tubeAlpha renders pipes translucent so overlapping runs stay readable
	tubeAlpha = 191 // 0.75 opacity

	// arcSamples is the number of points sampled along an arc stroke
	arcSamples = 64

	// minStrokeWidth keeps very thin arcs visible
	minStrokeWidth = 0.01

	// diskLift raises disks off the ground plane to avoid z-fighting
	diskLift = 0.01

	// diskSides is the tessellation of a filled disk
	diskSides = 32
)

// segmentRequest is one consecutive coordinate pair of a polyline feature
type segmentRequest struct {
	x1, y1 float64
	x2, y2 float64
}

// arcRequest is one angle-annotated point feature
type arcRequest struct {
	x, y float64
}

// interpretFeature walks one GeoJSON feature into atomic geometry requests.
// Unsupported or malformed features produce nothing; a bad feature must never
// abort the rest of the document.
func interpretFeature(feature map[string]interface{}) ([]segmentRequest, []arcRequest, PropertyBag) {
	geom, ok := feature["geometry"].(map[string]interface{})
	if !ok {
		return nil, nil, nil
	}
	props, _ := feature["properties"].(map[string]interface{})
	bag := PropertyBag(props)

	geomType := strings.ToLower(stringValue(geom["type"]))
	switch {
	case strings.Contains(geomType, "line") && strings.Contains(geomType, "string"):
		points := coordinatePairs(geom["coordinates"])
		if len(points) < 2 {
			return nil, nil, nil
		}
		segments := make([]segmentRequest, 0, len(points)-1)
		for i := 0; i+1 < len(points); i++ {
			segments = append(segments, segmentRequest{
				x1: points[i][0], y1: points[i][1],
				x2: points[i+1][0], y2: points[i+1][1],
			})
		}
		return segments, nil, bag

	case geomType == "point" && bag.String("_type") == "ARC":
		point, ok := coordinatePair(geom["coordinates"])
		if !ok {
			return nil, nil, nil
		}
		return nil, []arcRequest{{x: point[0], y: point[1]}}, bag
	}

	return nil, nil, nil
}

func stringValue(v interface{}) string {
	s, _ := v.(string)
	return s
}

// coordinatePair reads one [x, y, ...] position
func coordinatePair(v interface{}) ([2]float64, bool) {
	arr, ok := v.([]interface{})
	if !ok || len(arr) < 2 {
		return [2]float64{}, false
	}
	x, xOk := arr[0].(float64)
	y, yOk := arr[1].(float64)
	if !xOk || !yOk {
		return [2]float64{}, false
	}
	return [2]float64{x, y}, true
}

// coordinatePairs reads an array of positions. A singly-nested array (one
// ring wrapping the point list) is unwrapped one level.
func coordinatePairs(v interface{}) [][2]float64 {
	arr, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var points [][2]float64
	for _, el := range arr {
		if p, ok := coordinatePair(el); ok {
			points = append(points, p)
		}
	}
	if len(points) == 0 && len(arr) == 1 {
		return coordinatePairs(arr[0])
	}
	return points
}

// BuildSegment constructs a tube primitive for one pipe segment between two
// source-plane points. The source's second planar axis maps to the renderer's
// depth axis: the network is rendered flattened onto the ground plane, with
// each tube lifted by its radius so it rests on the surface. A nil return
// means the segment was skipped (no valid radius, or zero length).
func BuildSegment(x1, y1, x2, y2 float64, props PropertyBag) *Primitive {
	radius := ResolveRadius(props)
	if !(radius > 0) {
		return nil
	}

	dx := x2 - x1
	dz := y2 - y1
	if math.Hypot(dx, dz) == 0 {
		return nil
	}

	col := ResolveColor(props)
	col.A = tubeAlpha

	return &Primitive{
		Properties: props.Clone(),
		Layer:      props.String("layer"),
		Endpoints:  &Endpoints{X1: x1, Y1: y1, X2: x2, Y2: y2},
		Shape: &Tube{
			Start:  geometry.NewVector3(x1, radius, y1),
			End:    geometry.NewVector3(x2, radius, y2),
			Radius: radius,
		},
		Color: col,
	}
}

// BuildArc constructs an arc or disk primitive for an angle-annotated point
// feature. Valid startAngle/endAngle produce an arc stroke; otherwise the
// primitive is a plain disk and carries no arc data.
func BuildArc(cx, cy float64, props PropertyBag) *Primitive {
	radius := ResolveRadius(props)
	if !(radius > 0) {
		return nil
	}

	prim := &Primitive{
		Properties: props.Clone(),
		Layer:      props.String("layer"),
		Center:     &[2]float64{cx, cy},
		Color:      ResolveColor(props),
	}

	start := props.Float("startAngle")
	end := props.Float("endAngle")
	if validAngles(start, end) {
		prim.Shape = arcStroke(cx, cy, radius, start, end)
		prim.Arc = &ArcData{StartAngle: start, EndAngle: end, Radius: radius}
	} else {
		prim.Shape = &Disk{
			Center: geometry.NewVector3(cx, diskLift, cy),
			Radius: radius,
			Sides:  diskSides,
		}
	}
	return prim
}

func validAngles(start, end float64) bool {
	return !math.IsNaN(start) && !math.IsInf(start, 0) &&
		!math.IsNaN(end) && !math.IsInf(end, 0)
}

// arcStroke samples the arc in its local XY plane and translates it to the
// world position (cx, radius, cy)
func arcStroke(cx, cy, radius, start, end float64) *ArcStroke {
	points := make([]geometry.Vector3, arcSamples)
	for i := range points {
		t := start + (end-start)*float64(i)/float64(arcSamples-1)
		points[i] = geometry.NewVector3(
			cx+radius*math.Cos(t),
			radius+radius*math.Sin(t),
			cy,
		)
	}
	return &ArcStroke{
		Points: points,
		Width:  math.Max(minStrokeWidth, radius*0.1),
	}
}
