package network

import (
	"pipeview/pkg/geometry"
)

// Assemble drives the interpreter and builders over a decoded GeoJSON
// document and collects every resulting primitive. The document may be a
// FeatureCollection or a single Feature; any other value yields nothing.
//
// A document that produces zero primitives returns (nil, nil): "nothing to
// show" is a normal outcome for the caller to report, not an error. Invalid
// features inside an otherwise good document are skipped, so a mixed document
// yields a partial result.
func Assemble(document interface{}) (*Container, *geometry.BoundingBox) {
	container := &Container{}
	bounds := geometry.NewBoundingBox()

	for _, feature := range documentFeatures(document) {
		segments, arcs, props := interpretFeature(feature)
		for _, s := range segments {
			addPrimitive(container, &bounds, BuildSegment(s.x1, s.y1, s.x2, s.y2, props))
		}
		for _, a := range arcs {
			addPrimitive(container, &bounds, BuildArc(a.x, a.y, props))
		}
	}

	if container.Len() == 0 {
		return nil, nil
	}
	return container, &bounds
}

func addPrimitive(c *Container, bounds *geometry.BoundingBox, p *Primitive) {
	if p == nil {
		return
	}
	c.Add(p)
	p.Shape.Extend(bounds)
}

// documentFeatures flattens a FeatureCollection or single Feature into a
// feature list
func documentFeatures(document interface{}) []map[string]interface{} {
	doc, ok := document.(map[string]interface{})
	if !ok {
		return nil
	}

	if raw, ok := doc["features"].([]interface{}); ok {
		features := make([]map[string]interface{}, 0, len(raw))
		for _, f := range raw {
			if feature, ok := f.(map[string]interface{}); ok {
				features = append(features, feature)
			}
		}
		return features
	}

	if _, ok := doc["geometry"]; ok {
		return []map[string]interface{}{doc}
	}

	return nil
}
