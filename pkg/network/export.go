package network

import (
	geojson "github.com/paulmach/go.geojson"
)

// ExportGeoJSON rebuilds a GeoJSON FeatureCollection from the container's
// current state. Segment primitives become LineString features with their
// stamped source coordinates; arc and disk primitives become Point features at
// their stamped center. Every feature carries the primitive's live property
// bag verbatim, so edited and untouched keys alike survive the round trip.
func ExportGeoJSON(c *Container) *geojson.FeatureCollection {
	if c == nil {
		return nil
	}

	fc := geojson.NewFeatureCollection()
	for _, p := range c.Primitives {
		var feature *geojson.Feature
		switch {
		case p.Endpoints != nil:
			e := p.Endpoints
			feature = geojson.NewLineStringFeature([][]float64{
				{e.X1, e.Y1},
				{e.X2, e.Y2},
			})
		case p.Center != nil:
			feature = geojson.NewPointFeature([]float64{p.Center[0], p.Center[1]})
		default:
			continue
		}
		feature.Properties = p.Properties.Clone()
		fc.AddFeature(feature)
	}
	return fc
}
