package network

import (
	"testing"
)

func TestAssemblePolyline(t *testing.T) {
	doc := decode(t, `{
		"type": "FeatureCollection",
		"features": [{
			"type": "Feature",
			"geometry": {"type": "LineString", "coordinates": [[0,0],[10,0],[10,10],[20,10]]},
			"properties": {"radius": 0.2, "layer": "水道管"}
		}]
	}`)

	container, bounds := Assemble(doc)
	if container == nil || bounds == nil {
		t.Fatal("expected a populated container")
	}
	if container.Len() != 3 {
		t.Fatalf("4-point polyline should yield 3 primitives, got %d", container.Len())
	}

	// Each primitive keeps its own consecutive coordinate pair, in order
	expected := []Endpoints{
		{X1: 0, Y1: 0, X2: 10, Y2: 0},
		{X1: 10, Y1: 0, X2: 10, Y2: 10},
		{X1: 10, Y1: 10, X2: 20, Y2: 10},
	}
	for i, p := range container.Primitives {
		if p.Endpoints == nil || *p.Endpoints != expected[i] {
			t.Errorf("primitive %d endpoints = %+v, expected %+v", i, p.Endpoints, expected[i])
		}
	}

	if bounds.IsEmpty() {
		t.Fatal("bounds should be populated")
	}
	if bounds.Min.X > 0 || bounds.Max.X < 20 {
		t.Errorf("bounds should cover the network, got %+v", bounds)
	}
}

func TestAssembleMixedDocument(t *testing.T) {
	// One valid LineString, one Point without the ARC tag. The Point is
	// silently skipped; the document still yields a partial result.
	doc := decode(t, `{
		"type": "FeatureCollection",
		"features": [
			{
				"geometry": {"type": "LineString", "coordinates": [[0,0],[1,1]]},
				"properties": {"radius": 0.1}
			},
			{
				"geometry": {"type": "Point", "coordinates": [5,5]},
				"properties": {"radius": 0.1}
			}
		]
	}`)

	container, _ := Assemble(doc)
	if container.Len() != 1 {
		t.Errorf("expected exactly one primitive, got %d", container.Len())
	}
}

func TestAssembleSingleFeature(t *testing.T) {
	doc := decode(t, `{
		"type": "Feature",
		"geometry": {"type": "Point", "coordinates": [1, 2]},
		"properties": {"_type": "ARC", "diameter": 600}
	}`)

	container, bounds := Assemble(doc)
	if container.Len() != 1 {
		t.Fatalf("a single feature should be treated as a one-element collection, got %d", container.Len())
	}
	if bounds == nil {
		t.Fatal("expected bounds")
	}

	if _, ok := container.Primitives[0].Shape.(*Disk); !ok {
		t.Errorf("arc point without angles should build a disk, got %T", container.Primitives[0].Shape)
	}
}

func TestAssembleEmptyResults(t *testing.T) {
	cases := []string{
		`{"type": "FeatureCollection", "features": []}`,
		`{"type": "FeatureCollection", "features": [
			{"geometry": {"type": "LineString", "coordinates": [[0,0],[1,1]]}, "properties": {}}
		]}`,
		`{"some": "other shape"}`,
	}

	for _, raw := range cases {
		container, bounds := Assemble(decode(t, raw))
		if container != nil || bounds != nil {
			t.Errorf("expected nil container and bounds for %s", raw)
		}
	}

	if container, bounds := Assemble(nil); container != nil || bounds != nil {
		t.Error("nil document should yield nothing")
	}
	if container, bounds := Assemble("not a document"); container != nil || bounds != nil {
		t.Error("non-object document should yield nothing")
	}
}

func TestAssembleZeroLengthSegment(t *testing.T) {
	doc := decode(t, `{
		"type": "FeatureCollection",
		"features": [{
			"geometry": {"type": "LineString", "coordinates": [[2,3],[2,3],[4,3]]},
			"properties": {"radius": 0.1}
		}]
	}`)

	container, _ := Assemble(doc)
	if container.Len() != 1 {
		t.Errorf("zero-length pair should be dropped, keeping the valid one: got %d", container.Len())
	}
}

func TestContainerLayers(t *testing.T) {
	doc := decode(t, `{
		"type": "FeatureCollection",
		"features": [
			{"geometry": {"type": "LineString", "coordinates": [[0,0],[1,0]]}, "properties": {"radius": 0.1, "layer": "水道管"}},
			{"geometry": {"type": "LineString", "coordinates": [[0,1],[1,1]]}, "properties": {"radius": 0.1, "layer": "ガス管"}},
			{"geometry": {"type": "LineString", "coordinates": [[0,2],[1,2]]}, "properties": {"radius": 0.1, "layer": "水道管"}}
		]
	}`)

	container, _ := Assemble(doc)
	layers := container.Layers()
	if len(layers) != 2 || layers[0] != "水道管" || layers[1] != "ガス管" {
		t.Errorf("layers = %v, expected first-seen order without duplicates", layers)
	}
}
