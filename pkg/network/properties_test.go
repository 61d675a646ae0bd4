package network

import (
	"math"
	"testing"
)

func TestResolveRadiusUnitInference(t *testing.T) {
	tests := []struct {
		name     string
		props    PropertyBag
		expected float64
	}{
		{"millimeter radius", PropertyBag{"radius": 1.5}, 0.0015},
		{"meter radius", PropertyBag{"radius": 0.5}, 0.5},
		{"diameter fallback", PropertyBag{"diameter": 300.0}, 0.15},
		{"radius string with unit", PropertyBag{"radius": "200mm"}, 0.2},
		{"diameter string", PropertyBag{"diameter": "φ100"}, 0.05},
		{"radius wins over diameter", PropertyBag{"radius": 0.3, "diameter": 900.0}, 0.3},
		{"zero radius falls back", PropertyBag{"radius": 0.0, "diameter": 500.0}, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRadius(tt.props)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("ResolveRadius(%v) = %v, expected %v", tt.props, got, tt.expected)
			}
		})
	}
}

func TestResolveRadiusInvalid(t *testing.T) {
	tests := []struct {
		name  string
		props PropertyBag
	}{
		{"empty bag", PropertyBag{}},
		{"negative radius", PropertyBag{"radius": -2.0}},
		{"non-numeric", PropertyBag{"radius": "unknown"}},
		{"negative diameter", PropertyBag{"diameter": -100.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveRadius(tt.props); got > 0 {
				t.Errorf("ResolveRadius(%v) = %v, expected invalid", tt.props, got)
			}
		})
	}
}

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected float64
	}{
		{"float", 2.5, 2.5},
		{"int", 7, 7},
		{"plain string", "42", 42},
		{"string with unit", "300mm", 300},
		{"string with symbol", "φ75", 75},
		{"negative string", "-1.5m", -1.5},
		{"exponent", "1e3", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceFloat(tt.value)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("CoerceFloat(%v) = %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}

	if !math.IsNaN(CoerceFloat("pipe")) {
		t.Error("CoerceFloat of a non-numeric string should be NaN")
	}
	if !math.IsNaN(CoerceFloat(nil)) {
		t.Error("CoerceFloat of nil should be NaN")
	}
	if !math.IsNaN(CoerceFloat([]interface{}{1.0})) {
		t.Error("CoerceFloat of a non-scalar should be NaN")
	}
}

func TestResolveColorLayerRules(t *testing.T) {
	tests := []struct {
		layer    string
		expected interface{}
	}{
		{"水道管", ColorWater},
		{"上水道", ColorWater},
		{"Water Main", ColorWater},
		{"下水管渠", ColorSewer},
		{"sewer line", ColorSewer},
		{"ガス管", ColorGas},
		{"GAS", ColorGas},
		{"電力線", ColorElectric},
		{"Power Cable", ColorElectric},
	}

	for _, tt := range tests {
		t.Run(tt.layer, func(t *testing.T) {
			got := ResolveColor(PropertyBag{"layer": tt.layer})
			if got != tt.expected {
				t.Errorf("ResolveColor(layer=%q) = %v, expected %v", tt.layer, got, tt.expected)
			}
		})
	}
}

func TestResolveColorLayerWinsOverMaterial(t *testing.T) {
	got := ResolveColor(PropertyBag{"layer": "水道管", "material": "steel"})
	if got != ColorWater {
		t.Errorf("layer rule should win over material: got %v", got)
	}
}

func TestResolveColorMaterialFallback(t *testing.T) {
	tests := []struct {
		material string
		expected interface{}
	}{
		{"PVC", ColorPVC},
		{"塩ビ管", ColorPVC},
		{"concrete", ColorConcrete},
		{"コンクリート", ColorConcrete},
		{"Ductile Iron", ColorDuctile},
		{"steel", ColorDuctile},
	}

	for _, tt := range tests {
		t.Run(tt.material, func(t *testing.T) {
			got := ResolveColor(PropertyBag{"layer": "unknown", "material": tt.material})
			if got != tt.expected {
				t.Errorf("ResolveColor(material=%q) = %v, expected %v", tt.material, got, tt.expected)
			}
		})
	}
}

func TestResolveColorDefault(t *testing.T) {
	got := ResolveColor(PropertyBag{"layer": "mystery", "material": "wood"})
	if got != ColorDefault {
		t.Errorf("unclassified feature should get the default color, got %v", got)
	}

	if ResolveColor(PropertyBag{}) != ColorDefault {
		t.Error("empty bag should get the default color")
	}
}

func TestResolveDepth(t *testing.T) {
	if got := ResolveDepth(1.2); got != 1.2 {
		t.Errorf("ResolveDepth(1.2) = %v", got)
	}
	if got := ResolveDepth("1.5m"); got != 1.5 {
		t.Errorf("ResolveDepth(\"1.5m\") = %v", got)
	}
	if got := ResolveDepth("deep"); got != 0 {
		t.Errorf("non-numeric depth should resolve to 0, got %v", got)
	}
	if got := ResolveDepth(math.Inf(1)); got != 0 {
		t.Errorf("non-finite depth should resolve to 0, got %v", got)
	}
}

func TestSegmentDepths(t *testing.T) {
	tests := []struct {
		name       string
		props      PropertyBag
		start, end float64
	}{
		{"underscore keys", PropertyBag{"start_point_depth": 1.2, "end_point_depth": 1.8}, 1.2, 1.8},
		{"space keys", PropertyBag{"start_point depth": "0.9", "end_point depth": "1.1"}, 0.9, 1.1},
		{"short keys", PropertyBag{"start_depth": 2.0, "end_depth": 2.5}, 2.0, 2.5},
		{"missing", PropertyBag{}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := SegmentDepths(tt.props)
			if start != tt.start || end != tt.end {
				t.Errorf("SegmentDepths(%v) = (%v, %v), expected (%v, %v)",
					tt.props, start, end, tt.start, tt.end)
			}
		})
	}
}

func TestPropertyBagClone(t *testing.T) {
	original := PropertyBag{"layer": "水道管", "radius": 0.1}
	clone := original.Clone()

	clone["layer"] = "edited"
	if original["layer"] != "水道管" {
		t.Error("mutating a clone must not touch the original bag")
	}

	if got := PropertyBag(nil).Clone(); got == nil {
		t.Error("cloning a nil bag should yield an empty usable bag")
	}
}
