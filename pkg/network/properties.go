// Package network builds renderable 3D primitives from GeoJSON utility
// network features and keeps them consistent with attribute edits.
package network

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// PropertyBag holds the free-form attributes of a feature. Values are
// whatever the JSON decoder produced (float64 or string for anything the
// resolvers care about); unknown keys pass through edit and export verbatim.
type PropertyBag map[string]interface{}

// Clone returns a shallow copy of the bag
func (p PropertyBag) Clone() PropertyBag {
	if p == nil {
		return PropertyBag{}
	}
	clone := make(PropertyBag, len(p))
	for k, v := range p {
		clone[k] = v
	}
	return clone
}

// String returns the value under key as a string, or "" if absent or not a string
func (p PropertyBag) String(key string) string {
	if val, ok := p[key]; ok {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return ""
}

// Float returns the numerically coerced value under key, or NaN
func (p PropertyBag) Float(key string) float64 {
	val, ok := p[key]
	if !ok {
		return math.NaN()
	}
	return CoerceFloat(val)
}

// CoerceFloat converts an arbitrary attribute value to a float64. Numbers pass
// through. Strings are stripped of every character except digits, '.', '+',
// '-' and 'e'/'E' before parsing, so values like "300mm" or "φ200" still
// resolve. Anything else yields NaN.
func CoerceFloat(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		cleaned := strings.Map(func(r rune) rune {
			switch {
			case r >= '0' && r <= '9':
				return r
			case r == '.' || r == '+' || r == '-' || r == 'e' || r == 'E':
				return r
			}
			return -1
		}, v)
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}
	return math.NaN()
}

// ResolveRadius derives the pipe radius in meters from the bag. It reads
// "radius" first and falls back to "diameter"/2. Values greater than 1.0 are
// assumed to be millimeters and are converted to meters. A NaN or non-positive
// result means no valid radius; callers skip the primitive rather than fail.
func ResolveRadius(props PropertyBag) float64 {
	r := props.Float("radius")
	if !(r > 0) {
		r = props.Float("diameter") / 2
	}
	if !(r > 0) {
		return math.NaN()
	}
	if r > 1.0 {
		r /= 1000
	}
	return r
}

// Classification colors. Layer rules are tried in order before material
// rules; the first matching token wins.
var (
	ColorWater    = color.RGBA{R: 30, G: 144, B: 255, A: 255}
	ColorSewer    = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	ColorGas      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	ColorElectric = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	ColorPVC      = color.RGBA{R: 65, G: 105, B: 225, A: 255}
	ColorConcrete = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	ColorDuctile  = color.RGBA{R: 119, G: 136, B: 153, A: 255}
	ColorDefault  = color.RGBA{R: 46, G: 139, B: 87, A: 255}
)

type colorRule struct {
	tokens []string
	color  color.RGBA
}

var layerRules = []colorRule{
	{tokens: []string{"水道", "上水", "water"}, color: ColorWater},
	{tokens: []string{"下水", "汚水", "sewer"}, color: ColorSewer},
	{tokens: []string{"ガス", "gas"}, color: ColorGas},
	{tokens: []string{"電", "electric", "power", "cable"}, color: ColorElectric},
}

var materialRules = []colorRule{
	{tokens: []string{"pvc", "塩ビ", "vp"}, color: ColorPVC},
	{tokens: []string{"concrete", "コンクリート", "rc"}, color: ColorConcrete},
	{tokens: []string{"ductile", "steel", "鋳鉄", "dip"}, color: ColorDuctile},
}

func matchRules(rules []colorRule, value string) (color.RGBA, bool) {
	lowered := strings.ToLower(value)
	for _, rule := range rules {
		for _, token := range rule.tokens {
			if strings.Contains(lowered, token) {
				return rule.color, true
			}
		}
	}
	return color.RGBA{}, false
}

// ResolveColor classifies a feature by its "layer" attribute first and its
// "material" attribute second. An unclassified feature gets the default green.
func ResolveColor(props PropertyBag) color.RGBA {
	if c, ok := matchRules(layerRules, props.String("layer")); ok {
		return c
	}
	if c, ok := matchRules(materialRules, props.String("material")); ok {
		return c
	}
	return ColorDefault
}

// ResolveDepth coerces a burial depth value; non-finite input collapses to 0.
// Depth is read but not applied to placement: the active rendering mode
// flattens the network onto the ground plane, and the depth-aware mode is not
// shipped. The fields still ride through edit and export untouched.
func ResolveDepth(value interface{}) float64 {
	d := CoerceFloat(value)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	return d
}

// Depth key spellings seen in the wild for segment endpoints.
var (
	startDepthKeys = []string{"start_point_depth", "start_point depth", "start_depth"}
	endDepthKeys   = []string{"end_point_depth", "end_point depth", "end_depth"}
)

// SegmentDepths returns the burial depths recorded for a segment's endpoints,
// trying each known key spelling in order. Missing values resolve to 0.
func SegmentDepths(props PropertyBag) (start, end float64) {
	for _, key := range startDepthKeys {
		if v, ok := props[key]; ok {
			start = ResolveDepth(v)
			break
		}
	}
	for _, key := range endDepthKeys {
		if v, ok := props[key]; ok {
			end = ResolveDepth(v)
			break
		}
	}
	return start, end
}
