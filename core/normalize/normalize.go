// Package normalize coerces raw quote request bodies into canonical
// engine input. Dimensions come out in inches, quantities as integers.
// Normalization has no side effects and never touches the catalog.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"printshop-quote/core/types"
)

// Input coerces an arbitrary decoded JSON body into a QuoteInput.
// Numeric fields accept JSON numbers and numeric strings. Non-finite or
// non-positive width/height values are treated as absent; quantity is
// carried through as-is and rejected downstream when not positive.
func Input(raw map[string]interface{}) *types.QuoteInput {
	in := &types.QuoteInput{}

	units, _ := lookupString(raw, "units", "unit")

	if w, ok := lookupNumber(raw, "widthIn", "width"); ok {
		in.WidthIn = normalizeDimension(w, units)
	}
	if h, ok := lookupNumber(raw, "heightIn", "height"); ok {
		in.HeightIn = normalizeDimension(h, units)
	}
	// A lone dimension is meaningless for pricing; drop the pair.
	if in.WidthIn <= 0 || in.HeightIn <= 0 {
		in.WidthIn = 0
		in.HeightIn = 0
	}

	if q, ok := lookupNumber(raw, "quantity", "qty"); ok && isFinite(q) {
		in.Quantity = int(math.Trunc(q))
	}

	in.Material, _ = lookupString(raw, "material")
	in.PrintMode, _ = lookupString(raw, "printMode", "print_mode")
	in.SizeLabel, _ = lookupString(raw, "sizeLabel", "size")

	if cut, ok := lookupString(raw, "cutType", "cut_type"); ok {
		if types.CutType(cut) == types.CutContour {
			in.CutType = types.CutContour
		} else {
			in.CutType = types.CutRectangular
		}
	}

	if b2b, ok := raw["isB2B"]; ok {
		in.IsB2B = coerceBool(b2b)
	} else if b2b, ok := raw["b2b"]; ok {
		in.IsB2B = coerceBool(b2b)
	}

	in.Addons = coerceStringSlice(raw["addons"])
	in.Finishings = coerceStringSlice(raw["finishings"])

	if pm, ok := lookupNumber(raw, "panelMultiplier", "panels"); ok && isFinite(pm) && pm > 0 {
		in.PanelMultiplier = pm
	}

	return in
}

// normalizeDimension converts a submitted dimension to inches. Explicit
// unit tags are honored; untagged values go through the magnitude
// heuristic for compatibility with upstream widgets that submit
// millimeters or centimeters without a tag.
func normalizeDimension(v float64, units string) float64 {
	if !isFinite(v) || v <= 0 {
		return 0
	}
	switch strings.ToLower(units) {
	case "in", "inch", "inches":
		return v
	case "mm":
		return v / 25.4
	case "cm":
		return v / 2.54
	}
	return Inches(v)
}

// Inches corrects ambiguous magnitude encodings of an untagged dimension.
// Values in [500,5000] are read as millimeters-as-integers, (50,500) as
// tenth-millimeters over 100, (10,50] as tenth-inches. The heuristic is
// lossy: the value 24 could mean 24 inches but is read as 2.4. Callers
// that know their units should tag them instead.
func Inches(v float64) float64 {
	switch {
	case v >= 500 && v <= 5000:
		return v / 1000
	case v > 50 && v < 500:
		return v / 100
	case v > 10 && v <= 50:
		return v / 10
	default:
		return v
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func lookupNumber(raw map[string]interface{}, keys ...string) (float64, bool) {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if f, ok := coerceNumber(v); ok {
				return f, true
			}
		}
	}
	return 0, false
}

func lookupString(raw map[string]interface{}, keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}

func coerceNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

func coerceBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true" || b == "1" || b == "yes"
	case float64:
		return b != 0
	}
	return false
}

func coerceStringSlice(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		if ss, ok := v.([]string); ok {
			return ss
		}
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
