// Package interpolate provides piecewise-linear interpolation over ordered
// tier anchors. It is the single source of factor math for markup, waste
// and quantity-efficiency curves, so every pricing curve in the engine is
// continuous at tier boundaries.
package interpolate

import (
	"fmt"
	"math"
)

// DefaultFactor is returned when no anchors are configured.
const DefaultFactor = 2.5

// Anchor is a (key, factor) control point on a pricing curve.
// Key is the dimension being interpolated over (area in sqft, quantity).
type Anchor struct {
	Key    float64 `json:"key"`
	Factor float64 `json:"factor"`
}

// Interpolate evaluates the piecewise-linear curve defined by anchors at
// value. Values at or below the first anchor clamp to its factor; values
// beyond the last anchor clamp to the last factor. The result is never
// below floor.
func Interpolate(anchors []Anchor, value, floor float64) float64 {
	switch len(anchors) {
	case 0:
		return math.Max(DefaultFactor, floor)
	case 1:
		return math.Max(anchors[0].Factor, floor)
	}

	if value <= anchors[0].Key {
		return math.Max(anchors[0].Factor, floor)
	}

	for i := 1; i < len(anchors); i++ {
		if anchors[i].Key >= value {
			prev := anchors[i-1]
			curr := anchors[i]
			t := (value - prev.Key) / (curr.Key - prev.Key)
			factor := prev.Factor + t*(curr.Factor-prev.Factor)
			return math.Max(factor, floor)
		}
	}

	return math.Max(anchors[len(anchors)-1].Factor, floor)
}

// ValidateAnchors checks that anchors are strictly ascending by key with
// finite, non-negative factors. Called at preset load time so malformed
// curves fail at catalog save, not mid-quote.
func ValidateAnchors(anchors []Anchor) error {
	for i, a := range anchors {
		if math.IsNaN(a.Key) || math.IsInf(a.Key, 0) || a.Key < 0 {
			return fmt.Errorf("anchor %d: key must be a non-negative number, got %v", i, a.Key)
		}
		if math.IsNaN(a.Factor) || math.IsInf(a.Factor, 0) || a.Factor < 0 {
			return fmt.Errorf("anchor %d: factor must be a non-negative number, got %v", i, a.Factor)
		}
		if i > 0 && anchors[i-1].Key >= a.Key {
			return fmt.Errorf("anchor %d: keys must be strictly ascending (%v >= %v)", i, anchors[i-1].Key, a.Key)
		}
	}
	return nil
}
