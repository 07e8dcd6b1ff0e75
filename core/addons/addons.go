// Package addons computes the additive line items layered on top of the
// base pricing strategies: product add-ons and finishings.
package addons

import (
	"printshop-quote/core/types"
)

// AddonLines resolves selected add-on IDs against the product definitions.
// Flat add-ons contribute once; everything else is per unit. Unknown IDs
// are silently ignored: selection lists may reference IDs the UI no
// longer shows.
func AddonLines(defs []types.AddonOption, selected []string, quantity int) ([]types.BreakdownLine, int64) {
	byID := make(map[string]types.AddonOption, len(defs))
	for _, d := range defs {
		byID[d.ID] = d
	}

	var lines []types.BreakdownLine
	var total int64
	for _, id := range selected {
		def, ok := byID[id]
		if !ok {
			continue
		}
		amount := def.PriceCents
		if def.Type != types.AddonFlat {
			amount = def.PriceCents * int64(quantity)
		}
		lines = append(lines, types.BreakdownLine{Label: addonLabel(def), AmountCents: amount})
		total += amount
	}
	return lines, total
}

// FinishingLines resolves selected finishing IDs. Per-sqft finishings
// scale with the piece area and quantity; the rest behave like add-ons.
func FinishingLines(defs []types.FinishingOption, selected []string, quantity int, areaSqft float64) ([]types.BreakdownLine, int64) {
	byID := make(map[string]types.FinishingOption, len(defs))
	for _, d := range defs {
		byID[d.ID] = d
	}

	var lines []types.BreakdownLine
	var total int64
	for _, id := range selected {
		def, ok := byID[id]
		if !ok {
			continue
		}
		var amount int64
		switch def.Type {
		case types.FinishingFlat:
			amount = def.PriceCents
		case types.FinishingPerSqft:
			amount = types.RoundCents(float64(def.PriceCents) * areaSqft * float64(quantity))
		default:
			amount = def.PriceCents * int64(quantity)
		}
		lines = append(lines, types.BreakdownLine{Label: finishingLabel(def), AmountCents: amount})
		total += amount
	}
	return lines, total
}

// MergeFinishings layers preset finishing definitions over product-level
// ones; a preset entry with the same ID wins.
func MergeFinishings(product, preset []types.FinishingOption) []types.FinishingOption {
	if len(preset) == 0 {
		return product
	}
	override := make(map[string]bool, len(preset))
	for _, d := range preset {
		override[d.ID] = true
	}
	merged := make([]types.FinishingOption, 0, len(product)+len(preset))
	for _, d := range product {
		if !override[d.ID] {
			merged = append(merged, d)
		}
	}
	return append(merged, preset...)
}

func addonLabel(d types.AddonOption) string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

func finishingLabel(d types.FinishingOption) string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}
