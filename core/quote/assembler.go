package quote

import (
	"printshop-quote/core/addons"
	"printshop-quote/core/strategy"
	"printshop-quote/core/types"
)

// assemble merges the strategy's base breakdown with add-on and finishing
// lines into the final immutable result.
func assemble(product *types.Product, in *types.QuoteInput, base *strategy.BaseQuote) *types.QuoteResult {
	lines := make([]types.BreakdownLine, 0, len(base.Lines)+len(in.Addons)+len(in.Finishings))
	lines = append(lines, base.Lines...)
	total := base.TotalCents

	addonLines, addonCents := addons.AddonLines(product.Options.Addons, in.Addons, in.Quantity)
	lines = append(lines, addonLines...)
	total += addonCents

	finishingDefs := addons.MergeFinishings(product.Options.Finishings, presetFinishings(product.Preset))
	finishingLines, finishingCents := addons.FinishingLines(finishingDefs, in.Finishings, in.Quantity, in.AreaSqft())
	lines = append(lines, finishingLines...)
	total += finishingCents

	return &types.QuoteResult{
		TotalCents: total,
		Currency:   types.CurrencyCAD,
		Breakdown:  lines,
		Meta: types.QuoteMeta{
			Model: base.Model,
			Trace: base.Trace,
		},
		UnitCents: types.RoundCents(float64(total) / float64(in.Quantity)),
	}
}

// presetFinishings pulls finishing definitions out of whichever preset
// variant is attached.
func presetFinishings(preset *types.PricingPreset) []types.FinishingOption {
	if preset == nil {
		return nil
	}
	switch {
	case preset.Config.SizeTable != nil:
		return preset.Config.SizeTable.Finishings
	case preset.Config.AreaTiered != nil:
		return preset.Config.AreaTiered.Finishings
	case preset.Config.CostPlus != nil:
		return preset.Config.CostPlus.Finishings
	}
	return nil
}
