package strategy

import (
	"fmt"

	"printshop-quote/core/types"
	"printshop-quote/internal/errors"
)

// SizeTable prices a job from a matched size option when no exact
// quantity entry exists. Resolution order within the size: quantity
// tiers, direct unit price, then size multiplier over the product base
// price. PriceByQty without an exact hit never resolves here; it is an
// independent field, not a fallback chain.
type SizeTable struct{}

func (s *SizeTable) Model() types.PricingModel { return types.ModelOptionsSize }

func (s *SizeTable) CanHandle(ctx *Context) bool {
	_, ok := findSize(ctx, ctx.Input.SizeLabel)
	return ok
}

func (s *SizeTable) Compute(ctx *Context) (*BaseQuote, error) {
	size, _ := findSize(ctx, ctx.Input.SizeLabel)
	qty := ctx.Input.Quantity

	unit, trace, ok := resolveUnitCents(size, qty, ctx)
	if !ok {
		if ctx.Product.BasePriceCents <= 0 {
			return nil, errors.Validation("Price not configured for selected size", map[string]string{
				"sizeLabel": size.Label,
			})
		}
		// The legacy strategy can still price this from the base price.
		return nil, ErrNotApplicable
	}

	total := unit * int64(qty)
	return &BaseQuote{
		Model: types.ModelOptionsSize,
		Lines: []types.BreakdownLine{
			{Label: fmt.Sprintf("%s × %d", size.Label, qty), AmountCents: total},
		},
		TotalCents: total,
		UnitCents:  unit,
		Trace:      trace,
	}, nil
}

// resolveUnitCents walks the per-size resolution chain.
func resolveUnitCents(size *types.SizeOption, qty int, ctx *Context) (int64, map[string]float64, bool) {
	// Quantity tiers: "at least N units" banding; the last qualifying
	// tier wins, not the nearest.
	if len(size.Tiers) > 0 {
		var selected *types.QtyTier
		for i := range size.Tiers {
			if size.Tiers[i].MinQty <= qty {
				selected = &size.Tiers[i]
			}
		}
		if selected != nil {
			return selected.UnitCents, map[string]float64{
				"unitCents":  float64(selected.UnitCents),
				"tierMinQty": float64(selected.MinQty),
			}, true
		}
	}

	if size.UnitCents > 0 {
		return size.UnitCents, map[string]float64{
			"unitCents": float64(size.UnitCents),
		}, true
	}

	if size.SizeMultiplier > 0 && ctx.Product.BasePriceCents > 0 {
		discount := ctx.Discounts.FactorFor(qty)
		unit := types.RoundCents(float64(ctx.Product.BasePriceCents) * size.SizeMultiplier * discount)
		return unit, map[string]float64{
			"unitCents":      float64(unit),
			"sizeMultiplier": size.SizeMultiplier,
			"discount":       discount,
		}, true
	}

	return 0, nil, false
}
