package strategy

import (
	"fmt"

	"printshop-quote/core/dimension"
	"printshop-quote/core/types"
	"printshop-quote/internal/errors"
)

// Legacy is the last-resort fallback: base price times a quantity-break
// discount times a product material multiplier. Its step discounts
// produce a genuine price cliff at each band boundary, a documented
// inconsistency with the interpolated strategies that is preserved
// deliberately.
type Legacy struct{}

func (s *Legacy) Model() types.PricingModel { return types.ModelLegacy }

func (s *Legacy) CanHandle(ctx *Context) bool { return true }

func (s *Legacy) Compute(ctx *Context) (*BaseQuote, error) {
	product := ctx.Product
	in := ctx.Input

	if product.BasePriceCents <= 0 {
		return nil, errors.Validation("no pricing configured for this product", map[string]string{
			"product": product.Slug,
		})
	}

	qty := in.Quantity
	discount := ctx.Discounts.FactorFor(qty)
	multiplier := materialMultiplier(product, in.Material)

	base := float64(product.BasePriceCents)
	var unit int64
	areaSqft := 0.0
	if product.PricingUnit == types.UnitPerSqft && in.HasDimensions() {
		areaSqft = in.AreaSqft()
		unit = types.RoundCents(base * multiplier * areaSqft * discount)
	} else {
		unit = types.RoundCents(base * multiplier * discount)
	}

	total := unit * int64(qty)
	return &BaseQuote{
		Model: types.ModelLegacy,
		Lines: []types.BreakdownLine{
			{Label: fmt.Sprintf("%s × %d", product.Slug, qty), AmountCents: total},
		},
		TotalCents: total,
		UnitCents:  unit,
		Trace: map[string]float64{
			"discount":           discount,
			"materialMultiplier": multiplier,
			"areaSqft":           areaSqft,
		},
	}, nil
}

// materialMultiplier resolves the legacy material multiplier by
// normalized id or name match; 1.0 when nothing matches.
func materialMultiplier(product *types.Product, material string) float64 {
	key := dimension.NormalizeKey(material)
	if key == "" {
		return 1.0
	}
	for _, m := range product.Options.Materials {
		if dimension.NormalizeKey(m.ID) == key || dimension.NormalizeKey(m.Name) == key {
			if m.Multiplier > 0 {
				return m.Multiplier
			}
			return 1.0
		}
	}
	return 1.0
}
