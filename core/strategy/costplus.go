package strategy

import (
	"math"

	"printshop-quote/core/interpolate"
	"printshop-quote/core/types"
	"printshop-quote/internal/errors"
)

const sqftPerSqm = 10.7639

// CostPlus prices a job from its real production cost: material and ink
// are linear per-piece costs, labor and cutting are machine-time costs
// discounted by a quantity-efficiency factor, and the result carries an
// area-interpolated waste factor and markup. AREA_TIERED presets are
// served in the same chain slot as a simplified per-sqft rate curve.
type CostPlus struct{}

func (s *CostPlus) Model() types.PricingModel { return types.ModelCostPlus }

func (s *CostPlus) CanHandle(ctx *Context) bool {
	if ctx.Preset == nil || !ctx.Input.HasDimensions() {
		return false
	}
	switch ctx.Preset.Model {
	case types.ModelCostPlus:
		return ctx.Preset.Config.CostPlus != nil
	case types.ModelAreaTiered:
		return ctx.Preset.Config.AreaTiered != nil
	}
	return false
}

func (s *CostPlus) Compute(ctx *Context) (*BaseQuote, error) {
	if ctx.Preset.Model == types.ModelAreaTiered {
		return s.computeAreaTiered(ctx)
	}
	return s.computeCostPlus(ctx)
}

func (s *CostPlus) computeCostPlus(ctx *Context) (*BaseQuote, error) {
	cfg := ctx.Preset.Config.CostPlus
	in := ctx.Input
	qty := float64(in.Quantity)

	material, ok := cfg.Materials[in.Material]
	if !ok {
		return nil, errors.Configf("unknown material %q for preset %s", in.Material, ctx.Preset.Key)
	}
	printMode, ok := cfg.PrintModes[in.PrintMode]
	if !ok {
		return nil, errors.Configf("unknown print mode %q for preset %s", in.PrintMode, ctx.Preset.Key)
	}

	areaSqft := in.AreaSqft()
	areaSqm := areaSqft / sqftPerSqm
	perimeterFt := 2 * (in.WidthIn + in.HeightIn) / 12 * in.Panels()

	// Material and ink are true per-piece costs: no bulk discount,
	// physically you use proportionally more of both.
	materialCost := material.CostPerSqft * areaSqft * qty
	inkCost := printMode.InkPerSqft * areaSqft * qty

	laborBase := 0.0
	if printMode.SqmPerHour > 0 {
		laborBase = (areaSqm * qty / printMode.SqmPerHour) * cfg.HourlyRate
	}

	var cuttingBase float64
	if in.CutType == types.CutContour {
		cuttingBase = math.Max(cfg.Cutting.ContourPerSqft*areaSqft*qty, cfg.Cutting.ContourMinimum)
	} else {
		cuttingBase = cfg.Cutting.RectangularPerFt * perimeterFt * qty
	}

	// Only machine-time costs amortize with batch size.
	qtyEfficiency := 1.0
	if len(cfg.QtyTiers) > 0 {
		qtyEfficiency = interpolate.Interpolate(cfg.QtyTiers, qty, types.QtyEfficiencyFloor)
	}
	laborCost := laborBase * qtyEfficiency
	cuttingCost := cuttingBase * qtyEfficiency

	wasteFactor := cfg.WasteFactor
	if len(cfg.WasteTiers) > 0 {
		wasteFactor = interpolate.Interpolate(cfg.WasteTiers, areaSqft, 0)
	}

	subtotal := materialCost + inkCost + laborCost + cuttingCost
	rawCost := subtotal * (1 + wasteFactor)

	markupFactor := s.markupFactor(cfg, areaSqft, in.IsB2B)

	priceBeforeRound := rawCost*markupFactor + cfg.FileFee
	totalDollars := applyPsychologicalRounding(priceBeforeRound, cfg.MinimumPrice)
	totalCents := types.DollarsToCents(totalDollars)

	lines, marginCents := componentLines(totalCents, []types.BreakdownLine{
		{Label: "Material", AmountCents: types.DollarsToCents(materialCost)},
		{Label: "Printing", AmountCents: types.DollarsToCents(inkCost)},
		{Label: "Labor", AmountCents: types.DollarsToCents(laborCost)},
		{Label: "Cutting", AmountCents: types.DollarsToCents(cuttingCost)},
	})

	return &BaseQuote{
		Model:      types.ModelCostPlus,
		Lines:      lines,
		TotalCents: totalCents,
		UnitCents:  types.RoundCents(float64(totalCents) / qty),
		Trace: map[string]float64{
			"areaSqft":         areaSqft,
			"qtyEfficiency":    qtyEfficiency,
			"wasteFactor":      wasteFactor,
			"markupFactor":     markupFactor,
			"rawCost":          rawCost,
			"priceBeforeRound": priceBeforeRound,
			"marginCents":      float64(marginCents),
		},
	}, nil
}

func (s *CostPlus) markupFactor(cfg *types.CostPlusConfig, areaSqft float64, isB2B bool) float64 {
	floor := cfg.Markup.Floor
	if floor <= 0 {
		floor = types.DefaultMarkupFloor
	}

	tiers := cfg.Markup.RetailTiers
	fixed := cfg.Markup.Retail
	if isB2B {
		tiers = cfg.Markup.B2BTiers
		fixed = cfg.Markup.B2B
	}

	if len(tiers) > 0 {
		return interpolate.Interpolate(tiers, areaSqft, floor)
	}
	if fixed <= 0 {
		fixed = interpolate.DefaultFactor
	}
	return math.Max(fixed, floor)
}

func (s *CostPlus) computeAreaTiered(ctx *Context) (*BaseQuote, error) {
	cfg := ctx.Preset.Config.AreaTiered
	in := ctx.Input
	qty := float64(in.Quantity)

	areaSqft := in.AreaSqft()
	ratePerSqft := interpolate.Interpolate(cfg.RateTiers, areaSqft, 0)

	priceBeforeRound := ratePerSqft*areaSqft*qty + cfg.FileFee
	totalDollars := applyPsychologicalRounding(priceBeforeRound, cfg.MinimumPrice)
	totalCents := types.DollarsToCents(totalDollars)

	lines, marginCents := componentLines(totalCents, []types.BreakdownLine{
		{Label: "Printing", AmountCents: types.DollarsToCents(ratePerSqft * areaSqft * qty)},
	})

	return &BaseQuote{
		Model:      types.ModelAreaTiered,
		Lines:      lines,
		TotalCents: totalCents,
		UnitCents:  types.RoundCents(float64(totalCents) / qty),
		Trace: map[string]float64{
			"areaSqft":         areaSqft,
			"ratePerSqft":      ratePerSqft,
			"priceBeforeRound": priceBeforeRound,
			"marginCents":      float64(marginCents),
		},
	}, nil
}

// applyPsychologicalRounding always rounds DOWN to the dollar and adds
// 99 cents, then applies the minimum price floor.
func applyPsychologicalRounding(priceDollars, minimumPrice float64) float64 {
	rounded := math.Floor(priceDollars) + 0.99
	return math.Max(rounded, minimumPrice)
}

// componentLines emits the non-zero cost component lines plus a closing
// margin line so the breakdown sums exactly to the total.
func componentLines(totalCents int64, components []types.BreakdownLine) ([]types.BreakdownLine, int64) {
	var lines []types.BreakdownLine
	var componentSum int64
	for _, line := range components {
		if line.AmountCents == 0 {
			continue
		}
		lines = append(lines, line)
		componentSum += line.AmountCents
	}
	margin := totalCents - componentSum
	lines = append(lines, types.BreakdownLine{Label: "Production & margin", AmountCents: margin})
	return lines, margin
}
