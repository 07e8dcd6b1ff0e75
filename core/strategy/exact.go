package strategy

import (
	"fmt"
	"strconv"

	"printshop-quote/core/types"
)

// ExactQty prices a job from a direct size+quantity table entry. It is
// the highest-priority strategy: where an exact table exists, the price
// is exact, with no interpolation and no rounding beyond integer cents.
type ExactQty struct{}

func (s *ExactQty) Model() types.PricingModel { return types.ModelOptionsExactQty }

func (s *ExactQty) CanHandle(ctx *Context) bool {
	size, ok := findSize(ctx, ctx.Input.SizeLabel)
	if !ok || len(size.PriceByQty) == 0 {
		return false
	}
	_, hit := size.PriceByQty[strconv.Itoa(ctx.Input.Quantity)]
	return hit
}

func (s *ExactQty) Compute(ctx *Context) (*BaseQuote, error) {
	size, _ := findSize(ctx, ctx.Input.SizeLabel)
	qty := ctx.Input.Quantity
	total := size.PriceByQty[strconv.Itoa(qty)]

	return &BaseQuote{
		Model: types.ModelOptionsExactQty,
		Lines: []types.BreakdownLine{
			{Label: fmt.Sprintf("%s × %d", size.Label, qty), AmountCents: total},
		},
		TotalCents: total,
		UnitCents:  types.RoundCents(float64(total) / float64(qty)),
		Trace: map[string]float64{
			"tableCents": float64(total),
		},
	}, nil
}
