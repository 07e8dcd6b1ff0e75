// Package strategy implements the four mutually exclusive pricing
// strategies and the dispatcher that tries them in fixed priority order:
// exact size+quantity table, size-bucketed tiered pricing, cost-plus
// area formula, legacy base-price fallback. The first applicable
// strategy wins; falling through is routing, not error recovery.
package strategy

import (
	stderrors "errors"

	"printshop-quote/core/types"
	"printshop-quote/internal/errors"
)

// ErrNotApplicable signals that a strategy matched superficially but
// could not resolve a price; the dispatcher continues down the chain.
var ErrNotApplicable = stderrors.New("pricing strategy not applicable")

// Context carries everything a strategy may read. Strategies never
// mutate it.
type Context struct {
	Product   *types.Product
	Preset    *types.PricingPreset
	Input     *types.QuoteInput
	Discounts DiscountTable
}

// BaseQuote is the output of a single strategy before add-ons and
// finishings are layered on.
type BaseQuote struct {
	Model      types.PricingModel
	Lines      []types.BreakdownLine
	TotalCents int64
	UnitCents  int64
	Trace      map[string]float64
}

// Strategy is one pricing model in the chain.
type Strategy interface {
	// Model names the strategy for quote metadata.
	Model() types.PricingModel

	// CanHandle reports whether the strategy applies to this context.
	CanHandle(ctx *Context) bool

	// Compute resolves a base quote. It may return ErrNotApplicable to
	// pass the job down the chain.
	Compute(ctx *Context) (*BaseQuote, error)
}

// Dispatcher iterates the strategies in priority order.
type Dispatcher struct {
	strategies []Strategy
}

// NewDispatcher builds the standard chain.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		strategies: []Strategy{
			&ExactQty{},
			&SizeTable{},
			&CostPlus{},
			&Legacy{},
		},
	}
}

// Dispatch runs the chain and returns the first resolved base quote.
func (d *Dispatcher) Dispatch(ctx *Context) (*BaseQuote, error) {
	for _, s := range d.strategies {
		if !s.CanHandle(ctx) {
			continue
		}
		quote, err := s.Compute(ctx)
		if stderrors.Is(err, ErrNotApplicable) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return quote, nil
	}
	return nil, errors.Validation("no pricing strategy applies to this configuration", map[string]string{
		"product": ctx.Product.Slug,
	})
}

// sizesFor returns the size table in effect: preset sizes take
// precedence over product-level sizes.
func sizesFor(ctx *Context) []types.SizeOption {
	if ctx.Preset != nil && ctx.Preset.Config.SizeTable != nil {
		return ctx.Preset.Config.SizeTable.Sizes
	}
	return ctx.Product.Options.Sizes
}

func findSize(ctx *Context, label string) (*types.SizeOption, bool) {
	if label == "" {
		return nil, false
	}
	sizes := sizesFor(ctx)
	for i := range sizes {
		if sizes[i].Label == label {
			return &sizes[i], true
		}
	}
	return nil, false
}
