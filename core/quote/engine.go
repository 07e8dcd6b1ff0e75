// Package quote wires the pricing pipeline together: normalize the raw
// request, validate dimensions, dispatch to the first applicable pricing
// strategy, layer on add-ons and finishings, and assemble the final
// result. The engine is pure and synchronous: identical inputs always
// produce byte-identical output, so concurrent quotes need no
// coordination.
package quote

import (
	"fmt"

	"printshop-quote/core/dimension"
	"printshop-quote/core/normalize"
	"printshop-quote/core/strategy"
	"printshop-quote/core/types"
	"printshop-quote/internal/errors"
)

// Engine computes quotes for catalog products.
type Engine struct {
	dispatcher *strategy.Dispatcher
	limits     dimension.Table
	discounts  strategy.DiscountTable
}

// Option configures an Engine.
type Option func(*Engine)

// WithDiscounts overrides the legacy quantity-break table.
func WithDiscounts(table strategy.DiscountTable) Option {
	return func(e *Engine) { e.discounts = table }
}

// WithMaterialLimits overrides the material constraint table.
func WithMaterialLimits(table dimension.Table) Option {
	return func(e *Engine) { e.limits = table }
}

// NewEngine creates an engine with the standard strategy chain.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		dispatcher: strategy.NewDispatcher(),
		limits:     dimension.DefaultTable(),
		discounts:  strategy.DefaultDiscounts(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Quote prices a raw request body against a product. It is the single
// entry point consumed by checkout and quote-preview handlers.
func (e *Engine) Quote(product *types.Product, rawBody map[string]interface{}) (*types.QuoteResult, error) {
	if product == nil {
		return nil, errors.Input("product is required")
	}

	in := normalize.Input(rawBody)

	if in.Quantity <= 0 {
		return nil, errors.Validation("quantity must be a positive integer", map[string]string{
			"field": "quantity",
		})
	}
	if err := checkQuantityRange(product.Options.QuantityRange, in.Quantity); err != nil {
		return nil, err
	}

	if in.HasDimensions() {
		res := e.limits.Validate(in.WidthIn, in.HeightIn, in.Material, product)
		if !res.Valid {
			return nil, errors.Validation("dimensions out of bounds", res.Errors)
		}
	}

	base, err := e.dispatcher.Dispatch(&strategy.Context{
		Product:   product,
		Preset:    product.Preset,
		Input:     in,
		Discounts: e.discounts,
	})
	if err != nil {
		return nil, err
	}

	return assemble(product, in, base), nil
}

// checkQuantityRange enforces the catalog's orderable quantity bounds.
func checkQuantityRange(r *types.QuantityRange, qty int) error {
	if r == nil {
		return nil
	}
	var reasons []string
	if r.Min > 0 && qty < r.Min {
		reasons = append(reasons, fmt.Sprintf("Minimum quantity is %d", r.Min))
	}
	if r.Max > 0 && qty > r.Max {
		reasons = append(reasons, fmt.Sprintf("Maximum quantity is %d", r.Max))
	}
	if r.Step > 1 {
		offset := qty
		if r.Min > 0 {
			offset = qty - r.Min
		}
		if offset%r.Step != 0 {
			reasons = append(reasons, fmt.Sprintf("Quantity must be in steps of %d", r.Step))
		}
	}
	if len(reasons) > 0 {
		return errors.Validation("quantity out of range", reasons)
	}
	return nil
}
