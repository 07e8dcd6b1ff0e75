package strategy

import (
	"reflect"
	"testing"

	"printshop-quote/core/types"
	"printshop-quote/internal/errors"
)

func newContext(product *types.Product, in *types.QuoteInput) *Context {
	return &Context{
		Product:   product,
		Preset:    product.Preset,
		Input:     in,
		Discounts: DefaultDiscounts(),
	}
}

func TestDispatchExactTableHit(t *testing.T) {
	product := &types.Product{
		Slug: "postcards",
		Options: types.OptionsConfig{
			Sizes: []types.SizeOption{
				{Label: "4x6-matte", PriceByQty: map[string]int64{"100": 4500, "250": 9900}},
			},
		},
	}
	quote, err := NewDispatcher().Dispatch(newContext(product, &types.QuoteInput{
		SizeLabel: "4x6-matte",
		Quantity:  100,
	}))
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if quote.TotalCents != 4500 {
		t.Errorf("total = %d, want 4500", quote.TotalCents)
	}
	if quote.Model != types.ModelOptionsExactQty {
		t.Errorf("model = %s, want OPTIONS_EXACT_QTY", quote.Model)
	}
	if quote.UnitCents != 45 {
		t.Errorf("unit = %d, want 45", quote.UnitCents)
	}
}

func TestDispatchTieredSize(t *testing.T) {
	product := &types.Product{
		Slug: "stickers",
		Options: types.OptionsConfig{
			Sizes: []types.SizeOption{
				{
					Label: "3x3",
					Tiers: []types.QtyTier{
						{MinQty: 50, UnitCents: 120},
						{MinQty: 200, UnitCents: 90},
					},
				},
			},
		},
	}
	// 150 is past the 50 tier but short of 200: the 50 tier still rules.
	quote, err := NewDispatcher().Dispatch(newContext(product, &types.QuoteInput{
		SizeLabel: "3x3",
		Quantity:  150,
	}))
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if quote.UnitCents != 120 || quote.TotalCents != 18000 {
		t.Errorf("got unit=%d total=%d, want 120/18000", quote.UnitCents, quote.TotalCents)
	}
	if quote.Model != types.ModelOptionsSize {
		t.Errorf("model = %s, want OPTIONS_SIZE", quote.Model)
	}
}

func TestSizeTableUnitMonotonicAcrossTiers(t *testing.T) {
	product := &types.Product{
		Slug: "stickers",
		Options: types.OptionsConfig{
			Sizes: []types.SizeOption{
				{
					Label: "3x3",
					Tiers: []types.QtyTier{
						{MinQty: 50, UnitCents: 120},
						{MinQty: 200, UnitCents: 90},
						{MinQty: 500, UnitCents: 70},
					},
				},
			},
		},
	}
	d := NewDispatcher()
	prev := int64(1 << 30)
	for _, qty := range []int{50, 150, 200, 350, 500, 900} {
		quote, err := d.Dispatch(newContext(product, &types.QuoteInput{SizeLabel: "3x3", Quantity: qty}))
		if err != nil {
			t.Fatalf("qty %d: %v", qty, err)
		}
		if quote.UnitCents > prev {
			t.Errorf("unit price increased at qty %d: %d > %d", qty, quote.UnitCents, prev)
		}
		prev = quote.UnitCents
	}
}

func TestSizeTableSizeMultiplierFallback(t *testing.T) {
	product := &types.Product{
		Slug:           "yard-signs",
		BasePriceCents: 1000,
		Options: types.OptionsConfig{
			Sizes: []types.SizeOption{{Label: "18x24", SizeMultiplier: 1.5}},
		},
	}
	// 250 units hits the 0.93 discount band: round(1000*1.5*0.93) = 1395.
	quote, err := NewDispatcher().Dispatch(newContext(product, &types.QuoteInput{
		SizeLabel: "18x24",
		Quantity:  250,
	}))
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if quote.UnitCents != 1395 {
		t.Errorf("unit = %d, want 1395", quote.UnitCents)
	}
	if quote.TotalCents != 1395*250 {
		t.Errorf("total = %d", quote.TotalCents)
	}
}

func TestSizeTablePriceNotConfigured(t *testing.T) {
	product := &types.Product{
		Slug: "mystery",
		Options: types.OptionsConfig{
			Sizes: []types.SizeOption{{Label: "8x8", PriceByQty: map[string]int64{"500": 20000}}},
		},
	}
	// No exact entry for 100, no tiers, no multiplier, no base price.
	_, err := NewDispatcher().Dispatch(newContext(product, &types.QuoteInput{
		SizeLabel: "8x8",
		Quantity:  100,
	}))
	if err == nil {
		t.Fatal("expected 422 for unresolvable size price")
	}
	e, ok := errors.AsError(err)
	if !ok || e.Type != errors.TypeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := e.Details.(map[string]string)
	if !ok || details["sizeLabel"] != "8x8" {
		t.Errorf("details should carry the size label: %#v", e.Details)
	}
}

func TestLegacyDiscountCliff(t *testing.T) {
	product := &types.Product{Slug: "flyers", BasePriceCents: 1000, PricingUnit: types.UnitPerPiece}
	d := NewDispatcher()

	at999, err := d.Dispatch(newContext(product, &types.QuoteInput{Quantity: 999}))
	if err != nil {
		t.Fatalf("qty 999: %v", err)
	}
	at1000, err := d.Dispatch(newContext(product, &types.QuoteInput{Quantity: 1000}))
	if err != nil {
		t.Fatalf("qty 1000: %v", err)
	}

	// The step exists exactly at the boundary: 0.88 band at 999, 0.82 at 1000.
	if at999.UnitCents != 880 {
		t.Errorf("unit at 999 = %d, want 880", at999.UnitCents)
	}
	if at1000.UnitCents != 820 {
		t.Errorf("unit at 1000 = %d, want 820", at1000.UnitCents)
	}
	if at999.Model != types.ModelLegacy {
		t.Errorf("model = %s, want LEGACY", at999.Model)
	}
}

func TestLegacyPerSqftWithMaterialMultiplier(t *testing.T) {
	product := &types.Product{
		Slug:           "banner",
		BasePriceCents: 500,
		PricingUnit:    types.UnitPerSqft,
		Options: types.OptionsConfig{
			Materials: []types.MaterialOption{{ID: "18oz-vinyl", Name: "18oz Vinyl", Multiplier: 1.4}},
		},
	}
	// 24x36 = 6 sqft, qty 10 (no discount band): round(500*1.4*6*1.0) = 4200.
	quote, err := NewDispatcher().Dispatch(newContext(product, &types.QuoteInput{
		WidthIn: 24, HeightIn: 36,
		Quantity: 10,
		Material: "18oz Vinyl",
	}))
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if quote.UnitCents != 4200 {
		t.Errorf("unit = %d, want 4200", quote.UnitCents)
	}
}

func TestLegacyNoBasePriceIsError(t *testing.T) {
	product := &types.Product{Slug: "unpriced"}
	_, err := NewDispatcher().Dispatch(newContext(product, &types.QuoteInput{Quantity: 5}))
	if err == nil {
		t.Fatal("expected unresolvable price error")
	}
	if !errors.IsType(err, errors.TypeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestDiscountTableInjected(t *testing.T) {
	product := &types.Product{Slug: "flyers", BasePriceCents: 1000}
	ctx := newContext(product, &types.QuoteInput{Quantity: 10})
	ctx.Discounts = DiscountTable{{MinQty: 10, Factor: 0.5}}
	quote, err := NewDispatcher().Dispatch(ctx)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if quote.UnitCents != 500 {
		t.Errorf("synthetic discount table ignored: unit = %d", quote.UnitCents)
	}
}

func TestDispatchDeterministic(t *testing.T) {
	product := &types.Product{
		Slug:           "stickers",
		BasePriceCents: 200,
		Options: types.OptionsConfig{
			Sizes: []types.SizeOption{{Label: "3x3", Tiers: []types.QtyTier{{MinQty: 1, UnitCents: 150}}}},
		},
	}
	in := &types.QuoteInput{SizeLabel: "3x3", Quantity: 77}
	first, err := NewDispatcher().Dispatch(newContext(product, in))
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	second, err := NewDispatcher().Dispatch(newContext(product, in))
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical input produced different quotes:\n%+v\n%+v", first, second)
	}
}
