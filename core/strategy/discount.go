package strategy

import "sort"

// DiscountBand is one quantity break: the factor applies to any quantity
// at or above MinQty.
type DiscountBand struct {
	MinQty int     `json:"minQty"`
	Factor float64 `json:"factor"`
}

// DiscountTable is an injected quantity-break table, replacing the
// hard-coded legacy discount constants. Bands are evaluated as a step
// function; the discontinuity at each band boundary is the documented
// legacy behavior, not a bug.
type DiscountTable []DiscountBand

// DefaultDiscounts is the shop's legacy quantity-break table.
func DefaultDiscounts() DiscountTable {
	return DiscountTable{
		{MinQty: 100, Factor: 0.97},
		{MinQty: 250, Factor: 0.93},
		{MinQty: 500, Factor: 0.88},
		{MinQty: 1000, Factor: 0.82},
	}
}

// FactorFor returns the discount factor for a quantity; 1.0 below the
// first band.
func (t DiscountTable) FactorFor(quantity int) float64 {
	bands := make(DiscountTable, len(t))
	copy(bands, t)
	sort.Slice(bands, func(i, j int) bool { return bands[i].MinQty < bands[j].MinQty })

	factor := 1.0
	for _, band := range bands {
		if quantity >= band.MinQty {
			factor = band.Factor
		}
	}
	return factor
}
