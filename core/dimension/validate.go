package dimension

import (
	"fmt"

	"printshop-quote/core/types"
)

// Result reports the outcome of dimension validation. All violations are
// collected so the caller can display every problem at once.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate checks normalized width/height against product-level bounds and
// material physical limits. Purely informational; never mutates input.
func (t Table) Validate(widthIn, heightIn float64, material string, product *types.Product) Result {
	if widthIn <= 0 || heightIn <= 0 {
		return Result{Valid: false, Errors: []string{"width and height must be positive numbers"}}
	}

	var errs []string

	// Product-level bounds take precedence over material limits on the
	// axes they cover.
	prodWidthBound := product != nil && (product.MinWidthIn > 0 || product.MaxWidthIn > 0)
	prodHeightBound := product != nil && (product.MinHeightIn > 0 || product.MaxHeightIn > 0)
	if product != nil {
		if product.MinWidthIn > 0 && widthIn < product.MinWidthIn {
			errs = append(errs, fmt.Sprintf("Minimum width is %g\"", product.MinWidthIn))
		}
		if product.MaxWidthIn > 0 && widthIn > product.MaxWidthIn {
			errs = append(errs, fmt.Sprintf("Maximum width is %g\"", product.MaxWidthIn))
		}
		if product.MinHeightIn > 0 && heightIn < product.MinHeightIn {
			errs = append(errs, fmt.Sprintf("Minimum height is %g\"", product.MinHeightIn))
		}
		if product.MaxHeightIn > 0 && heightIn > product.MaxHeightIn {
			errs = append(errs, fmt.Sprintf("Maximum height is %g\"", product.MaxHeightIn))
		}
	}

	name, limits, ok := t.Lookup(material)
	if !ok {
		category := ""
		if product != nil {
			category = product.Category
		}
		name, limits = t.CategoryLimits(category)
	}

	switch limits.Stock {
	case StockRoll:
		if !prodWidthBound && widthIn > limits.EffectiveWidthIn() {
			errs = append(errs, fmt.Sprintf("Maximum width for %s is %g\" (%g\" trim each side)",
				name, limits.EffectiveWidthIn(), limits.TrimPerSideIn))
		}
		// Roll length is unbounded.
	case StockBoard:
		if !prodWidthBound && widthIn > limits.MaxWidthIn {
			errs = append(errs, fmt.Sprintf("Maximum width for %s is %g\"", name, limits.MaxWidthIn))
		}
		if !prodHeightBound && heightIn > limits.MaxHeightIn {
			errs = append(errs, fmt.Sprintf("Maximum height for %s is %g\"", name, limits.MaxHeightIn))
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
