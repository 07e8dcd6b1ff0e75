package types

// PricingUnit describes how a product's base price is denominated.
type PricingUnit string

const (
	UnitPerPiece PricingUnit = "per_piece"
	UnitPerSqft  PricingUnit = "per_sqft"
)

// CutType identifies the cutting method for a job.
type CutType string

const (
	CutRectangular CutType = "rectangular"
	CutContour     CutType = "contour"
)

// AddonType describes how an add-on charge scales.
type AddonType string

const (
	// AddonFlat contributes once regardless of quantity.
	AddonFlat AddonType = "flat"

	// AddonPerUnit contributes cents * quantity. This is the default when
	// a catalog entry carries no type.
	AddonPerUnit AddonType = "per_unit"
)

// FinishingType describes how a finishing charge scales.
type FinishingType string

const (
	FinishingFlat    FinishingType = "flat"
	FinishingPerUnit FinishingType = "per_unit"
	FinishingPerSqft FinishingType = "per_sqft"
)

// Product is a read-only catalog snapshot consumed by the engine.
// The engine never mutates it.
type Product struct {
	// Slug uniquely identifies the product
	Slug string `json:"slug"`

	// BasePriceCents is the legacy base price in cents
	BasePriceCents int64 `json:"basePriceCents"`

	// PricingUnit is per_piece or per_sqft
	PricingUnit PricingUnit `json:"pricingUnit"`

	// Options holds sizes, materials, add-ons, finishings and quantity bounds
	Options OptionsConfig `json:"optionsConfig"`

	// Product-level dimension bounds in inches. Zero means unset.
	// When set they take precedence over material-level limits.
	MinWidthIn  float64 `json:"minWidthIn,omitempty"`
	MaxWidthIn  float64 `json:"maxWidthIn,omitempty"`
	MinHeightIn float64 `json:"minHeightIn,omitempty"`
	MaxHeightIn float64 `json:"maxHeightIn,omitempty"`

	// Category drives roll/board inference when no material limit matches
	Category string `json:"category,omitempty"`

	// Preset is the attached pricing preset, if any
	Preset *PricingPreset `json:"pricingPreset,omitempty"`
}

// OptionsConfig is the product-level options blob from the catalog.
type OptionsConfig struct {
	Sizes         []SizeOption      `json:"sizes,omitempty"`
	Materials     []MaterialOption  `json:"materials,omitempty"`
	Addons        []AddonOption     `json:"addons,omitempty"`
	Finishings    []FinishingOption `json:"finishings,omitempty"`
	QuantityRange *QuantityRange    `json:"quantityRange,omitempty"`
}

// SizeOption is a single configurable size. Exactly one of PriceByQty,
// Tiers, UnitCents or SizeMultiplier determines price resolution, tried
// in that priority order.
type SizeOption struct {
	// Label uniquely identifies the size within a product ("4x6-matte")
	Label string `json:"label"`

	WidthIn  float64 `json:"widthIn,omitempty"`
	HeightIn float64 `json:"heightIn,omitempty"`

	// QuantityChoices restricts the quantities the UI offers
	QuantityChoices []int `json:"quantityChoices,omitempty"`

	// PriceByQty maps exact quantity strings to total cents
	PriceByQty map[string]int64 `json:"priceByQty,omitempty"`

	// Tiers is "at least N units" unit pricing, ascending by MinQty
	Tiers []QtyTier `json:"tiers,omitempty"`

	// UnitCents is a direct per-unit price
	UnitCents int64 `json:"unitCents,omitempty"`

	// SizeMultiplier scales the product base price as a last resort
	SizeMultiplier float64 `json:"sizeMultiplier,omitempty"`

	Recommended bool `json:"recommended,omitempty"`
}

// QtyTier is a quantity band: the tier applies to any quantity >= MinQty.
type QtyTier struct {
	MinQty    int   `json:"minQty"`
	UnitCents int64 `json:"unitCents"`
}

// MaterialOption is a product-level material with a legacy price multiplier.
type MaterialOption struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier,omitempty"`
}

// AddonOption is a product-level add-on definition.
type AddonOption struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price"`
	Type       AddonType `json:"type,omitempty"`
}

// FinishingOption is a finishing definition. PriceCents is per sqft for
// FinishingPerSqft, per unit for FinishingPerUnit, flat otherwise.
type FinishingOption struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	PriceCents int64         `json:"price"`
	Type       FinishingType `json:"type,omitempty"`
}

// QuantityRange bounds orderable quantities.
type QuantityRange struct {
	Min  int `json:"min,omitempty"`
	Max  int `json:"max,omitempty"`
	Step int `json:"step,omitempty"`
}

// FindSize returns the size option with the given label.
func (o OptionsConfig) FindSize(label string) (*SizeOption, bool) {
	for i := range o.Sizes {
		if o.Sizes[i].Label == label {
			return &o.Sizes[i], true
		}
	}
	return nil, false
}
