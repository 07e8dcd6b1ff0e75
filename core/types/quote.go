package types

// QuoteInput is the normalized, engine-internal selection. Dimensions are
// always inches. Zero width/height means "absent"; if one is present the
// other must be too.
type QuoteInput struct {
	WidthIn  float64 `json:"widthIn,omitempty"`
	HeightIn float64 `json:"heightIn,omitempty"`

	// Quantity is always required and > 0
	Quantity int `json:"quantity"`

	Material  string  `json:"material,omitempty"`
	PrintMode string  `json:"printMode,omitempty"`
	CutType   CutType `json:"cutType,omitempty"`
	IsB2B     bool    `json:"isB2B,omitempty"`
	SizeLabel string  `json:"sizeLabel,omitempty"`

	Addons     []string `json:"addons,omitempty"`
	Finishings []string `json:"finishings,omitempty"`

	// PanelMultiplier scales perimeter-based cutting for multi-panel jobs.
	// Zero means 1.
	PanelMultiplier float64 `json:"panelMultiplier,omitempty"`
}

// HasDimensions reports whether both dimensions are present.
func (in *QuoteInput) HasDimensions() bool {
	return in.WidthIn > 0 && in.HeightIn > 0
}

// AreaSqft returns the per-piece area in square feet, 0 without dimensions.
func (in *QuoteInput) AreaSqft() float64 {
	if !in.HasDimensions() {
		return 0
	}
	return in.WidthIn * in.HeightIn / 144
}

// Panels returns the effective panel multiplier.
func (in *QuoteInput) Panels() float64 {
	if in.PanelMultiplier > 0 {
		return in.PanelMultiplier
	}
	return 1
}

// BreakdownLine is one customer-facing line item. Lines are ordered and
// sum to the quote total.
type BreakdownLine struct {
	Label       string `json:"label"`
	AmountCents int64  `json:"amount"`
}

// QuoteMeta is the machine-readable trace of how a quote was priced.
// Trace keys are strategy-specific and not a stable contract; they exist
// for auditing and logging.
type QuoteMeta struct {
	Model PricingModel       `json:"model"`
	Trace map[string]float64 `json:"trace,omitempty"`
}

// QuoteResult is the engine output. It is constructed once and never
// mutated after return.
type QuoteResult struct {
	TotalCents int64           `json:"totalCents"`
	Currency   Currency        `json:"currency"`
	Breakdown  []BreakdownLine `json:"breakdown"`
	Meta       QuoteMeta       `json:"meta"`
	UnitCents  int64           `json:"unitCents"`
}
