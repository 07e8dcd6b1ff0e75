package types

import (
	"encoding/json"

	"printshop-quote/core/interpolate"
	"printshop-quote/internal/errors"
)

// PricingModel identifies which pricing strategy a preset or quote used.
type PricingModel string

const (
	// ModelOptionsExactQty is derived, never authored: a size table whose
	// matching size carries an exact price-by-quantity entry.
	ModelOptionsExactQty PricingModel = "OPTIONS_EXACT_QTY"

	ModelOptionsSize PricingModel = "OPTIONS_SIZE"
	ModelQtyTiered   PricingModel = "QTY_TIERED"
	ModelAreaTiered  PricingModel = "AREA_TIERED"
	ModelCostPlus    PricingModel = "COST_PLUS"
	ModelLegacy      PricingModel = "LEGACY"
)

// PricingPreset is an immutable, read-only pricing configuration attached
// to a product by catalog administration.
type PricingPreset struct {
	Key    string       `json:"key"`
	Model  PricingModel `json:"model"`
	Config PresetConfig `json:"config"`
}

// PresetConfig is the validated tagged union of per-model configuration.
// Exactly one variant is populated, matching the preset model. Validation
// happens at load time so catalog-authoring errors fail at preset save,
// not mid-quote.
type PresetConfig struct {
	SizeTable  *SizeTableConfig  `json:"sizeTable,omitempty"`
	AreaTiered *AreaTieredConfig `json:"areaTiered,omitempty"`
	CostPlus   *CostPlusConfig   `json:"costPlus,omitempty"`
}

// SizeTableConfig backs OPTIONS_SIZE and QTY_TIERED presets. Sizes here
// take precedence over product-level sizes.
type SizeTableConfig struct {
	Sizes      []SizeOption      `json:"sizes"`
	Finishings []FinishingOption `json:"finishings,omitempty"`
}

// AreaTieredConfig prices jobs at a per-sqft rate interpolated by area.
type AreaTieredConfig struct {
	// RateTiers interpolate dollars-per-sqft by area (key = maxSqft)
	RateTiers []interpolate.Anchor `json:"rateTiers"`

	// FileFee in dollars, added before rounding
	FileFee float64 `json:"fileFee,omitempty"`

	// MinimumPrice in dollars
	MinimumPrice float64 `json:"minimumPrice,omitempty"`

	Finishings []FinishingOption `json:"finishings,omitempty"`
}

// CostPlusConfig backs the continuous area-based cost-plus formula.
// All monetary values are in dollars; the engine converts the final
// price to cents.
type CostPlusConfig struct {
	// Materials maps material key to real cost
	Materials map[string]CostPlusMaterial `json:"materials"`

	// PrintModes maps print mode key to ink and throughput parameters
	PrintModes map[string]CostPlusPrintMode `json:"printModes"`

	// HourlyRate is the shop labor rate in dollars per hour
	HourlyRate float64 `json:"hourlyRate,omitempty"`

	Cutting CuttingConfig `json:"cutting,omitempty"`

	// QtyTiers interpolate the quantity-efficiency factor (key = maxQty).
	// Only labor and cutting receive this discount: material and ink are
	// true per-piece costs that never amortize.
	QtyTiers []interpolate.Anchor `json:"qtyTiers,omitempty"`

	// WasteTiers interpolate the waste factor by area (key = maxSqft)
	WasteTiers []interpolate.Anchor `json:"wasteTiers,omitempty"`

	// WasteFactor is the fixed fallback when no waste tiers exist
	WasteFactor float64 `json:"wasteFactor,omitempty"`

	Markup MarkupConfig `json:"markup,omitempty"`

	// FileFee in dollars, added after markup, before rounding
	FileFee float64 `json:"fileFee,omitempty"`

	// MinimumPrice in dollars, applied after rounding
	MinimumPrice float64 `json:"minimumPrice,omitempty"`

	Finishings []FinishingOption `json:"finishings,omitempty"`
}

// CostPlusMaterial is the real material cost for one substrate.
type CostPlusMaterial struct {
	CostPerSqft float64 `json:"costPerSqft"`
}

// CostPlusPrintMode carries ink cost and machine throughput.
type CostPlusPrintMode struct {
	InkPerSqft float64 `json:"inkPerSqft"`

	// SqmPerHour is machine throughput; zero disables the labor term
	SqmPerHour float64 `json:"sqmPerHour,omitempty"`
}

// CuttingConfig prices rectangular cuts by perimeter and contour cuts by area.
type CuttingConfig struct {
	RectangularPerFt float64 `json:"rectangularPerFt,omitempty"`
	ContourPerSqft   float64 `json:"contourPerSqft,omitempty"`
	ContourMinimum   float64 `json:"contourMinimum,omitempty"`
}

// MarkupConfig controls margin. Tiers, when present, interpolate the markup
// factor by area; otherwise the fixed Retail/B2B factors apply. Every path
// is floored at Floor.
type MarkupConfig struct {
	Floor       float64              `json:"floor,omitempty"`
	Retail      float64              `json:"retail,omitempty"`
	B2B         float64              `json:"b2b,omitempty"`
	RetailTiers []interpolate.Anchor `json:"retailTiers,omitempty"`
	B2BTiers    []interpolate.Anchor `json:"b2bTiers,omitempty"`
}

// Defaults applied at load time.
const (
	DefaultMarkupFloor = 1.5
	DefaultWasteFactor = 0.08
	qtyEfficiencyFloor = 0.3
)

// QtyEfficiencyFloor is the lowest quantity-efficiency discount the
// interpolator may return.
const QtyEfficiencyFloor = qtyEfficiencyFloor

// UnmarshalJSON decodes the wire shape {key, model, config} where config
// is the per-model raw object, and validates it immediately.
func (p *PricingPreset) UnmarshalJSON(data []byte) error {
	var raw struct {
		Key    string          `json:"key"`
		Model  PricingModel    `json:"model"`
		Config json.RawMessage `json:"config"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	cfg, err := ParsePresetConfig(raw.Model, raw.Config)
	if err != nil {
		return err
	}
	p.Key = raw.Key
	p.Model = raw.Model
	p.Config = *cfg
	return nil
}

// MarshalJSON emits the per-model config object, not the union wrapper.
func (p PricingPreset) MarshalJSON() ([]byte, error) {
	var cfg interface{}
	switch {
	case p.Config.SizeTable != nil:
		cfg = p.Config.SizeTable
	case p.Config.AreaTiered != nil:
		cfg = p.Config.AreaTiered
	case p.Config.CostPlus != nil:
		cfg = p.Config.CostPlus
	}
	return json.Marshal(struct {
		Key    string       `json:"key"`
		Model  PricingModel `json:"model"`
		Config interface{}  `json:"config"`
	}{p.Key, p.Model, cfg})
}

// anchorWire is the catalog wire shape for a tier anchor; exactly one of
// maxSqft/maxQty carries the key. A bare "key" is also accepted so
// engine-marshaled presets parse back.
type anchorWire struct {
	MaxSqft *float64 `json:"maxSqft,omitempty"`
	MaxQty  *float64 `json:"maxQty,omitempty"`
	RawKey  *float64 `json:"key,omitempty"`
	Factor  float64  `json:"factor"`
}

// markupWire mirrors MarkupConfig with catalog-shaped tier anchors.
type markupWire struct {
	Floor       float64      `json:"floor,omitempty"`
	Retail      float64      `json:"retail,omitempty"`
	B2B         float64      `json:"b2b,omitempty"`
	RetailTiers []anchorWire `json:"retailTiers,omitempty"`
	B2BTiers    []anchorWire `json:"b2bTiers,omitempty"`
}

func decodeAnchors(raw []anchorWire) []interpolate.Anchor {
	if len(raw) == 0 {
		return nil
	}
	anchors := make([]interpolate.Anchor, 0, len(raw))
	for _, a := range raw {
		key := 0.0
		switch {
		case a.MaxSqft != nil:
			key = *a.MaxSqft
		case a.MaxQty != nil:
			key = *a.MaxQty
		case a.RawKey != nil:
			key = *a.RawKey
		}
		anchors = append(anchors, interpolate.Anchor{Key: key, Factor: a.Factor})
	}
	return anchors
}

// ParsePresetConfig decodes and validates the raw per-model config blob.
func ParsePresetConfig(model PricingModel, raw json.RawMessage) (*PresetConfig, error) {
	switch model {
	case ModelOptionsSize, ModelQtyTiered:
		var cfg SizeTableConfig
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return nil, errors.Wrap(errors.TypeConfig, "invalid size table config", err)
		}
		pc := &PresetConfig{SizeTable: &cfg}
		return pc, pc.validate(model)

	case ModelAreaTiered:
		var wire struct {
			RateTiers    []anchorWire      `json:"rateTiers"`
			FileFee      float64           `json:"fileFee,omitempty"`
			MinimumPrice float64           `json:"minimumPrice,omitempty"`
			Finishings   []FinishingOption `json:"finishings,omitempty"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, errors.Wrap(errors.TypeConfig, "invalid area tiered config", err)
		}
		pc := &PresetConfig{AreaTiered: &AreaTieredConfig{
			RateTiers:    decodeAnchors(wire.RateTiers),
			FileFee:      wire.FileFee,
			MinimumPrice: wire.MinimumPrice,
			Finishings:   wire.Finishings,
		}}
		return pc, pc.validate(model)

	case ModelCostPlus:
		var wire struct {
			Materials    map[string]CostPlusMaterial  `json:"materials"`
			PrintModes   map[string]CostPlusPrintMode `json:"printModes"`
			HourlyRate   float64                      `json:"hourlyRate,omitempty"`
			Cutting      CuttingConfig                `json:"cutting,omitempty"`
			QtyTiers     []anchorWire                 `json:"qtyTiers,omitempty"`
			WasteTiers   []anchorWire                 `json:"wasteTiers,omitempty"`
			WasteFactor  *float64                     `json:"wasteFactor,omitempty"`
			Markup       markupWire                   `json:"markup,omitempty"`
			FileFee      float64                      `json:"fileFee,omitempty"`
			MinimumPrice float64                      `json:"minimumPrice,omitempty"`
			Finishings   []FinishingOption            `json:"finishings,omitempty"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, errors.Wrap(errors.TypeConfig, "invalid cost plus config", err)
		}
		cfg := &CostPlusConfig{
			Materials:    wire.Materials,
			PrintModes:   wire.PrintModes,
			HourlyRate:   wire.HourlyRate,
			Cutting:      wire.Cutting,
			QtyTiers:   decodeAnchors(wire.QtyTiers),
			WasteTiers: decodeAnchors(wire.WasteTiers),
			Markup: MarkupConfig{
				Floor:       wire.Markup.Floor,
				Retail:      wire.Markup.Retail,
				B2B:         wire.Markup.B2B,
				RetailTiers: decodeAnchors(wire.Markup.RetailTiers),
				B2BTiers:    decodeAnchors(wire.Markup.B2BTiers),
			},
			FileFee:      wire.FileFee,
			MinimumPrice: wire.MinimumPrice,
			Finishings:   wire.Finishings,
		}
		if wire.WasteFactor != nil {
			cfg.WasteFactor = *wire.WasteFactor
		} else if len(cfg.WasteTiers) == 0 {
			cfg.WasteFactor = DefaultWasteFactor
		}
		pc := &PresetConfig{CostPlus: cfg}
		return pc, pc.validate(model)

	default:
		return nil, errors.Configf("unknown pricing model %q", model)
	}
}

// validate applies defaults and rejects malformed curves and tables.
func (c *PresetConfig) validate(model PricingModel) error {
	switch {
	case c.SizeTable != nil:
		if len(c.SizeTable.Sizes) == 0 {
			return errors.Configf("%s preset requires at least one size", model)
		}
		seen := make(map[string]bool, len(c.SizeTable.Sizes))
		for _, s := range c.SizeTable.Sizes {
			if s.Label == "" {
				return errors.Config("size label is required")
			}
			if seen[s.Label] {
				return errors.Configf("duplicate size label %q", s.Label)
			}
			seen[s.Label] = true
			for i, t := range s.Tiers {
				if t.MinQty <= 0 || t.UnitCents <= 0 {
					return errors.Configf("size %q: tier %d must have positive minQty and unitCents", s.Label, i)
				}
				if i > 0 && s.Tiers[i-1].MinQty >= t.MinQty {
					return errors.Configf("size %q: tiers must be ascending by minQty", s.Label)
				}
			}
		}

	case c.AreaTiered != nil:
		if len(c.AreaTiered.RateTiers) == 0 {
			return errors.Config("AREA_TIERED preset requires rate tiers")
		}
		if err := interpolate.ValidateAnchors(c.AreaTiered.RateTiers); err != nil {
			return errors.Wrap(errors.TypeConfig, "invalid rate tiers", err)
		}

	case c.CostPlus != nil:
		cp := c.CostPlus
		if len(cp.Materials) == 0 {
			return errors.Config("COST_PLUS preset requires at least one material")
		}
		if len(cp.PrintModes) == 0 {
			return errors.Config("COST_PLUS preset requires at least one print mode")
		}
		for key, m := range cp.Materials {
			if m.CostPerSqft <= 0 {
				return errors.Configf("material %q: costPerSqft must be positive", key)
			}
		}
		for key, pm := range cp.PrintModes {
			if pm.InkPerSqft < 0 || pm.SqmPerHour < 0 {
				return errors.Configf("print mode %q: negative parameters", key)
			}
		}
		for name, anchors := range map[string][]interpolate.Anchor{
			"qtyTiers":    cp.QtyTiers,
			"wasteTiers":  cp.WasteTiers,
			"retailTiers": cp.Markup.RetailTiers,
			"b2bTiers":    cp.Markup.B2BTiers,
		} {
			if err := interpolate.ValidateAnchors(anchors); err != nil {
				return errors.Wrap(errors.TypeConfig, "invalid "+name, err)
			}
		}
		if cp.Markup.Floor <= 0 {
			cp.Markup.Floor = DefaultMarkupFloor
		}

	default:
		return errors.Configf("%s preset has no configuration", model)
	}
	return nil
}

// Validate checks a fully constructed preset (used by catalog loading paths
// that build the union directly rather than via JSON).
func (p *PricingPreset) Validate() error {
	if p.Key == "" {
		return errors.Config("preset key is required")
	}
	return p.Config.validate(p.Model)
}
