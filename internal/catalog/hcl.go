package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"printshop-quote/core/types"
	"printshop-quote/internal/errors"
)

// Catalog files are authored in HCL. Preset configs stay JSON inside the
// preset block so they share one validation path with the API, and a
// malformed preset fails at catalog load, never mid-quote.

type catalogFile struct {
	Products []productBlock `hcl:"product,block"`
}

type productBlock struct {
	Slug           string  `hcl:"slug,label"`
	BasePriceCents int64   `hcl:"base_price_cents,optional"`
	PricingUnit    string  `hcl:"pricing_unit,optional"`
	Category       string  `hcl:"category,optional"`
	MinWidthIn     float64 `hcl:"min_width_in,optional"`
	MaxWidthIn     float64 `hcl:"max_width_in,optional"`
	MinHeightIn    float64 `hcl:"min_height_in,optional"`
	MaxHeightIn    float64 `hcl:"max_height_in,optional"`

	Sizes         []sizeBlock      `hcl:"size,block"`
	Materials     []materialBlock  `hcl:"material,block"`
	Addons        []addonBlock     `hcl:"addon,block"`
	Finishings    []finishingBlock `hcl:"finishing,block"`
	QuantityRange *qtyRangeBlock   `hcl:"quantity_range,block"`
	Preset        *presetBlock     `hcl:"preset,block"`
}

type sizeBlock struct {
	Label           string           `hcl:"label,label"`
	WidthIn         float64          `hcl:"width_in,optional"`
	HeightIn        float64          `hcl:"height_in,optional"`
	QuantityChoices []int            `hcl:"quantity_choices,optional"`
	PriceByQty      map[string]int64 `hcl:"price_by_qty,optional"`
	Tiers           []tierBlock      `hcl:"tier,block"`
	UnitCents       int64            `hcl:"unit_cents,optional"`
	SizeMultiplier  float64          `hcl:"size_multiplier,optional"`
	Recommended     bool             `hcl:"recommended,optional"`
}

type tierBlock struct {
	MinQty    int   `hcl:"min_qty"`
	UnitCents int64 `hcl:"unit_cents"`
}

type materialBlock struct {
	ID         string  `hcl:"id,label"`
	Name       string  `hcl:"name,optional"`
	Multiplier float64 `hcl:"multiplier,optional"`
}

type addonBlock struct {
	ID         string `hcl:"id,label"`
	Name       string `hcl:"name,optional"`
	PriceCents int64  `hcl:"price_cents"`
	Type       string `hcl:"type,optional"`
}

type finishingBlock struct {
	ID         string `hcl:"id,label"`
	Name       string `hcl:"name,optional"`
	PriceCents int64  `hcl:"price_cents"`
	Type       string `hcl:"type,optional"`
}

type qtyRangeBlock struct {
	Min  int `hcl:"min,optional"`
	Max  int `hcl:"max,optional"`
	Step int `hcl:"step,optional"`
}

type presetBlock struct {
	Key    string `hcl:"key,label"`
	Model  string `hcl:"model"`
	Config string `hcl:"config"`
}

// LoadPath loads a catalog from a .hcl file or a directory of them.
func LoadPath(path string) (*MemoryStore, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "catalog path", err)
	}

	var files []string
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, errors.Wrap(errors.TypeConfig, "catalog directory", err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".hcl") {
				files = append(files, filepath.Join(path, entry.Name()))
			}
		}
	} else {
		files = []string{path}
	}
	if len(files) == 0 {
		return nil, errors.Configf("no .hcl catalog files under %s", path)
	}

	var products []*types.Product
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrap(errors.TypeConfig, "read catalog file", err)
		}
		loaded, err := Parse(src, file)
		if err != nil {
			return nil, err
		}
		products = append(products, loaded...)
	}
	return NewMemoryStore(products...), nil
}

// Parse decodes one catalog document and validates every preset.
func Parse(src []byte, filename string) ([]*types.Product, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Configf("parse %s: %s", filename, diags.Error())
	}

	var doc catalogFile
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, errors.Configf("decode %s: %s", filename, diags.Error())
	}

	seen := make(map[string]bool, len(doc.Products))
	products := make([]*types.Product, 0, len(doc.Products))
	for _, pb := range doc.Products {
		if seen[pb.Slug] {
			return nil, errors.Configf("duplicate product slug %q in %s", pb.Slug, filename)
		}
		seen[pb.Slug] = true
		product, err := pb.toProduct()
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func (pb *productBlock) toProduct() (*types.Product, error) {
	unit := types.PricingUnit(pb.PricingUnit)
	if unit == "" {
		unit = types.UnitPerPiece
	}

	product := &types.Product{
		Slug:           pb.Slug,
		BasePriceCents: pb.BasePriceCents,
		PricingUnit:    unit,
		Category:       pb.Category,
		MinWidthIn:     pb.MinWidthIn,
		MaxWidthIn:     pb.MaxWidthIn,
		MinHeightIn:    pb.MinHeightIn,
		MaxHeightIn:    pb.MaxHeightIn,
	}

	for _, sb := range pb.Sizes {
		size := types.SizeOption{
			Label:           sb.Label,
			WidthIn:         sb.WidthIn,
			HeightIn:        sb.HeightIn,
			QuantityChoices: sb.QuantityChoices,
			PriceByQty:      sb.PriceByQty,
			UnitCents:       sb.UnitCents,
			SizeMultiplier:  sb.SizeMultiplier,
			Recommended:     sb.Recommended,
		}
		for _, tb := range sb.Tiers {
			size.Tiers = append(size.Tiers, types.QtyTier{MinQty: tb.MinQty, UnitCents: tb.UnitCents})
		}
		product.Options.Sizes = append(product.Options.Sizes, size)
	}
	for _, mb := range pb.Materials {
		product.Options.Materials = append(product.Options.Materials, types.MaterialOption{
			ID: mb.ID, Name: mb.Name, Multiplier: mb.Multiplier,
		})
	}
	for _, ab := range pb.Addons {
		product.Options.Addons = append(product.Options.Addons, types.AddonOption{
			ID: ab.ID, Name: ab.Name, PriceCents: ab.PriceCents, Type: types.AddonType(ab.Type),
		})
	}
	for _, fb := range pb.Finishings {
		product.Options.Finishings = append(product.Options.Finishings, types.FinishingOption{
			ID: fb.ID, Name: fb.Name, PriceCents: fb.PriceCents, Type: types.FinishingType(fb.Type),
		})
	}
	if pb.QuantityRange != nil {
		product.Options.QuantityRange = &types.QuantityRange{
			Min: pb.QuantityRange.Min, Max: pb.QuantityRange.Max, Step: pb.QuantityRange.Step,
		}
	}

	if pb.Preset != nil {
		model := types.PricingModel(pb.Preset.Model)
		cfg, err := types.ParsePresetConfig(model, json.RawMessage(pb.Preset.Config))
		if err != nil {
			if e, ok := errors.AsError(err); ok {
				return nil, e.WithContext("product", pb.Slug).WithContext("preset", pb.Preset.Key)
			}
			return nil, err
		}
		product.Preset = &types.PricingPreset{
			Key:    pb.Preset.Key,
			Model:  model,
			Config: *cfg,
		}
	}

	return product, nil
}
