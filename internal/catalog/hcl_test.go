package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"printshop-quote/core/types"
	"printshop-quote/internal/errors"
)

const sampleCatalog = `
product "vinyl-banner" {
  base_price_cents = 600
  pricing_unit     = "per_sqft"
  category         = "banner"
  max_width_in     = 120

  material "vinyl" {
    name       = "13oz Vinyl"
    multiplier = 1.0
  }
  material "mesh" {
    name       = "Mesh"
    multiplier = 1.2
  }

  addon "grommets" {
    name        = "Grommets"
    price_cents = 150
    type        = "per_unit"
  }

  finishing "hems" {
    name        = "Hemmed edges"
    price_cents = 50
    type        = "per_sqft"
  }

  quantity_range {
    min  = 1
    max  = 50
    step = 1
  }
}

product "business-cards" {
  size "3.5x2" {
    width_in  = 3.5
    height_in = 2
    price_by_qty = {
      "100" = 2500
      "250" = 4500
    }
    tier {
      min_qty    = 500
      unit_cents = 8
    }
    recommended = true
  }
}

product "coroplast-sign" {
  preset "coroplast-cost-plus" {
    model  = "COST_PLUS"
    config = <<-EOT
      {
        "materials": {"coroplast-4mm": {"costPerSqft": 0.85}},
        "printModes": {"uv": {"inkPerSqft": 0.25, "sqmPerHour": 18}},
        "hourlyRate": 60,
        "cutting": {"rectangularPerFt": 0.1},
        "markup": {"retail": 2.4, "b2b": 1.9},
        "fileFee": 5,
        "minimumPrice": 15
      }
    EOT
  }
}
`

func TestParseCatalog(t *testing.T) {
	products, err := Parse([]byte(sampleCatalog), "catalog.hcl")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("got %d products, want 3", len(products))
	}

	banner := products[0]
	if banner.Slug != "vinyl-banner" || banner.BasePriceCents != 600 {
		t.Errorf("banner decoded wrong: %+v", banner)
	}
	if banner.PricingUnit != types.UnitPerSqft || banner.MaxWidthIn != 120 {
		t.Errorf("banner pricing fields wrong: %+v", banner)
	}
	if len(banner.Options.Materials) != 2 || banner.Options.Materials[1].Multiplier != 1.2 {
		t.Errorf("materials wrong: %+v", banner.Options.Materials)
	}
	if got := banner.Options.Addons[0]; got.Type != types.AddonPerUnit || got.PriceCents != 150 {
		t.Errorf("addon wrong: %+v", got)
	}
	if banner.Options.QuantityRange == nil || banner.Options.QuantityRange.Max != 50 {
		t.Errorf("quantity range wrong: %+v", banner.Options.QuantityRange)
	}

	cards := products[1]
	size := cards.Options.Sizes[0]
	if size.PriceByQty["100"] != 2500 || size.PriceByQty["250"] != 4500 {
		t.Errorf("price_by_qty wrong: %+v", size.PriceByQty)
	}
	if len(size.Tiers) != 1 || size.Tiers[0].MinQty != 500 || size.Tiers[0].UnitCents != 8 {
		t.Errorf("tiers wrong: %+v", size.Tiers)
	}
	if !size.Recommended {
		t.Error("recommended not decoded")
	}

	sign := products[2]
	if sign.Preset == nil {
		t.Fatal("preset missing")
	}
	if sign.Preset.Model != types.ModelCostPlus || sign.Preset.Key != "coroplast-cost-plus" {
		t.Errorf("preset decoded wrong: %+v", sign.Preset)
	}
	cp := sign.Preset.Config.CostPlus
	if cp == nil {
		t.Fatal("cost plus config missing")
	}
	if cp.Materials["coroplast-4mm"].CostPerSqft != 0.85 || cp.FileFee != 5 {
		t.Errorf("cost plus values wrong: %+v", cp)
	}
}

func TestParseRejectsBadPreset(t *testing.T) {
	src := `
product "broken" {
  preset "bad" {
    model  = "COST_PLUS"
    config = "{\"materials\": {}}"
  }
}
`
	_, err := Parse([]byte(src), "bad.hcl")
	if err == nil {
		t.Fatal("expected error for cost plus preset with no materials")
	}
	e, ok := errors.AsError(err)
	if !ok || e.Type != errors.TypeConfig {
		t.Fatalf("want CONFIG_ERROR, got %v", err)
	}
	if e.Context["product"] != "broken" {
		t.Errorf("error missing product context: %+v", e.Context)
	}
}

func TestParseRejectsUnknownModel(t *testing.T) {
	src := `
product "broken" {
  preset "bad" {
    model  = "SURGE_PRICING"
    config = "{}"
  }
}
`
	if _, err := Parse([]byte(src), "bad.hcl"); err == nil {
		t.Fatal("expected error for unknown pricing model")
	}
}

func TestParseRejectsDuplicateSlug(t *testing.T) {
	src := `
product "twice" {}
product "twice" {}
`
	if _, err := Parse([]byte(src), "dup.hcl"); err == nil {
		t.Fatal("expected duplicate slug error")
	}
}

func TestLoadPathDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "catalog.hcl"), []byte(sampleCatalog), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := LoadPath(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	ctx := context.Background()
	if _, err := store.Product(ctx, "vinyl-banner"); err != nil {
		t.Errorf("vinyl-banner not served: %v", err)
	}
	if _, err := store.Product(ctx, "no-such-product"); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("want NOT_FOUND, got %v", err)
	}

	all, err := store.Products(ctx)
	if err != nil {
		t.Fatalf("products: %v", err)
	}
	if len(all) != 3 || all[0].Slug != "business-cards" {
		t.Errorf("products not sorted by slug: %+v", all)
	}
}
