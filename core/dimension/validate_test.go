package dimension

import (
	"reflect"
	"strings"
	"testing"

	"printshop-quote/core/types"
)

func TestValidateRollWidthRejection(t *testing.T) {
	table := DefaultTable()
	res := table.Validate(70, 36, "vinyl", &types.Product{Slug: "decal"})
	if res.Valid {
		t.Fatal("expected 70\" width to be rejected on a 63\" roll")
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "62\"") {
		t.Errorf("error should name the 62\" effective width: %v", res.Errors)
	}
}

func TestValidateRollLengthUnbounded(t *testing.T) {
	table := DefaultTable()
	res := table.Validate(48, 600, "13oz-banner", &types.Product{Slug: "banner"})
	if !res.Valid {
		t.Errorf("roll length should be unbounded: %v", res.Errors)
	}
}

func TestValidateBoardBothAxes(t *testing.T) {
	table := DefaultTable()
	res := table.Validate(50, 100, "coroplast", &types.Product{Slug: "yard-sign"})
	if res.Valid {
		t.Fatal("expected both board violations")
	}
	if len(res.Errors) != 2 {
		t.Fatalf("expected 2 collected errors, got %v", res.Errors)
	}
	if !strings.Contains(res.Errors[0], "48\"") || !strings.Contains(res.Errors[1], "96\"") {
		t.Errorf("board limits not reported: %v", res.Errors)
	}
}

func TestValidateAliasLookup(t *testing.T) {
	table := DefaultTable()
	// "dibond" is an alias for the ACM board entry.
	res := table.Validate(60, 40, "Dibond", &types.Product{Slug: "sign"})
	if res.Valid {
		t.Errorf("alias lookup failed, 60\" should exceed the 48\" sheet: %v", res.Errors)
	}
	// An unknown material must not substring-match a roll entry.
	res = table.Validate(60, 40, "super-vinyl-9000", &types.Product{Slug: "sign", Category: "rigid-signs"})
	if res.Valid {
		t.Errorf("unknown material should fall back to the board category limits: %v", res.Errors)
	}
}

func TestValidateCategoryFallback(t *testing.T) {
	table := DefaultTable()
	res := table.Validate(70, 36, "", &types.Product{Slug: "decal", Category: "decals"})
	if res.Valid {
		t.Fatal("generic roll fallback should cap width at 62\"")
	}
	if !strings.Contains(res.Errors[0], "62\"") {
		t.Errorf("generic roll error should mention 62\": %v", res.Errors)
	}
}

func TestValidateProductBoundsTakePrecedence(t *testing.T) {
	table := DefaultTable()
	product := &types.Product{Slug: "wide-banner", MaxWidthIn: 120, Category: "banners"}
	// Product allows 120" even though the generic roll caps at 62".
	res := table.Validate(100, 36, "", product)
	if !res.Valid {
		t.Errorf("product-level max width should override material limit: %v", res.Errors)
	}
	res = table.Validate(130, 36, "", product)
	if res.Valid || !strings.Contains(res.Errors[0], "120") {
		t.Errorf("product-level bound not enforced: %v", res.Errors)
	}
}

func TestValidateShortCircuitOnNonPositive(t *testing.T) {
	table := DefaultTable()
	res := table.Validate(-1, 0, "vinyl", &types.Product{MaxWidthIn: 10})
	if res.Valid || len(res.Errors) != 1 {
		t.Errorf("non-positive dimensions should short-circuit with one error: %v", res.Errors)
	}
}

// Validation is a pure function: same arguments, same result.
func TestValidateIdempotent(t *testing.T) {
	table := DefaultTable()
	product := &types.Product{Slug: "sign", Category: "rigid-signs"}
	first := table.Validate(50, 100, "coroplast", product)
	second := table.Validate(50, 100, "coroplast", product)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("validation not idempotent: %v vs %v", first, second)
	}
}
