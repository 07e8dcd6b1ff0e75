// Package dimension validates normalized dimensions against product and
// material physical constraints before any price computation runs.
package dimension

import "strings"

// StockType distinguishes the two substrate classes: roll stock has
// unbounded length but a capped printable width; board stock is a fixed
// sheet with both axes capped.
type StockType string

const (
	StockRoll  StockType = "roll"
	StockBoard StockType = "board"
)

// Limits describes the physical constraints of one material entry.
type Limits struct {
	Stock StockType

	// Roll stock: nominal roll width and the trim lost on each side.
	NominalRollWidthIn float64
	TrimPerSideIn      float64

	// Board stock: sheet maxima.
	MaxWidthIn  float64
	MaxHeightIn float64
}

// EffectiveWidthIn is the largest printable width for this material.
func (l Limits) EffectiveWidthIn() float64 {
	if l.Stock == StockRoll {
		return l.NominalRollWidthIn - 2*l.TrimPerSideIn
	}
	return l.MaxWidthIn
}

// Table resolves material names to physical limits through a normalized
// alias map. Substring fuzzy matching is deliberately not used: aliases
// are explicit so "banner" cannot cross-match "blockout-vinyl-banner"
// class materials by accident.
type Table struct {
	limits     map[string]Limits
	aliases    map[string]string
	categories map[string]StockType
}

// Generic fallback limits when no material entry matches.
const (
	genericRollWidthIn  = 63
	genericTrimIn       = 0.5
	genericBoardWidthIn = 48
	genericBoardHeight  = 96
)

// DefaultTable returns the shop's standard material constraint table.
func DefaultTable() Table {
	limits := map[string]Limits{
		"vinyl":       {Stock: StockRoll, NominalRollWidthIn: 63, TrimPerSideIn: 0.5},
		"13oz-banner": {Stock: StockRoll, NominalRollWidthIn: 63, TrimPerSideIn: 0.5},
		"mesh-banner": {Stock: StockRoll, NominalRollWidthIn: 126, TrimPerSideIn: 0.5},
		"fabric":      {Stock: StockRoll, NominalRollWidthIn: 120, TrimPerSideIn: 1},
		"magnet":      {Stock: StockRoll, NominalRollWidthIn: 24, TrimPerSideIn: 0.25},
		"coroplast":   {Stock: StockBoard, MaxWidthIn: 48, MaxHeightIn: 96},
		"foamboard":   {Stock: StockBoard, MaxWidthIn: 48, MaxHeightIn: 96},
		"acm":         {Stock: StockBoard, MaxWidthIn: 48, MaxHeightIn: 96},
		"acrylic":     {Stock: StockBoard, MaxWidthIn: 48, MaxHeightIn: 96},
		"pvc":         {Stock: StockBoard, MaxWidthIn: 48, MaxHeightIn: 96},
	}
	aliases := map[string]string{
		"adhesive-vinyl":       "vinyl",
		"cut-vinyl":            "vinyl",
		"perforated-vinyl":     "vinyl",
		"vinyl-banner":         "13oz-banner",
		"banner":               "13oz-banner",
		"blockout-vinyl-banner": "13oz-banner",
		"18oz-banner":          "13oz-banner",
		"mesh":                 "mesh-banner",
		"polyester-fabric":     "fabric",
		"magnetic":             "magnet",
		"car-magnet":           "magnet",
		"corrugated-plastic":   "coroplast",
		"foam-board":           "foamboard",
		"foamcore":             "foamboard",
		"aluminum-composite":   "acm",
		"dibond":               "acm",
		"alupanel":             "acm",
		"sintra":               "pvc",
		"plexiglass":           "acrylic",
	}
	categories := map[string]StockType{
		"banners":     StockRoll,
		"decals":      StockRoll,
		"stickers":    StockRoll,
		"wall-decals": StockRoll,
		"magnets":     StockRoll,
		"rigid-signs": StockBoard,
		"yard-signs":  StockBoard,
		"a-frames":    StockBoard,
	}
	return Table{limits: limits, aliases: aliases, categories: categories}
}

// NormalizeKey lowercases and hyphenates a material name or id.
func NormalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	return s
}

// Lookup resolves a material to its canonical name and limits.
func (t Table) Lookup(material string) (string, Limits, bool) {
	key := NormalizeKey(material)
	if key == "" {
		return "", Limits{}, false
	}
	if canonical, ok := t.aliases[key]; ok {
		key = canonical
	}
	l, ok := t.limits[key]
	return key, l, ok
}

// CategoryLimits infers generic limits from a product category.
func (t Table) CategoryLimits(category string) (string, Limits) {
	stock, ok := t.categories[NormalizeKey(category)]
	if !ok {
		stock = StockRoll
	}
	if stock == StockBoard {
		return "rigid board", Limits{Stock: StockBoard, MaxWidthIn: genericBoardWidthIn, MaxHeightIn: genericBoardHeight}
	}
	return "roll media", Limits{Stock: StockRoll, NominalRollWidthIn: genericRollWidthIn, TrimPerSideIn: genericTrimIn}
}
