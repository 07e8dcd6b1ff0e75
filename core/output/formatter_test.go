package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"printshop-quote/core/types"
)

func sampleResult() *types.QuoteResult {
	return &types.QuoteResult{
		TotalCents: 8200,
		Currency:   types.CurrencyCAD,
		Breakdown: []types.BreakdownLine{
			{Label: "vinyl-banner × 2", AmountCents: 5400},
			{Label: "Grommets", AmountCents: 300},
			{Label: "Design service", AmountCents: 2500},
		},
		Meta:      types.QuoteMeta{Model: types.ModelLegacy},
		UnitCents: 4100,
	}
}

func TestCLIFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := New(FormatCLI).Render(&buf, sampleResult()); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"$54.00", "$82.00", "$41.00", "LEGACY", "Grommets"} {
		if !strings.Contains(out, want) {
			t.Errorf("CLI output missing %q:\n%s", want, out)
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := New(FormatJSON).Render(&buf, sampleResult()); err != nil {
		t.Fatalf("render: %v", err)
	}
	var decoded struct {
		TotalCents int64  `json:"totalCents"`
		Total      string `json:"total"`
		Breakdown  []struct {
			Display string `json:"display"`
		} `json:"breakdown"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.TotalCents != 8200 || decoded.Total != "82.00" {
		t.Errorf("totals wrong: %+v", decoded)
	}
	if len(decoded.Breakdown) != 3 || decoded.Breakdown[0].Display != "54.00" {
		t.Errorf("breakdown wrong: %+v", decoded.Breakdown)
	}
}
