// Package output renders quote results for humans and machines.
// This package never computes prices.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"printshop-quote/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	Format() Format
	Render(w io.Writer, result *types.QuoteResult) error
}

// New returns the formatter for a format name, defaulting to CLI.
func New(format Format) Formatter {
	if format == FormatJSON {
		return &JSONFormatter{}
	}
	return &CLIFormatter{}
}

// CLIFormatter renders a quote as an aligned breakdown table.
type CLIFormatter struct{}

func (f *CLIFormatter) Format() Format { return FormatCLI }

func (f *CLIFormatter) Render(w io.Writer, result *types.QuoteResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, line := range result.Breakdown {
		fmt.Fprintf(tw, "%s\t%s\n", line.Label, types.FormatDollars(line.AmountCents))
	}
	fmt.Fprintf(tw, "Total (%s)\t%s\n", result.Currency, types.FormatDollars(result.TotalCents))
	fmt.Fprintf(tw, "Per unit\t%s\n", types.FormatDollars(result.UnitCents))
	fmt.Fprintf(tw, "Pricing model\t%s\n", result.Meta.Model)
	return tw.Flush()
}

// JSONFormatter renders a quote with both cent integers and dollar strings.
type JSONFormatter struct{}

func (f *JSONFormatter) Format() Format { return FormatJSON }

// jsonQuote is the machine-readable shape.
type jsonQuote struct {
	TotalCents int64           `json:"totalCents"`
	Total      string          `json:"total"`
	Currency   types.Currency  `json:"currency"`
	UnitCents  int64           `json:"unitCents"`
	Unit       string          `json:"unit"`
	Breakdown  []jsonLine      `json:"breakdown"`
	Meta       types.QuoteMeta `json:"meta"`
}

type jsonLine struct {
	Label       string `json:"label"`
	AmountCents int64  `json:"amount"`
	Display     string `json:"display"`
}

func (f *JSONFormatter) Render(w io.Writer, result *types.QuoteResult) error {
	out := jsonQuote{
		TotalCents: result.TotalCents,
		Total:      types.Dollars(result.TotalCents).StringFixed(2),
		Currency:   result.Currency,
		UnitCents:  result.UnitCents,
		Unit:       types.Dollars(result.UnitCents).StringFixed(2),
		Meta:       result.Meta,
	}
	for _, line := range result.Breakdown {
		out.Breakdown = append(out.Breakdown, jsonLine{
			Label:       line.Label,
			AmountCents: line.AmountCents,
			Display:     types.Dollars(line.AmountCents).StringFixed(2),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
