package api

import (
	"time"

	"printshop-quote/core/types"
)

// QuoteRequest prices an inline product snapshot. Input is the raw,
// un-normalized selection; the engine owns all coercion rules.
type QuoteRequest struct {
	Product *types.Product         `json:"product"`
	Input   map[string]interface{} `json:"input"`
}

// ProductQuoteRequest is the body for catalog-backed quotes. The whole
// body is the raw selection.
type ProductQuoteRequest map[string]interface{}

// QuoteResponse is the wire shape of a priced quote.
type QuoteResponse struct {
	TotalCents int64                 `json:"totalCents"`
	Total      string                `json:"total"`
	Currency   types.Currency        `json:"currency"`
	UnitCents  int64                 `json:"unitCents"`
	Unit       string                `json:"unit"`
	Breakdown  []types.BreakdownLine `json:"breakdown"`
	Meta       types.QuoteMeta       `json:"meta"`
	Metadata   *ResponseMetadata     `json:"metadata,omitempty"`
}

// ResponseMetadata carries audit fields attached by the server, never by
// the engine.
type ResponseMetadata struct {
	RequestID     string `json:"requestId"`
	InputHash     string `json:"inputHash"`
	EngineVersion string `json:"engineVersion"`
	DurationMs    int64  `json:"durationMs"`
}

// ProductSummary is the list-endpoint shape.
type ProductSummary struct {
	Slug        string             `json:"slug"`
	Category    string             `json:"category,omitempty"`
	PricingUnit types.PricingUnit  `json:"pricingUnit"`
	Model       types.PricingModel `json:"model"`
	SizeCount   int                `json:"sizeCount"`
}

// ErrorDetail is the error envelope body.
type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status  string    `json:"status"`
	Version string    `json:"version"`
	Time    time.Time `json:"time"`
}
