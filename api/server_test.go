package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"printshop-quote/core/quote"
	"printshop-quote/core/types"
	"printshop-quote/internal/catalog"
)

func testProduct() *types.Product {
	return &types.Product{
		Slug:           "vinyl-banner",
		BasePriceCents: 2700,
		PricingUnit:    types.UnitPerPiece,
		Options: types.OptionsConfig{
			Addons: []types.AddonOption{
				{ID: "grommets", Name: "Grommets", PriceCents: 150, Type: types.AddonPerUnit},
			},
		},
	}
}

func testServer(t *testing.T) *Server {
	t.Helper()
	store := catalog.NewMemoryStore(testProduct(), &types.Product{
		Slug:           "yard-sign",
		BasePriceCents: 1500,
		PricingUnit:    types.UnitPerPiece,
		Category:       "rigid",
	})
	return NewServerWithStore("test", quote.NewEngine(), store)
}

func doJSON(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	decoded := map[string]json.RawMessage{}
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("%s %s: invalid JSON response: %v\n%s", method, path, err, rec.Body.String())
	}
	return rec, decoded
}

func TestInlineQuote(t *testing.T) {
	s := testServer(t)

	product, _ := json.Marshal(testProduct())
	body := `{"product": ` + string(product) + `, "input": {"quantity": 2, "addons": ["grommets"]}}`
	rec, _ := doJSON(t, s, http.MethodPost, "/quote", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var resp QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.TotalCents != 5700 || resp.Total != "57.00" {
		t.Errorf("total wrong: %+v", resp)
	}
	if resp.UnitCents != 2850 {
		t.Errorf("unit cents = %d, want 2850", resp.UnitCents)
	}
	if resp.Meta.Model != types.ModelLegacy {
		t.Errorf("model = %s, want LEGACY", resp.Meta.Model)
	}
	if resp.Metadata == nil || len(resp.Metadata.InputHash) != 64 {
		t.Errorf("metadata missing or hash wrong: %+v", resp.Metadata)
	}
}

func TestInlineQuoteRejectsMissingProduct(t *testing.T) {
	s := testServer(t)
	rec, decoded := doJSON(t, s, http.MethodPost, "/quote", `{"input": {"quantity": 1}}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, want 422", rec.Code)
	}
	if !strings.Contains(string(decoded["error"]), "INPUT_ERROR") {
		t.Errorf("error envelope wrong: %s", decoded["error"])
	}
}

func TestInlineQuoteRejectsBadQuantity(t *testing.T) {
	s := testServer(t)

	product, _ := json.Marshal(testProduct())
	body := `{"product": ` + string(product) + `, "input": {"quantity": 0}}`
	rec, decoded := doJSON(t, s, http.MethodPost, "/quote", body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, want 422", rec.Code)
	}
	if !strings.Contains(string(decoded["error"]), "VALIDATION_ERROR") {
		t.Errorf("error envelope wrong: %s", decoded["error"])
	}
}

func TestCatalogQuote(t *testing.T) {
	s := testServer(t)

	rec, _ := doJSON(t, s, http.MethodPost, "/products/yard-sign/quote", `{"quantity": 4}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var resp QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.TotalCents != 6000 {
		t.Errorf("total = %d, want 6000", resp.TotalCents)
	}
}

func TestCatalogQuoteUnknownSlug(t *testing.T) {
	s := testServer(t)
	rec, decoded := doJSON(t, s, http.MethodPost, "/products/no-such/quote", `{"quantity": 1}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
	if !strings.Contains(string(decoded["error"]), "NOT_FOUND") {
		t.Errorf("error envelope wrong: %s", decoded["error"])
	}
}

func TestListProducts(t *testing.T) {
	s := testServer(t)
	rec, decoded := doJSON(t, s, http.MethodGet, "/products", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var summaries []ProductSummary
	if err := json.Unmarshal(decoded["products"], &summaries); err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 2 || summaries[0].Slug != "vinyl-banner" {
		t.Errorf("products wrong: %+v", summaries)
	}
	if summaries[0].Model != types.ModelLegacy {
		t.Errorf("model wrong: %+v", summaries[0])
	}
}

func TestHealth(t *testing.T) {
	s := testServer(t)
	rec, _ := doJSON(t, s, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var health HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatal(err)
	}
	if health.Status != "healthy" || health.Version != "test" {
		t.Errorf("health wrong: %+v", health)
	}
}
