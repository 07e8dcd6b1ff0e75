// Package api is the thin HTTP layer over the quote engine. It ingests
// requests, orchestrates the engine and serializes results. It never
// computes prices.
package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"printshop-quote/core/quote"
	"printshop-quote/core/types"
	"printshop-quote/internal/catalog"
	"printshop-quote/internal/errors"
	"printshop-quote/internal/logging"
)

// Server is the API server.
type Server struct {
	engine  *quote.Engine
	store   catalog.Store
	router  chi.Router
	version string
}

// NewServer creates a server without a catalog store. Catalog-backed
// routes respond 404.
func NewServer(version string, engine *quote.Engine) *Server {
	return NewServerWithStore(version, engine, nil)
}

// NewServerWithStore creates a server backed by a catalog store.
func NewServerWithStore(version string, engine *quote.Engine, store catalog.Store) *Server {
	s := &Server{
		engine:  engine,
		store:   store,
		router:  chi.NewRouter(),
		version: version,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)

	s.router.Post("/quote", s.handleQuote)
	s.router.Post("/products/{slug}/quote", s.handleProductQuote)
	s.router.Get("/products", s.handleListProducts)
	s.router.Get("/products/{slug}", s.handleGetProduct)
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/version", s.handleVersion)
}

// handleQuote handles POST /quote with an inline product snapshot.
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.TypeInput, "invalid JSON body", err))
		return
	}
	if req.Product == nil {
		s.writeError(w, r, errors.Input("product is required"))
		return
	}

	result, err := s.engine.Quote(req.Product, req.Input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeQuote(w, r, result, computeInputHash(req), start)
}

// handleProductQuote handles POST /products/{slug}/quote against the
// catalog store.
func (s *Server) handleProductQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if s.store == nil {
		s.writeError(w, r, errors.NotFound("product", chi.URLParam(r, "slug")))
		return
	}

	var body ProductQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, r, errors.Wrap(errors.TypeInput, "invalid JSON body", err))
		return
	}

	product, err := s.store.Product(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.engine.Quote(product, body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeQuote(w, r, result, computeInputHash(body), start)
}

// handleListProducts handles GET /products.
func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeJSON(w, map[string]interface{}{"products": []ProductSummary{}, "count": 0}, http.StatusOK)
		return
	}

	products, err := s.store.Products(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	summaries := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		model := types.ModelLegacy
		if p.Preset != nil {
			model = p.Preset.Model
		}
		summaries = append(summaries, ProductSummary{
			Slug:        p.Slug,
			Category:    p.Category,
			PricingUnit: p.PricingUnit,
			Model:       model,
			SizeCount:   len(p.Options.Sizes),
		})
	}
	s.writeJSON(w, map[string]interface{}{"products": summaries, "count": len(summaries)}, http.StatusOK)
}

// handleGetProduct handles GET /products/{slug}.
func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, errors.NotFound("product", chi.URLParam(r, "slug")))
		return
	}
	product, err := s.store.Product(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, product, http.StatusOK)
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, HealthResponse{
		Status:  "healthy",
		Version: s.version,
		Time:    time.Now().UTC(),
	}, http.StatusOK)
}

// handleVersion handles GET /version.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"engine":  "printshop-quote",
	}, http.StatusOK)
}

func (s *Server) writeQuote(w http.ResponseWriter, r *http.Request, result *types.QuoteResult, inputHash string, start time.Time) {
	resp := QuoteResponse{
		TotalCents: result.TotalCents,
		Total:      types.Dollars(result.TotalCents).StringFixed(2),
		Currency:   result.Currency,
		UnitCents:  result.UnitCents,
		Unit:       types.Dollars(result.UnitCents).StringFixed(2),
		Breakdown:  result.Breakdown,
		Meta:       result.Meta,
		Metadata: &ResponseMetadata{
			RequestID:     middleware.GetReqID(r.Context()),
			InputHash:     inputHash,
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}
	s.writeJSON(w, resp, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	detail := ErrorDetail{Code: string(errors.TypeInternal), Message: err.Error()}

	if e, ok := errors.AsError(err); ok {
		status = e.Status()
		detail = ErrorDetail{Code: string(e.Type), Message: e.Message, Details: e.Details}
	}

	if status >= http.StatusInternalServerError {
		logging.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.String("requestId", middleware.GetReqID(r.Context())),
			zap.Error(err))
	}

	s.writeJSON(w, map[string]interface{}{"error": detail}, status)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the server.
func (s *Server) ListenAndServe(addr string) error {
	logging.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, s)
}

// computeInputHash returns a deterministic digest of the raw request so
// identical requests can be correlated across logs.
func computeInputHash(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("unhashable-%T", v)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
