// Package catalog loads and serves read-only product configuration.
// Catalog reads happen before the engine is invoked; the engine itself
// never touches the store.
package catalog

import (
	"context"
	"sort"

	"printshop-quote/core/types"
	"printshop-quote/internal/errors"
)

// Store serves product snapshots by slug.
type Store interface {
	// Product returns the product for a slug, or a NOT_FOUND error.
	Product(ctx context.Context, slug string) (*types.Product, error)

	// Products returns all products ordered by slug.
	Products(ctx context.Context) ([]*types.Product, error)
}

// MemoryStore is an immutable in-memory Store.
type MemoryStore struct {
	products map[string]*types.Product
}

// NewMemoryStore builds a store from product snapshots.
func NewMemoryStore(products ...*types.Product) *MemoryStore {
	byID := make(map[string]*types.Product, len(products))
	for _, p := range products {
		byID[p.Slug] = p
	}
	return &MemoryStore{products: byID}
}

// Product implements Store.
func (s *MemoryStore) Product(ctx context.Context, slug string) (*types.Product, error) {
	p, ok := s.products[slug]
	if !ok {
		return nil, errors.NotFound("product", slug)
	}
	return p, nil
}

// Products implements Store.
func (s *MemoryStore) Products(ctx context.Context) ([]*types.Product, error) {
	out := make([]*types.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}
