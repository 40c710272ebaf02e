package cache

import (
	"context"
	"errors"

	"github.com/fjod/go_store/sales-service/internal/domain"
)

var ErrCacheMiss = errors.New("price is not cached")

// PriceCache caches catalog lookups so the checkout path does not hit the
// price source on every line.
type PriceCache interface {
	Get(ctx context.Context, productID string) (*domain.Product, error)
	Set(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, productID string) error
}

// NoopCache misses on every read. Used when no redis address is configured.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) (*domain.Product, error) {
	return nil, ErrCacheMiss
}

func (NoopCache) Set(context.Context, *domain.Product) error { return nil }

func (NoopCache) Delete(context.Context, string) error { return nil }
