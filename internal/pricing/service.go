package pricing

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/fjod/go_store/sales-service/internal/cache"
	"github.com/fjod/go_store/sales-service/internal/domain"
	"golang.org/x/sync/singleflight"
)

// PriceSource is the external catalog the lookup falls back to on a cache
// miss.
type PriceSource interface {
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
}

// PriceService is a cache-aside price lookup. Concurrent misses for the same
// product are coalesced so the source sees one request per key.
type PriceService struct {
	source PriceSource
	cache  cache.PriceCache
	sfg    singleflight.Group // Prevents cache stampede
}

func NewPriceService(source PriceSource, priceCache cache.PriceCache) *PriceService {
	return &PriceService{
		source: source,
		cache:  priceCache,
	}
}

// GetProduct resolves one product's current name and unit price.
func (s *PriceService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	v, err, _ := s.sfg.Do(productID, func() (interface{}, error) {

		product, err := s.cache.Get(ctx, productID)
		if err == nil {
			return product, nil // price is in cache
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("price cache get error: %v \n", err) // log cache error but continue
		}

		product, errGet := s.source.GetProduct(ctx, productID)
		if errGet != nil {
			return nil, errGet
		}

		// set cache
		go func() {
			errSet := s.cache.Set(context.Background(), product)
			if errSet != nil {
				log.Printf("price cache set error: %v \n", errSet)
			}
		}()

		return product, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Product), nil
}

// GetProducts resolves a batch of product ids, failing if any of them is
// unknown. The checkout path uses it to join cart lines against prices.
func (s *PriceService) GetProducts(ctx context.Context, productIDs []string) (map[string]*domain.Product, error) {
	products := make(map[string]*domain.Product, len(productIDs))
	for _, id := range productIDs {
		if _, ok := products[id]; ok {
			continue
		}
		product, err := s.GetProduct(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("price lookup for product %s: %w", id, err)
		}
		products[id] = product
	}
	return products, nil
}
