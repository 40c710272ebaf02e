package store

import (
	"context"
	"errors"
	"sync"

	"github.com/fjod/go_store/sales-service/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// MemoryStore is a thread-safe in-memory product price table. It backs the
// price lookup in tests and local runs; a real deployment would put a catalog
// service behind the same interface.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[string]domain.Product
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[string]domain.Product),
	}
}

// Put inserts or replaces a product entry.
func (s *MemoryStore) Put(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ID] = product
}

func (s *MemoryStore) GetProduct(_ context.Context, productID string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	product, ok := s.products[productID]
	if !ok {
		return nil, ErrProductNotFound
	}
	// Return a copy so callers can not mutate the stored entry
	copied := product
	return &copied, nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
