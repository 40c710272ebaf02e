package repository

import (
	"context"
	"sync"

	"github.com/fjod/go_store/sales-service/internal/domain"
)

type saleRecord struct {
	sale    *domain.Sale
	version int64
}

// MemorySaleRepository keeps sales in a mutex-guarded map with a version
// stamp per aggregate. Reads and writes deep-copy so callers never alias the
// stored state.
type MemorySaleRepository struct {
	mu    sync.RWMutex
	sales map[string]saleRecord
}

func NewMemorySaleRepository() *MemorySaleRepository {
	return &MemorySaleRepository{
		sales: make(map[string]saleRecord),
	}
}

func (r *MemorySaleRepository) Get(_ context.Context, saleID string) (*domain.Sale, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.sales[saleID]
	if !ok {
		return nil, 0, ErrSaleNotFound
	}
	return rec.sale.Clone(), rec.version, nil
}

func (r *MemorySaleRepository) Create(_ context.Context, sale *domain.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales[sale.ID] = saleRecord{sale: sale.Clone(), version: 1}
	return nil
}

func (r *MemorySaleRepository) Save(_ context.Context, sale *domain.Sale, version int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.sales[sale.ID]
	if !ok {
		return ErrSaleNotFound
	}
	if rec.version != version {
		return ErrVersionConflict
	}
	r.sales[sale.ID] = saleRecord{sale: sale.Clone(), version: version + 1}
	return nil
}

// MemoryCartRepository keeps carts in a mutex-guarded map.
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{
		carts: make(map[string]*domain.Cart),
	}
}

func (r *MemoryCartRepository) Get(_ context.Context, cartID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cart, ok := r.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}
	return copyCart(cart), nil
}

func (r *MemoryCartRepository) Save(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.ID] = copyCart(cart)
	return nil
}

func (r *MemoryCartRepository) Delete(_ context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.carts[cartID]; !ok {
		return ErrCartNotFound
	}
	delete(r.carts, cartID)
	return nil
}

func copyCart(cart *domain.Cart) *domain.Cart {
	copied := *cart
	copied.Items = append([]domain.CartItem(nil), cart.Items...)
	return &copied
}
