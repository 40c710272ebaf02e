package repository

import (
	"context"
	"errors"

	"github.com/fjod/go_store/sales-service/internal/domain"
)

var (
	ErrSaleNotFound    = errors.New("sale not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrVersionConflict = errors.New("sale was modified concurrently")
)

// SaleRepository persists Sale aggregates. Concurrent writers are arbitrated
// here, not in the domain: Get hands out the current version stamp and Save
// rejects a stale one.
type SaleRepository interface {
	Get(ctx context.Context, saleID string) (*domain.Sale, int64, error)
	Create(ctx context.Context, sale *domain.Sale) error
	Save(ctx context.Context, sale *domain.Sale, version int64) error
}

// CartRepository persists Cart aggregates.
type CartRepository interface {
	Get(ctx context.Context, cartID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, cartID string) error
}
