package service

import (
	"context"
	"errors"

	"github.com/fjod/go_store/sales-service/internal/domain"
)

// ErrPriceNotFound reports a lookup result that omits a requested product.
var ErrPriceNotFound = errors.New("product price not found")

// PriceLookup joins product ids against current catalog prices. The pricing
// package provides the default implementation.
type PriceLookup interface {
	GetProducts(ctx context.Context, productIDs []string) (map[string]*domain.Product, error)
}

// SaleNumbers supplies the code assigned to a sale at creation time.
type SaleNumbers interface {
	Next() string
}
