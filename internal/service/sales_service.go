package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fjod/go_store/sales-service/internal/dispatch"
	"github.com/fjod/go_store/sales-service/internal/domain"
	"github.com/fjod/go_store/sales-service/internal/repository"
)

// SalesService orchestrates the cart-to-sale conversion and the sale
// lifecycle. All business rules live in the domain package; this layer loads
// aggregates, invokes one operation, saves, and hands the drained events to
// the dispatcher.
type SalesService struct {
	sales   repository.SaleRepository
	carts   repository.CartRepository
	prices  PriceLookup
	numbers SaleNumbers
	events  dispatch.Dispatcher
}

func NewSalesService(
	sales repository.SaleRepository,
	carts repository.CartRepository,
	prices PriceLookup,
	numbers SaleNumbers,
	events dispatch.Dispatcher,
) *SalesService {
	return &SalesService{
		sales:   sales,
		carts:   carts,
		prices:  prices,
		numbers: numbers,
		events:  events,
	}
}

// CreateCart opens a new cart for a user.
func (s *SalesService) CreateCart(ctx context.Context, userID, userName string, items []*domain.CartItem) (*domain.Cart, error) {
	cart, err := domain.NewCart(userID, userName, items)
	if err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

// UpdateCart reconciles a cart against a full replacement item list.
func (s *SalesService) UpdateCart(ctx context.Context, cartID, userID, userName string, items []*domain.CartItem) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	next, err := cart.Reconcile(userID, userName, items)
	if err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return next, nil
}

// Checkout converts a cart into a Pending sale: it joins the cart lines
// against current prices, builds the sale, persists it and dispatches the
// SaleCreated event. The consumed cart is removed afterwards.
func (s *SalesService) Checkout(ctx context.Context, cartID, branchID string) (*domain.Sale, error) {
	cart, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	productIDs := make([]string, 0, len(cart.Items))
	for _, item := range cart.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.prices.GetProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	saleItems := make([]*domain.SaleItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		product, ok := products[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("product %s: %w", line.ProductID, ErrPriceNotFound)
		}
		saleItem, err := domain.NewSaleItem(product.ID, product.Name, line.Quantity, product.UnitPrice)
		if err != nil {
			return nil, err
		}
		saleItems = append(saleItems, saleItem)
	}

	sale, err := domain.NewSale(cart.UserID, cart.UserName, branchID, time.Now().UTC(), s.numbers.Next(), saleItems)
	if err != nil {
		return nil, err
	}
	if err := s.sales.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("create sale: %w", err)
	}
	s.publish(ctx, sale)

	if err := s.carts.Delete(ctx, cartID); err != nil {
		log.Printf("delete consumed cart %s error: %v \n", cartID, err)
	}
	return sale, nil
}

// AddItem adds quantity of a product to a pending sale at its current price.
func (s *SalesService) AddItem(ctx context.Context, saleID, productID string, quantity int, actor string) (*domain.Sale, error) {
	products, err := s.prices.GetProducts(ctx, []string{productID})
	if err != nil {
		return nil, err
	}
	product, ok := products[productID]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", productID, ErrPriceNotFound)
	}

	return s.mutate(ctx, saleID, func(sale *domain.Sale) error {
		item, err := domain.NewSaleItem(product.ID, product.Name, quantity, product.UnitPrice)
		if err != nil {
			return err
		}
		return sale.AddItem(item, actor)
	})
}

// UpdateItemQuantity sets the quantity of an active line.
func (s *SalesService) UpdateItemQuantity(ctx context.Context, saleID, productID string, quantity int, actor string) (*domain.Sale, error) {
	return s.mutate(ctx, saleID, func(sale *domain.Sale) error {
		return sale.UpdateItem(productID, quantity, actor)
	})
}

// RemoveItem cancels a line; removing the last active line cancels the sale.
func (s *SalesService) RemoveItem(ctx context.Context, saleID, productID, actor string) (*domain.Sale, error) {
	return s.mutate(ctx, saleID, func(sale *domain.Sale) error {
		return sale.RemoveItem(productID, actor)
	})
}

// Cancel cancels a pending sale and all of its active lines.
func (s *SalesService) Cancel(ctx context.Context, saleID, actor string) (*domain.Sale, error) {
	return s.mutate(ctx, saleID, func(sale *domain.Sale) error {
		return sale.Cancel(actor)
	})
}

// Complete finalizes a pending sale.
func (s *SalesService) Complete(ctx context.Context, saleID, actor string) (*domain.Sale, error) {
	return s.mutate(ctx, saleID, func(sale *domain.Sale) error {
		return sale.Complete(actor)
	})
}

// mutate runs one aggregate operation inside a load/save cycle with the
// version stamp carried through for optimistic concurrency.
func (s *SalesService) mutate(ctx context.Context, saleID string, op func(*domain.Sale) error) (*domain.Sale, error) {
	sale, version, err := s.sales.Get(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if err := op(sale); err != nil {
		return nil, err
	}
	if err := s.sales.Save(ctx, sale, version); err != nil {
		return nil, fmt.Errorf("save sale: %w", err)
	}
	s.publish(ctx, sale)
	return sale, nil
}

// publish drains the aggregate's event log and hands it to the dispatcher.
// Dispatch failure is logged, never surfaced: the business operation already
// committed.
func (s *SalesService) publish(ctx context.Context, sale *domain.Sale) {
	events := sale.PullEvents()
	if len(events) == 0 {
		return
	}
	if err := s.events.Dispatch(ctx, events); err != nil {
		log.Printf("dispatch events for sale %s error: %v \n", sale.ID, err)
	}
}
