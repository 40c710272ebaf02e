package service

import (
	"context"
	"errors"
	"sync"

	"github.com/fjod/go_store/sales-service/internal/domain"
)

var ErrUnknownProductForTest = errors.New("product not found")

// MockPriceLookup implements PriceLookup for testing. With Partial set it
// silently drops unknown ids instead of failing, like a buggy implementation
// would.
type MockPriceLookup struct {
	Products map[string]*domain.Product
	Partial  bool
	Err      error
}

func (m *MockPriceLookup) GetProducts(_ context.Context, productIDs []string) (map[string]*domain.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make(map[string]*domain.Product, len(productIDs))
	for _, id := range productIDs {
		product, ok := m.Products[id]
		if !ok {
			if m.Partial {
				continue
			}
			return nil, ErrUnknownProductForTest
		}
		result[id] = product
	}
	return result, nil
}

// FixedNumbers implements SaleNumbers with a canned sequence
type FixedNumbers struct {
	Numbers []string
	next    int
}

func (f *FixedNumbers) Next() string {
	if f.next >= len(f.Numbers) {
		return "SALE-OVERFLOW"
	}
	n := f.Numbers[f.next]
	f.next++
	return n
}

// RecordingDispatcher captures every dispatched batch
type RecordingDispatcher struct {
	mu      sync.Mutex
	Batches [][]domain.Event
	Err     error
}

func (d *RecordingDispatcher) Dispatch(_ context.Context, events []domain.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Batches = append(d.Batches, events)
	return d.Err
}

func (d *RecordingDispatcher) all() []domain.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	var flat []domain.Event
	for _, batch := range d.Batches {
		flat = append(flat, batch...)
	}
	return flat
}
