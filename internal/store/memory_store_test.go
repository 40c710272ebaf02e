package store

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_store/sales-service/internal/domain"
)

func TestGetProduct_Success(t *testing.T) {
	s := NewMemoryStore()
	s.Put(domain.Product{ID: "p-1", Name: "Keyboard", UnitPrice: domain.NewMoney(decimal.NewFromInt(150), "BRL")})

	product, err := s.GetProduct(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", product.Name)
}

func TestGetProduct_NotFound(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.GetProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetProduct_ReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.Put(domain.Product{ID: "p-1", Name: "Keyboard", UnitPrice: domain.NewMoney(decimal.NewFromInt(150), "BRL")})

	first, err := s.GetProduct(context.Background(), "p-1")
	require.NoError(t, err)
	first.Name = "mutated"

	second, err := s.GetProduct(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", second.Name)
}

func TestPut_ConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Put(domain.Product{ID: "p-1", Name: "Keyboard", UnitPrice: domain.NewMoney(decimal.NewFromInt(150), "BRL")})
			_, _ = s.GetProduct(context.Background(), "p-1")
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, s.Len())
}
