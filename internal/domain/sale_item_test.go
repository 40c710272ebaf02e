package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeItem(t *testing.T, quantity int, unitPrice Money) *SaleItem {
	t.Helper()
	item, err := NewSaleItem("p-1", "Product 1", quantity, unitPrice)
	require.NoError(t, err)
	return item
}

func TestNewSaleItem_Success(t *testing.T) {
	item, err := NewSaleItem("p-1", "Product 1", 5, brl("100"))
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, SaleItemActive, item.Status)
}

func TestNewSaleItem_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		productID   string
		productName string
		quantity    int
		unitPrice   Money
	}{
		{"missing product id", "", "Product 1", 5, brl("100")},
		{"missing product name", "p-1", "", 5, brl("100")},
		{"quantity too low", "p-1", "Product 1", 0, brl("100")},
		{"quantity too high", "p-1", "Product 1", 21, brl("100")},
		{"negative price", "p-1", "Product 1", 5, brl("-1")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSaleItem(tt.productID, tt.productName, tt.quantity, tt.unitPrice)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestDiscountPercent_Tiers(t *testing.T) {
	tests := []struct {
		quantity int
		want     int64
	}{
		{1, 0}, {2, 0}, {3, 0},
		{4, 10}, {5, 10}, {9, 10},
		{10, 20}, {15, 20}, {20, 20},
	}
	for _, tt := range tests {
		item := activeItem(t, tt.quantity, brl("100"))
		assert.Equal(t, tt.want, item.DiscountPercent(), "quantity %d", tt.quantity)
	}
}

func TestTotalWithDiscount(t *testing.T) {
	tests := []struct {
		quantity int
		want     string
	}{
		{3, "300"},  // no discount
		{5, "450"},  // 10% off 500
		{10, "800"}, // 20% off 1000
	}
	for _, tt := range tests {
		item := activeItem(t, tt.quantity, brl("100"))
		assert.True(t, item.TotalWithDiscount().Equal(brl(tt.want)),
			"quantity %d: got %s", tt.quantity, item.TotalWithDiscount())
	}
}

func TestTotalWithDiscount_ExactDecimals(t *testing.T) {
	item := activeItem(t, 4, brl("19.99"))
	// 19.99 * 4 * 0.9 = 71.964 exactly
	assert.True(t, item.TotalWithDiscount().Equal(brl("71.964")))
}

func TestUpdateQuantity_Revalidates(t *testing.T) {
	item := activeItem(t, 5, brl("100"))

	require.NoError(t, item.UpdateQuantity(10))
	assert.Equal(t, 10, item.Quantity)
	assert.Equal(t, int64(20), item.DiscountPercent())

	err := item.UpdateQuantity(21)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 10, item.Quantity, "failed update must not change state")
}

func TestUpdateQuantity_CancelledItem_Fails(t *testing.T) {
	item := activeItem(t, 5, brl("100"))
	item.Cancel()

	err := item.UpdateQuantity(6)
	assert.ErrorIs(t, err, ErrItemCancelled)
	assert.Equal(t, 5, item.Quantity, "cancelled quantity is frozen")
}

func TestCancel_Idempotent(t *testing.T) {
	item := activeItem(t, 5, brl("100"))
	item.Cancel()
	item.Cancel()
	assert.Equal(t, SaleItemCancelled, item.Status)
	assert.False(t, item.IsActive())
}
