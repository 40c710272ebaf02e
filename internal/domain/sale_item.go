package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleItemStatus string

const (
	SaleItemActive    SaleItemStatus = "ACTIVE"
	SaleItemCancelled SaleItemStatus = "CANCELLED"
)

// Quantity thresholds for the tiered discount.
const (
	discountTier1MinQuantity = 4  // 10%
	discountTier2MinQuantity = 10 // 20%
)

// SaleItem is one line of a Sale. The discount and the discounted total are
// always derived from the current quantity and unit price, never stored.
type SaleItem struct {
	ID          string         `json:"id"`
	ProductID   string         `json:"product_id"`
	ProductName string         `json:"product_name"`
	Quantity    int            `json:"quantity"`
	UnitPrice   Money          `json:"unit_price"`
	Status      SaleItemStatus `json:"status"`
}

func NewSaleItem(productID, productName string, quantity int, unitPrice Money) (*SaleItem, error) {
	item := &SaleItem{
		ID:          uuid.NewString(),
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Status:      SaleItemActive,
	}
	if err := item.check(); err != nil {
		return nil, err
	}
	return item, nil
}

func (i *SaleItem) check() error {
	return validate(
		required("productId", i.ProductID),
		required("productName", i.ProductName),
		intRange("quantity", i.Quantity, MinItemQuantity, MaxItemQuantity),
		nonNegativeAmount("unitPrice", i.UnitPrice.Amount),
	)
}

// DiscountPercent derives the quantity tier: 0% below 4 units, 10% from 4,
// 20% from 10 up to the quantity cap.
func (i *SaleItem) DiscountPercent() int64 {
	switch {
	case i.Quantity >= discountTier2MinQuantity:
		return 20
	case i.Quantity >= discountTier1MinQuantity:
		return 10
	default:
		return 0
	}
}

// TotalWithDiscount is unitPrice * quantity * (1 - discount/100) in exact
// decimal arithmetic.
func (i *SaleItem) TotalWithDiscount() Money {
	factor := decimal.NewFromInt(100 - i.DiscountPercent()).Div(decimal.NewFromInt(100))
	return i.UnitPrice.Mul(int64(i.Quantity)).MulDecimal(factor)
}

// UpdateQuantity replaces the quantity after re-validating the bounds.
// A cancelled line is frozen and can not be updated.
func (i *SaleItem) UpdateQuantity(quantity int) error {
	if i.Status == SaleItemCancelled {
		return ErrItemCancelled
	}
	if err := validate(intRange("quantity", quantity, MinItemQuantity, MaxItemQuantity)); err != nil {
		return err
	}
	i.Quantity = quantity
	return nil
}

// Cancel marks the line cancelled. Calling it twice is harmless; events for
// cancellation are the owning Sale's concern, not the line's.
func (i *SaleItem) Cancel() {
	i.Status = SaleItemCancelled
}

func (i *SaleItem) IsActive() bool {
	return i.Status == SaleItemActive
}
