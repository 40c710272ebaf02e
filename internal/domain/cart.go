package domain

import (
	"github.com/google/uuid"
)

// Quantity bounds shared by cart and sale line items.
const (
	MinItemQuantity = 1
	MaxItemQuantity = 20
)

// CartItem is one prospective order line.
type CartItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Image       string `json:"image,omitempty"`
}

func NewCartItem(productID, productName string, quantity int, image string) (CartItem, error) {
	item := CartItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		Image:       image,
	}
	if err := item.check(); err != nil {
		return CartItem{}, err
	}
	return item, nil
}

func (i CartItem) check() error {
	return validate(
		required("productId", i.ProductID),
		required("productName", i.ProductName),
		intRange("quantity", i.Quantity, MinItemQuantity, MaxItemQuantity),
	)
}

// Cart holds a user's prospective order until it is converted into a Sale.
// Conversion consumes the cart; removing the consumed cart is the persistence
// layer's job, not modeled here.
type Cart struct {
	ID       string     `json:"id"`
	UserID   string     `json:"user_id"`
	UserName string     `json:"user_name"`
	Items    []CartItem `json:"items"`
}

// NewCart validates the initial item list and builds the aggregate. Items are
// passed as pointers so a missing line can be told apart from a malformed one:
// a nil entry is a domain error, bad field values are validation errors.
func NewCart(userID, userName string, items []*CartItem) (*Cart, error) {
	owned, err := copyCartItems(items)
	if err != nil {
		return nil, err
	}
	cart := &Cart{
		ID:       uuid.NewString(),
		UserID:   userID,
		UserName: userName,
		Items:    owned,
	}
	if err := cart.check(); err != nil {
		return nil, err
	}
	return cart, nil
}

func (c *Cart) check() error {
	if err := validate(
		required("userId", c.UserID),
		required("userName", c.UserName),
		func() *FieldError {
			if len(c.Items) == 0 {
				return &FieldError{Field: "items", Message: "must contain at least one item"}
			}
			return nil
		},
		func() *FieldError {
			seen := make(map[string]bool, len(c.Items))
			for _, item := range c.Items {
				if seen[item.ProductID] {
					return &FieldError{Field: "items", Message: "must not contain duplicate products"}
				}
				seen[item.ProductID] = true
			}
			return nil
		},
	); err != nil {
		return err
	}
	for _, item := range c.Items {
		if err := item.check(); err != nil {
			return err
		}
	}
	return nil
}

// Reconcile applies a full replacement item list against the current one and
// returns a new, revalidated cart; the receiver is left untouched. Lines
// absent from newItems are dropped, lines present in both get the incoming
// quantity, lines new to the list are appended. userID/userName are replaced
// only when non-empty, and a nil newItems slice means "keep the items as-is".
func (c *Cart) Reconcile(userID, userName string, newItems []*CartItem) (*Cart, error) {
	next := &Cart{
		ID:       c.ID,
		UserID:   c.UserID,
		UserName: c.UserName,
	}
	if userID != "" {
		next.UserID = userID
	}
	if userName != "" {
		next.UserName = userName
	}

	if newItems == nil {
		next.Items = append([]CartItem(nil), c.Items...)
	} else {
		desired, err := copyCartItems(newItems)
		if err != nil {
			return nil, err
		}
		next.Items = diffCartItems(c.Items, desired)
	}

	if err := next.check(); err != nil {
		return nil, err
	}
	return next, nil
}

// diffCartItems merges a desired item list into the current one: retained
// lines keep their position with the desired quantity, new lines are appended
// in input order.
func diffCartItems(current, desired []CartItem) []CartItem {
	byProduct := make(map[string]CartItem, len(desired))
	for _, item := range desired {
		byProduct[item.ProductID] = item
	}

	merged := make([]CartItem, 0, len(desired))
	kept := make(map[string]bool, len(desired))
	for _, item := range current {
		want, ok := byProduct[item.ProductID]
		if !ok {
			continue // removed
		}
		item.Quantity = want.Quantity
		merged = append(merged, item)
		kept[item.ProductID] = true
	}
	for _, item := range desired {
		if !kept[item.ProductID] {
			merged = append(merged, item)
		}
	}
	return merged
}

func copyCartItems(items []*CartItem) ([]CartItem, error) {
	owned := make([]CartItem, 0, len(items))
	for _, item := range items {
		if item == nil {
			return nil, ErrItemRequired
		}
		owned = append(owned, *item)
	}
	return owned, nil
}
