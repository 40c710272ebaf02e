package domain

import "time"

// Event is an immutable fact recorded by the Sale aggregate. Events are
// appended to the aggregate's own log and handed to an external dispatcher
// after the unit of work commits; the aggregate never dispatches anything.
type Event interface {
	EventName() string
	OccurredOn() time.Time
}

type SaleCreated struct {
	SaleNumber   string    `json:"sale_number"`
	CustomerName string    `json:"customer_name"`
	TotalAmount  Money     `json:"total_amount"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func (e SaleCreated) EventName() string     { return "sale.created" }
func (e SaleCreated) OccurredOn() time.Time { return e.OccurredAt }

type SaleModified struct {
	SaleID     string    `json:"sale_id"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e SaleModified) EventName() string     { return "sale.modified" }
func (e SaleModified) OccurredOn() time.Time { return e.OccurredAt }

type ItemCancelled struct {
	ProductName string    `json:"product_name"`
	SaleNumber  string    `json:"sale_number"`
	Actor       string    `json:"actor"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (e ItemCancelled) EventName() string     { return "sale.item_cancelled" }
func (e ItemCancelled) OccurredOn() time.Time { return e.OccurredAt }

type SaleCancelled struct {
	SaleNumber string    `json:"sale_number"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e SaleCancelled) EventName() string     { return "sale.cancelled" }
func (e SaleCancelled) OccurredOn() time.Time { return e.OccurredAt }

type SaleCompleted struct {
	SaleNumber string    `json:"sale_number"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e SaleCompleted) EventName() string     { return "sale.completed" }
func (e SaleCompleted) OccurredOn() time.Time { return e.OccurredAt }
